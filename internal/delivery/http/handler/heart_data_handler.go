package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"
)

type HeartDataHandler struct {
	heartDataUsecase usecase.HeartDataUsecase
	validator        *validator.CustomValidator
}

func NewHeartDataHandler(heartDataUsecase usecase.HeartDataUsecase, validator *validator.CustomValidator) *HeartDataHandler {
	return &HeartDataHandler{
		heartDataUsecase: heartDataUsecase,
		validator:        validator,
	}
}

func (h *HeartDataHandler) Add(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AddHeartDataRequest
	if !decodeJSON(w, r, h.validator, &req, "Please provide all required fields.") {
		return
	}

	data, err := h.heartDataUsecase.Add(r.Context(), doctor, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found.")
		default:
			response.InternalServerError(w, "Failed to record heart data")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Heart data recorded successfully.", response.Fields{"data": data})
}

func (h *HeartDataHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	data, err := h.heartDataUsecase.GetMine(r.Context(), patient)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoHeartData):
			response.NotFound(w, "No heart disease prediction data found for you.")
		default:
			response.InternalServerError(w, "Failed to get heart data")
		}
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"data": data})
}

// Advice explains heart data sent in the body, or the caller's latest
// stored record when the body is empty.
func (h *HeartDataHandler) Advice(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.HeartAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.HeartData != nil && !validate(w, h.validator, req.HeartData, "Heart data is required.") {
		return
	}

	advice, err := h.heartDataUsecase.Advice(r.Context(), patient, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoHeartData):
			response.BadRequest(w, "Heart data is required.")
		default:
			response.InternalServerError(w, usecase.AdviceUnavailable)
		}
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"advice": advice})
}

func (h *HeartDataHandler) Ask(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AskRequest
	if !decodeJSON(w, r, h.validator, &req, "Question and chat history are required.") {
		return
	}

	answer, err := h.heartDataUsecase.Ask(r.Context(), patient, &req)
	if err != nil {
		response.InternalServerError(w, usecase.HeartAnswerUnavailable)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"answer": answer})
}
