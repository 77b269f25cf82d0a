package handler

import (
	"errors"
	"net/http"
	"strconv"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

const vitalsRequired = "Please provide required vital signs and patient ID!"

type VitalsHandler struct {
	vitalsUsecase usecase.VitalsUsecase
	validator     *validator.CustomValidator
}

func NewVitalsHandler(vitalsUsecase usecase.VitalsUsecase, validator *validator.CustomValidator) *VitalsHandler {
	return &VitalsHandler{
		vitalsUsecase: vitalsUsecase,
		validator:     validator,
	}
}

// Add handles vitals recorded by a doctor for a patient
// @Summary Record vital signs
// @Tags Vitals
// @Security DoctorCookie
// @Accept json
// @Produce json
// @Param request body dto.AddVitalsRequest true "Add Vitals Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vitals/add [post]
func (h *VitalsHandler) Add(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AddVitalsRequest
	if !decodeJSON(w, r, h.validator, &req, vitalsRequired) {
		return
	}

	vitals, err := h.vitalsUsecase.Add(r.Context(), doctor, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, "Invalid date format")
		default:
			response.InternalServerError(w, "Failed to record vitals")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vitals recorded successfully!", response.Fields{"vitals": vitals})
}

func (h *VitalsHandler) History(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	history, err := h.vitalsUsecase.History(r.Context(), patient)
	if err != nil {
		response.InternalServerError(w, "Failed to get vitals history")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{
		"count":  len(history),
		"vitals": history,
	})
}

func (h *VitalsHandler) Get(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	vitals, err := h.vitalsUsecase.Get(r.Context(), patient, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVitalsNotFound):
			response.NotFound(w, "Vitals record not found!")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You are not authorized to view this record!")
		default:
			response.InternalServerError(w, "Failed to get vitals")
		}
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"vitals": vitals})
}

func (h *VitalsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.vitalsUsecase.Delete(r.Context(), doctor, mux.Vars(r)["id"]); err != nil {
		switch {
		case errors.Is(err, usecase.ErrVitalsNotFound):
			response.NotFound(w, "Vitals record not found!")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You are not authorized to delete this record!")
		default:
			response.InternalServerError(w, "Failed to delete vitals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vitals record deleted successfully!", nil)
}

func (h *VitalsHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.vitalsUsecase.Summarize(r.Context(), patient)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoVitals):
			response.NotFound(w, "No vitals found for this patient")
		default:
			response.InternalServerError(w, "Failed to summarize vitals")
		}
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"summary": summary})
}

func (h *VitalsHandler) Ask(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AskRequest
	if !decodeJSON(w, r, h.validator, &req, "Question is required") {
		return
	}

	answer, err := h.vitalsUsecase.Ask(r.Context(), patient, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to answer question")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"answer": answer})
}

// Framingham scores ten year heart risk from the profile, the latest
// systolic reading and the query flags smoker, diabetic and on_meds.
func (h *VitalsHandler) Framingham(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	req := dto.FraminghamRequest{
		Smoker:   queryBool(q.Get("smoker")),
		Diabetic: queryBool(q.Get("diabetic")),
		OnMeds:   queryBool(q.Get("on_meds")),
	}

	score, err := h.vitalsUsecase.Framingham(r.Context(), patient, req)
	if err != nil {
		response.InternalServerError(w, "Failed to calculate risk score")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"framingham": score})
}

func queryBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
