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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create handles a new prescription written by a doctor
// @Summary Add a prescription
// @Tags Prescription
// @Security DoctorCookie
// @Accept json
// @Produce json
// @Param request body dto.CreatePrescriptionRequest true "Create Prescription Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /prescriptions/add [post]
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreatePrescriptionRequest
	if !decodeJSON(w, r, h.validator, &req, "Please provide all required fields") {
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), doctor, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Prescription added successfully", response.Fields{"prescription": prescription})
}

func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePrescriptionRequest
	if !decodeJSON(w, r, h.validator, &req, "") {
		return
	}

	prescription, err := h.prescriptionUsecase.Update(r.Context(), doctor, mux.Vars(r)["id"], &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You are not authorized to update this prescription")
		default:
			h.writeError(w, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", response.Fields{"prescription": prescription})
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), patient, mux.Vars(r)["id"]); err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "Only patients can delete their own prescriptions")
		case errors.Is(err, usecase.ErrPrescriptionNotExpired):
			response.BadRequest(w, "Prescriptions can only be deleted after they have expired")
		default:
			h.writeError(w, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

// GetByPatient lists a patient's prescriptions, optionally only the active ones
func (h *PrescriptionHandler) GetByPatient(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prescriptions, err := h.prescriptionUsecase.GetByPatient(r.Context(), mux.Vars(r)["patientId"], activeOnly)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writePrescriptions(w, prescriptions)
	}
}

func (h *PrescriptionHandler) GetMine(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patient, ok := currentUser(w, r)
		if !ok {
			return
		}

		prescriptions, err := h.prescriptionUsecase.GetMine(r.Context(), patient, activeOnly)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writePrescriptions(w, prescriptions)
	}
}

func (h *PrescriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.GetAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writePrescriptions(w, prescriptions)
}

func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	prescription, err := h.prescriptionUsecase.Get(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You are not authorized to access this prescription")
		default:
			h.writeError(w, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"prescription": prescription})
}

// PDF streams the caller's prescriptions as a PDF document
// @Summary Download prescriptions as PDF
// @Tags Prescription
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /prescriptions/pdf [get]
func (h *PrescriptionHandler) PDF(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	document, err := h.prescriptionUsecase.RenderPDF(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoPrescriptions):
			response.NotFound(w, "No prescriptions found")
		default:
			response.InternalServerError(w, "Failed to generate prescription PDF")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=prescriptions.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

func (h *PrescriptionHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrPrescriptionNotFound):
		response.NotFound(w, "Prescription not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, "Invalid date format")
	case errors.Is(err, usecase.ErrInvalidDateRange):
		response.BadRequest(w, "End date must not be before start date")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "Not authorized to access this resource")
	default:
		response.InternalServerError(w, "Failed to process prescription")
	}
}

func writePrescriptions(w http.ResponseWriter, prescriptions []dto.PrescriptionResponse) {
	response.Success(w, http.StatusOK, "", response.Fields{
		"count":         len(prescriptions),
		"prescriptions": prescriptions,
	})
}
