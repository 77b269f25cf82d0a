package handler

import (
	"errors"
	"fmt"
	"net/http"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Book handles an appointment request from a patient
// @Summary Book an appointment
// @Tags Appointment
// @Security PatientCookie
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointment/book [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.BookAppointmentRequest
	if !decodeJSON(w, r, h.validator, &req, FillFullForm) {
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), patient, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoMatchingDoctor):
			response.NotFound(w, fmt.Sprintf("Doctor not found with name %s %s in department %s",
				req.DoctorFirstName, req.DoctorLastName, req.Department))
		case errors.Is(err, usecase.ErrDoctorConflict):
			response.BadRequest(w, "Doctors Conflict! Please Contact Through Email Or Phone!")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, "Invalid date format")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment Sent Successfully!", response.Fields{"appointment": appointment})
}

// UpdateStatus handles an admin status change of one appointment
// @Summary Update appointment status
// @Tags Appointment
// @Security AdminCookie
// @Accept json
// @Produce json
// @Param appointmentId path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointment/update/{appointmentId} [put]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !decodeJSON(w, r, h.validator, &req, "Please provide status") {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), actor, mux.Vars(r)["appointmentId"], req.Status)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment Status Updated!", response.Fields{"appointment": appointment})
}

func (h *AppointmentHandler) UpdateStatusForPatient(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !decodeJSON(w, r, h.validator, &req, "Please provide status") {
		return
	}

	result, err := h.appointmentUsecase.UpdateStatusForPatient(r.Context(), actor, mux.Vars(r)["patientId"], req.Status)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment Status Updated!", response.Fields{
		"matched": result.Matched,
		"updated": result.Updated,
	})
}

func (h *AppointmentHandler) writeStatusError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.BadRequest(w, "Invalid appointment status")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrNoAppointments):
		response.NotFound(w, "No appointments found for this patient")
	default:
		response.InternalServerError(w, "Failed to update appointment status")
	}
}

func (h *AppointmentHandler) DeleteForPatient(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	deleted, err := h.appointmentUsecase.DeleteForPatient(r.Context(), actor, mux.Vars(r)["patientId"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoAppointments):
			response.NotFound(w, "No appointments found for this patient")
		default:
			response.InternalServerError(w, "Failed to delete appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment Deleted!", response.Fields{"deleted": deleted})
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), actor, mux.Vars(r)["appointmentId"]); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment Deleted!", nil)
}

func (h *AppointmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetMine(r.Context(), patient)
	if err != nil {
		response.InternalServerError(w, "Error fetching appointments")
		return
	}

	writeAppointments(w, appointments)
}

func (h *AppointmentHandler) GetMineAsDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetByDoctor(r.Context(), doctor, doctor.ID.String())
	if err != nil {
		response.InternalServerError(w, "Error fetching appointments")
		return
	}

	writeAppointments(w, appointments)
}

func (h *AppointmentHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetByDoctor(r.Context(), actor, mux.Vars(r)["doctorId"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "Not authorized to access this resource")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Error fetching appointments")
		}
		return
	}

	writeAppointments(w, appointments)
}

func (h *AppointmentHandler) GetByPatient(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetByPatient(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Error fetching appointments")
		}
		return
	}

	writeAppointments(w, appointments)
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching appointments")
		return
	}

	writeAppointments(w, appointments)
}

func (h *AppointmentHandler) GetDoctorStats(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.appointmentUsecase.GetDoctorStats(r.Context(), doctor)
	if err != nil {
		response.InternalServerError(w, "Error fetching doctor stats")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"stats": stats})
}

func (h *AppointmentHandler) AddNotes(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AddDoctorNotesRequest
	if !decodeJSON(w, r, h.validator, &req, "Please provide notes") {
		return
	}

	appointment, err := h.appointmentUsecase.AddNotes(r.Context(), doctor, mux.Vars(r)["appointmentId"], req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "Not authorized to add notes to this appointment")
		default:
			response.InternalServerError(w, "Failed to add notes")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notes added successfully", response.Fields{"appointment": appointment})
}

func writeAppointments(w http.ResponseWriter, appointments []dto.AppointmentResponse) {
	response.Success(w, http.StatusOK, "", response.Fields{
		"count":        len(appointments),
		"appointments": appointments,
	})
}
