package handler

import (
	"errors"
	"net/http"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type HealthRecordHandler struct {
	healthRecordUsecase usecase.HealthRecordUsecase
	validator           *validator.CustomValidator
}

func NewHealthRecordHandler(healthRecordUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *HealthRecordHandler {
	return &HealthRecordHandler{
		healthRecordUsecase: healthRecordUsecase,
		validator:           validator,
	}
}

// Upload handles a new health record file for a patient
// @Summary Upload a health record
// @Tags HealthRecord
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /health-records/upload [post]
func (h *HealthRecordHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	if !parseMultipart(w, r) {
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		h.writeFileError(w, err)
		return
	}
	if file == nil {
		response.BadRequest(w, "Please upload a file")
		return
	}

	req := dto.UploadHealthRecordRequest{
		PatientID:   r.FormValue("patient_id"),
		RecordType:  r.FormValue("record_type"),
		Description: r.FormValue("description"),
	}
	if !validate(w, h.validator, &req, "Patient ID and record type are required") {
		return
	}

	record, err := h.healthRecordUsecase.Upload(r.Context(), actor, &req, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Health record uploaded successfully", response.Fields{"healthRecord": record})
}

func (h *HealthRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	if !parseMultipart(w, r) {
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		h.writeFileError(w, err)
		return
	}

	req := dto.UpdateHealthRecordRequest{
		RecordType:  r.FormValue("record_type"),
		Description: r.FormValue("description"),
	}
	if !validate(w, h.validator, &req, "") {
		return
	}

	record, err := h.healthRecordUsecase.Update(r.Context(), actor, mux.Vars(r)["id"], &req, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Health record updated successfully", response.Fields{"healthRecord": record})
}

func (h *HealthRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.healthRecordUsecase.Delete(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Health record deleted successfully", nil)
}

func (h *HealthRecordHandler) GetByPatient(w http.ResponseWriter, r *http.Request) {
	records, err := h.healthRecordUsecase.GetByPatient(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeHealthRecords(w, records)
}

func (h *HealthRecordHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	records, err := h.healthRecordUsecase.GetMine(r.Context(), patient)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeHealthRecords(w, records)
}

func (h *HealthRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	record, err := h.healthRecordUsecase.Get(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"healthRecord": record})
}

func (h *HealthRecordHandler) writeFileError(w http.ResponseWriter, err error) {
	if errors.Is(err, errFileTooLarge) {
		response.Error(w, http.StatusRequestEntityTooLarge, "File size must not exceed 5MB", nil)
		return
	}
	response.BadRequest(w, "Invalid file upload")
}

func (h *HealthRecordHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrHealthRecordNotFound):
		response.NotFound(w, "Health record not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "You are not authorized to access this record")
	case errors.Is(err, usecase.ErrFileRequired):
		response.BadRequest(w, "Please upload a file")
	case errors.Is(err, usecase.ErrUnsupportedFile):
		response.BadRequest(w, "Only JPG and PDF files are allowed")
	case errors.Is(err, usecase.ErrFileTooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, "File size must not exceed 5MB", nil)
	default:
		response.InternalServerError(w, "Failed to process health record")
	}
}

func writeHealthRecords(w http.ResponseWriter, records []dto.HealthRecordResponse) {
	response.Success(w, http.StatusOK, "", response.Fields{
		"count":         len(records),
		"healthRecords": records,
	})
}
