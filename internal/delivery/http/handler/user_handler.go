package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// AddAdmin handles creating another dashboard admin
// @Summary Add a new admin
// @Tags User
// @Security AdminCookie
// @Accept json
// @Produce json
// @Param request body dto.AddAdminRequest true "Add Admin Request"
// @Success 200 {object} response.Response
// @Router /user/admin/addnew [post]
func (h *UserHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AddAdminRequest
	if !decodeJSON(w, r, h.validator, &req, FillFullForm) {
		return
	}

	admin, err := h.userUsecase.AddAdmin(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.BadRequest(w, "Admin With This Email Already Exists!")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, "Invalid date of birth")
		default:
			response.InternalServerError(w, "Failed to add admin")
		}
		return
	}

	response.Success(w, http.StatusOK, "New Admin Registered", response.Fields{"admin": admin})
}

// AddDoctor handles creating a verified doctor from the dashboard
// @Summary Add a new doctor
// @Tags User
// @Security AdminCookie
// @Accept json
// @Produce json
// @Param request body dto.AddDoctorRequest true "Add Doctor Request"
// @Success 200 {object} response.Response
// @Router /user/doctor/addnew [post]
func (h *UserHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.AddDoctorRequest
	if !decodeJSON(w, r, h.validator, &req, FillFullForm) {
		return
	}

	doctor, err := h.userUsecase.AddDoctor(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.BadRequest(w, "Doctor With This Email Already Exists!")
		case errors.Is(err, usecase.ErrLicenseAlreadyExists):
			response.BadRequest(w, "This license number is already registered!")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, "Invalid date of birth")
		default:
			response.InternalServerError(w, "Failed to add doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "New Doctor Registered", response.Fields{"doctor": doctor})
}

func (h *UserHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.userUsecase.GetDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"doctors": doctors})
}

func (h *UserHandler) GetDoctorsByDepartment(w http.ResponseWriter, r *http.Request) {
	department := strings.TrimSpace(mux.Vars(r)["department"])
	if department == "" {
		response.BadRequest(w, "Department is required")
		return
	}

	doctors, err := h.userUsecase.GetDoctorsByDepartment(r.Context(), department)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"doctors": doctors})
}

func (h *UserHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.userUsecase.GetPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"patients": patients})
}

func (h *UserHandler) GetUnverifiedDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.userUsecase.GetUnverifiedDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get unverified doctors")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{
		"count":   len(doctors),
		"doctors": doctors,
	})
}

// VerifyDoctor handles the admin decision on a pending doctor
// @Summary Verify or reject a doctor
// @Tags User
// @Security AdminCookie
// @Accept json
// @Produce json
// @Param doctorId path string true "Doctor ID"
// @Param request body dto.VerifyDoctorRequest true "Verify Doctor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/doctor/verify/{doctorId} [put]
func (h *UserHandler) VerifyDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.VerifyDoctorRequest
	if !decodeJSON(w, r, h.validator, &req, "Please provide verification status") {
		return
	}

	doctor, err := h.userUsecase.VerifyDoctor(r.Context(), actor, mux.Vars(r)["doctorId"], *req.Verified)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor verification")
		}
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("Doctor verification updated. Current status: %s", doctor.Status), response.Fields{
		"doctor": doctor,
	})
}

func (h *UserHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.userUsecase.DeletePatient(r.Context(), actor, mux.Vars(r)["patientId"]); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Error deleting patient data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func (h *UserHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	cancelled, err := h.userUsecase.DeleteDoctor(r.Context(), actor, mux.Vars(r)["doctorId"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Error deleting doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully and related appointments updated", response.Fields{
		"cancelled_appointments": cancelled,
	})
}

func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	if !parseMultipart(w, r) {
		return
	}

	avatar, err := formFile(r, "avatar")
	if err != nil {
		response.BadRequest(w, "Invalid avatar file")
		return
	}

	user, err := h.userUsecase.UpdateAvatar(r.Context(), actor, avatar)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFileRequired):
			response.BadRequest(w, "Avatar File Required!")
		case errors.Is(err, usecase.ErrUnsupportedFile):
			response.BadRequest(w, "Invalid avatar format! Allowed formats: PNG, JPEG")
		default:
			response.InternalServerError(w, "Failed to update avatar")
		}
		return
	}

	response.Success(w, http.StatusOK, "Avatar updated successfully", response.Fields{"user": user})
}
