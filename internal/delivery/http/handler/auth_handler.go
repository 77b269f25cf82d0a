package handler

import (
	"errors"
	"net/http"
	"time"

	"healthcare-management-system/config"
	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/delivery/http/middleware"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	cookie      config.CookieConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		cookie:      cookie,
	}
}

// RegisterPatient handles patient self registration
// @Summary Register a new patient
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Register Patient Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /user/patient/register [post]
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if !decodeJSON(w, r, h.validator, &req, FillFullForm) {
		return
	}

	session, err := h.authUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.BadRequest(w, "User Already Registered!")
		case errors.Is(err, usecase.ErrPasswordMismatch):
			response.BadRequest(w, "Password and Confirm Password Do Not Match")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, "Invalid date of birth")
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	h.writeSession(w, http.StatusOK, "User Registered!", session)
}

// RegisterDoctor handles doctor self registration with a signature upload
// @Summary Register a new doctor
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /user/doctor/register [post]
func (h *AuthHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}

	req := dto.RegisterDoctorRequest{
		FirstName:       r.FormValue("first_name"),
		LastName:        r.FormValue("last_name"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		DateOfBirth:     r.FormValue("dob"),
		Gender:          r.FormValue("gender"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		Department:      r.FormValue("doctor_department"),
		LicenseNumber:   r.FormValue("license_number"),
	}

	signature, err := formFile(r, "signature")
	if err != nil {
		response.BadRequest(w, "Invalid signature file")
		return
	}
	if signature == nil {
		response.BadRequest(w, "Digital Signature File Required!")
		return
	}

	if !validate(w, h.validator, &req, "All fields are required!") {
		return
	}

	doctor, err := h.authUsecase.RegisterDoctor(r.Context(), &req, signature)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFileRequired):
			response.BadRequest(w, "Digital Signature File Required!")
		case errors.Is(err, usecase.ErrUnsupportedFile):
			response.BadRequest(w, "Invalid signature file format! Allowed formats: PNG, JPEG, PDF")
		case errors.Is(err, usecase.ErrPasswordMismatch):
			response.BadRequest(w, "Password and Confirm Password Do Not Match")
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.BadRequest(w, "Email is already registered!")
		case errors.Is(err, usecase.ErrLicenseAlreadyExists):
			response.BadRequest(w, "This license number is already registered!")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, "Invalid date of birth")
		default:
			response.InternalServerError(w, "Registration failed")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered. Awaiting verification.", response.Fields{
		"doctorId": doctor.ID,
	})
}

// Login handles login for every role
// @Summary Login user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, h.validator, &req, "Please Provide All Details") {
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotRegistered):
			response.BadRequest(w, "User not Registered")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.BadRequest(w, "Invalid Password Or Email")
		case errors.Is(err, usecase.ErrRoleMismatch):
			response.BadRequest(w, "User with Role not Registered")
		case errors.Is(err, usecase.ErrDoctorNotVerified):
			response.Forbidden(w, "Doctor registration not yet verified. Please wait for admin approval.")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.writeSession(w, http.StatusOK, "User Logged In Successfully!", session)
}

// Logout returns the logout handler of one role gate
// @Summary Logout user
// @Tags User
// @Produce json
// @Success 201 {object} response.Response
// @Router /user/{role}/logout [get]
func (h *AuthHandler) Logout(role entity.Role, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

		if err := h.authUsecase.Logout(r.Context(), user.ID, tokenID); err != nil {
			response.InternalServerError(w, "Failed to logout")
			return
		}

		http.SetCookie(w, h.expiredCookie(role))
		response.Success(w, http.StatusCreated, message, nil)
	}
}

// Me returns the authenticated user
// @Summary Get current user
// @Tags User
// @Produce json
// @Success 200 {object} response.Response
// @Router /user/{role}/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{
		"user": converter.UserToResponse(user),
	})
}

func (h *AuthHandler) writeSession(w http.ResponseWriter, status int, message string, session *dto.AuthResponse) {
	role := entity.Role(session.User.Role)
	http.SetCookie(w, &http.Cookie{
		Name:     role.CookieName(),
		Value:    session.Token,
		Path:     "/",
		Expires:  time.Now().AddDate(0, 0, h.cookie.ExpireDays),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.sameSite(),
	})

	response.Success(w, status, message, response.Fields{
		"user":       session.User,
		"token":      session.Token,
		"expires_in": session.ExpiresIn,
	})
}

func (h *AuthHandler) expiredCookie(role entity.Role) *http.Cookie {
	return &http.Cookie{
		Name:     role.CookieName(),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.sameSite(),
	}
}

// Cross-site front ends need SameSite=None, which browsers only honour on
// secure cookies.
func (h *AuthHandler) sameSite() http.SameSite {
	if h.cookie.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
