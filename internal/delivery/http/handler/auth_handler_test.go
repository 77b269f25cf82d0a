package handler

import (
	"net/http"
	"testing"

	"healthcare-management-system/config"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(uc *mocks.AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, validator.NewValidator(), config.CookieConfig{ExpireDays: 7, Secure: true})
}

func TestLogin_SetsRoleCookie(t *testing.T) {
	uc := new(mocks.AuthUsecase)
	uc.On("Login", mock.Anything, &dto.LoginRequest{Email: "greg@example.com", Password: "s3cret-pass", Role: "Doctor"}).
		Return(&dto.AuthResponse{User: &dto.UserResponse{ID: uuid.New(), Role: "Doctor"}, Token: "signed", ExpiresIn: 3600}, nil)

	rec := serve(http.MethodPost, "/user/login", "/user/login",
		map[string]string{"email": "greg@example.com", "password": "s3cret-pass", "role": "Doctor"}, nil, newAuthHandler(uc).Login)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User Logged In Successfully!", decode(t, rec)["message"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "doctorToken", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{usecase.ErrUserNotRegistered, http.StatusBadRequest, "User not Registered"},
		{usecase.ErrInvalidCredentials, http.StatusBadRequest, "Invalid Password Or Email"},
		{usecase.ErrRoleMismatch, http.StatusBadRequest, "User with Role not Registered"},
		{usecase.ErrDoctorNotVerified, http.StatusForbidden, "Doctor registration not yet verified. Please wait for admin approval."},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			uc := new(mocks.AuthUsecase)
			uc.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(http.MethodPost, "/user/login", "/user/login",
				map[string]string{"email": "greg@example.com", "password": "x", "role": "Doctor"}, nil, newAuthHandler(uc).Login)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, decode(t, rec)["message"])
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestRegisterPatient_IncompleteForm(t *testing.T) {
	uc := new(mocks.AuthUsecase)

	rec := serve(http.MethodPost, "/user/patient/register", "/user/patient/register",
		map[string]string{"email": "jane@example.com"}, nil, newAuthHandler(uc).RegisterPatient)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please Fill Full Form!", decode(t, rec)["message"])
	uc.AssertNotCalled(t, "RegisterPatient", mock.Anything, mock.Anything)
}

func TestRegisterPatient_InvalidBody(t *testing.T) {
	rec := serve(http.MethodPost, "/user/patient/register", "/user/patient/register", "{not json", nil,
		newAuthHandler(new(mocks.AuthUsecase)).RegisterPatient)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode(t, rec)["message"])
}

func TestLogout_RevokesAndExpiresCookie(t *testing.T) {
	uc := new(mocks.AuthUsecase)
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	uc.On("Logout", mock.Anything, admin.ID, "tok-1").Return(nil).Once()

	rec := serve(http.MethodGet, "/user/admin/logout", "/user/admin/logout", nil, admin,
		newAuthHandler(uc).Logout(entity.RoleAdmin, "Admin Logged Out Successfully."))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Admin Logged Out Successfully.", decode(t, rec)["message"])
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "adminToken", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
	uc.AssertExpectations(t)
}

func TestMe_ReturnsContextUser(t *testing.T) {
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient, FirstName: "Jane"}

	rec := serve(http.MethodGet, "/user/patient/me", "/user/patient/me", nil, patient, newAuthHandler(new(mocks.AuthUsecase)).Me)

	assert.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, patient.ID.String(), user["id"])
	assert.Equal(t, "Jane", user["first_name"])
}
