package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

// reached answers 200 with the id of the context user
func reached() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		tokenID, _ := GetTokenIDFromContext(r.Context())
		w.Header().Set("X-Token-ID", tokenID)
		w.Write([]byte(user.ID.String()))
	})
}

func TestRequire_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(new(mocks.AuthUsecase), quietLogger())

	tests := []struct {
		name   string
		gate   func(http.Handler) http.Handler
		status int
		msg    string
	}{
		{"patient", m.RequirePatient, http.StatusBadRequest, "Patient Not Authenticated"},
		{"doctor", m.RequireDoctor, http.StatusBadRequest, "Doctor Not Authenticated"},
		{"admin", m.RequireAdmin, http.StatusBadRequest, "Dashboard User is not authenticated!"},
		{"admin or doctor", m.RequireAdminOrDoctor, http.StatusBadRequest, "User Not Authenticated"},
		{"any", m.RequireAny, http.StatusUnauthorized, "Please Login To Access!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.gate(reached()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, message(t, rec))
		})
	}
}

func TestRequire_StoresUserOnSuccess(t *testing.T) {
	auth := new(mocks.AuthUsecase)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
	auth.On("Authenticate", mock.Anything, "doc-token").Return(user, &jwt.Claims{UserID: user.ID, TokenID: "tok-1"}, nil)

	m := NewAuthMiddleware(auth, quietLogger())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "doctorToken", Value: "doc-token"})
	rec := httptest.NewRecorder()

	m.RequireAdminOrDoctor(reached()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), rec.Body.String())
	assert.Equal(t, "tok-1", rec.Header().Get("X-Token-ID"))
}

func TestRequire_BearerOnlyWhereAccepted(t *testing.T) {
	auth := new(mocks.AuthUsecase)
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	auth.On("Authenticate", mock.Anything, "mobile-token").Return(patient, &jwt.Claims{UserID: patient.ID}, nil)
	m := NewAuthMiddleware(auth, quietLogger())

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer mobile-token")
		return req
	}

	rec := httptest.NewRecorder()
	m.RequirePatient(reached()).ServeHTTP(rec, newReq())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	m.RequireDoctor(reached()).ServeHTTP(rec, newReq())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	auth.AssertNumberOfCalls(t, "Authenticate", 1)
}

func TestRequire_Rejections(t *testing.T) {
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}

	tests := []struct {
		name   string
		user   *entity.User
		err    error
		status int
		msg    string
	}{
		{"invalid token", nil, usecase.ErrInvalidToken, http.StatusUnauthorized, "Invalid Token! Please login again."},
		{"session store down", nil, errors.New("redis: connection refused"), http.StatusInternalServerError, "Internal server error"},
		{"wrong role", patient, nil, http.StatusForbidden, "Patient not authorized for this resource!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.AuthUsecase)
			var claims *jwt.Claims
			if tt.user != nil {
				claims = &jwt.Claims{UserID: tt.user.ID}
			}
			auth.On("Authenticate", mock.Anything, "some-token").Return(tt.user, claims, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: "adminToken", Value: "some-token"})
			rec := httptest.NewRecorder()

			NewAuthMiddleware(auth, quietLogger()).RequireAdmin(reached()).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, message(t, rec))
		})
	}
}

func TestRequire_IgnoresCookiesOfOtherRoles(t *testing.T) {
	m := NewAuthMiddleware(new(mocks.AuthUsecase), quietLogger())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "patientToken", Value: "patient-token"})
	rec := httptest.NewRecorder()

	m.RequireAdmin(reached()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Dashboard User is not authenticated!", message(t, rec))
}
