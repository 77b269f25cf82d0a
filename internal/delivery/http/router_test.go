package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-management-system/config"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/delivery/http/handler"
	"healthcare-management-system/internal/delivery/http/middleware"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/pkg/jwt"
	"healthcare-management-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	auth         *mocks.AuthUsecase
	appointments *mocks.AppointmentUsecase
	router       http.Handler
}

func newRouterFixture() *routerFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	f := &routerFixture{
		auth:         new(mocks.AuthUsecase),
		appointments: new(mocks.AppointmentUsecase),
	}
	handlers := Handlers{
		Auth:         handler.NewAuthHandler(f.auth, v, config.CookieConfig{ExpireDays: 7}),
		Appointment:  handler.NewAppointmentHandler(f.appointments, v),
		Prescription: handler.NewPrescriptionHandler(new(mocks.PrescriptionUsecase), v),
		Vitals:       handler.NewVitalsHandler(new(mocks.VitalsUsecase), v),
	}
	f.router = NewRouter(
		handlers,
		middleware.NewAuthMiddleware(f.auth, log),
		middleware.NewCORSMiddleware("http://localhost:5173"),
		nil, nil, "/uploads", log,
	).Handler()
	return f
}

func (f *routerFixture) signIn(token string, user *entity.User) {
	f.auth.On("Authenticate", mock.Anything, token).Return(user, &jwt.Claims{UserID: user.ID, TokenID: "tok-1"}, nil)
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestRouter_AppointmentPatientPathBeatsIDRoute(t *testing.T) {
	f := newRouterFixture()
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	f.signIn("patient-jwt", patient)
	f.appointments.On("GetMine", mock.Anything, patient).Return([]dto.AppointmentResponse{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointment/patient", nil)
	req.AddCookie(&http.Cookie{Name: "patientToken", Value: "patient-jwt"})
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.appointments.AssertExpectations(t)
	f.appointments.AssertNotCalled(t, "GetByPatient", mock.Anything, mock.Anything)
}

func TestRouter_AppointmentsByPatientID(t *testing.T) {
	f := newRouterFixture()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	patientID := uuid.NewString()
	f.signIn("admin-jwt", admin)
	f.appointments.On("GetByPatient", mock.Anything, patientID).Return([]dto.AppointmentResponse{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointment/"+patientID, nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "admin-jwt"})
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.appointments.AssertExpectations(t)
}

func TestRouter_GatesRejectMissingSession(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/appointment/patient", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Patient Not Authenticated")

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/appointment/getall", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard User is not authenticated!")

	f.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestRouter_PatientCannotReachDoctorRoute(t *testing.T) {
	f := newRouterFixture()
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	f.signIn("patient-jwt", patient)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vitals/add", nil)
	req.Header.Set("Authorization", "Bearer patient-jwt")
	rec := f.do(req)

	// Doctor routes read only the doctor cookie.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Doctor Not Authenticated")
}

func TestRouter_Preflight(t *testing.T) {
	f := newRouterFixture()

	for _, path := range []string{
		"/api/v1/appointment/book",
		"/api/v1/notifications/read/" + uuid.NewString(),
		"/api/v1/prescriptions/update/" + uuid.NewString(),
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := f.do(req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
		})
	}
	f.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestRouter_CORSHeadersOnRoutedResponses(t *testing.T) {
	f := newRouterFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_IDRoutesOnlyMatchUUIDs(t *testing.T) {
	f := newRouterFixture()

	for _, path := range []string{"/api/v1/prescriptions/add", "/api/v1/vitals/add", "/api/v1/health-records/upload"} {
		t.Run(path, func(t *testing.T) {
			rec := f.do(httptest.NewRequest(http.MethodGet, path, nil))

			assert.NotEqual(t, http.StatusOK, rec.Code)
			assert.NotContains(t, rec.Body.String(), "Not Authenticated")
			assert.NotContains(t, rec.Body.String(), "Please Login To Access!")
		})
	}
	f.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
