package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type observer struct {
	mock.Mock
}

func (o *observer) ObserveRequest(method, route, status string, seconds float64) {
	o.Called(method, route, status)
}

func TestCORS_AllowsConfiguredOrigins(t *testing.T) {
	cors := NewCORSMiddleware("http://localhost:5173", "", "http://localhost:5174")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5174")
	rec := httptest.NewRecorder()
	cors.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5174", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	cors.Handle(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AnswersPreflight(t *testing.T) {
	cors := NewCORSMiddleware("http://localhost:5173")
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/user/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	cors.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
}

func TestRecover_ReturnsInternalError(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Recover(quietLogger()))
	r.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", message(t, rec))
}

func TestObserve_ReportsRouteTemplateAndStatus(t *testing.T) {
	obs := new(observer)
	obs.On("ObserveRequest", http.MethodGet, "/vitals/{id}", "404").Once()

	r := mux.NewRouter()
	r.Use(Observe(quietLogger(), obs))
	r.HandleFunc("/vitals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vitals/8e0c", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	obs.AssertExpectations(t)
}
