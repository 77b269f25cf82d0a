package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-management-system/internal/delivery/http/middleware"
	"healthcare-management-system/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// serve routes one request through a single mux route, optionally as user
func serve(method, pattern, target string, body interface{}, user *entity.User, h http.HandlerFunc) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			json.NewEncoder(&buf).Encode(body)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user, "tok-1"))
	}

	r := mux.NewRouter()
	r.HandleFunc(pattern, h).Methods(method)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
