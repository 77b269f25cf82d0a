package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest("GET", "/api/v1/health", "200", 0.01)
	m.ReminderSent("prescription_ending")
	m.ReminderSent("prescription_ending")
	m.ReminderFailed("appointment_hourly")
	m.NotificationCreated("Appointment")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/health", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.remindersSent.WithLabelValues("prescription_ending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reminderFailures.WithLabelValues("appointment_hourly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsCreated.WithLabelValues("Appointment")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.NotificationCreated("System")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hms_notifications_created_total{type="System"} 1`)
}
