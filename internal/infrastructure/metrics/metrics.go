package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the process collectors. Each instance has its own registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	remindersSent        *prometheus.CounterVec
	reminderFailures     *prometheus.CounterVec
	notificationsCreated *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hms_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hms_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		remindersSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hms_reminders_sent_total",
				Help: "Reminders delivered by the scheduler",
			},
			[]string{"job"},
		),
		reminderFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hms_reminder_failures_total",
				Help: "Reminders skipped because a side effect failed",
			},
			[]string{"job"},
		),
		notificationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hms_notifications_created_total",
				Help: "Notifications written, by type",
			},
			[]string{"type"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.remindersSent,
		m.reminderFailures,
		m.notificationsCreated,
	)

	return m
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ReminderSent(job string) {
	m.remindersSent.WithLabelValues(job).Inc()
}

func (m *Metrics) ReminderFailed(job string) {
	m.reminderFailures.WithLabelValues(job).Inc()
}

func (m *Metrics) NotificationCreated(notificationType string) {
	m.notificationsCreated.WithLabelValues(notificationType).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
