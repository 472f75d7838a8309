// Package metrics registers and exposes the Prometheus instrumentation for
// the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the server. A nil *Metrics is
// valid and turns every recording method into a no-op.
type Metrics struct {
	// UsersRegistered counts successful registrations.
	UsersRegistered prometheus.Counter

	// NotesCreated counts successfully created notes.
	NotesCreated prometheus.Counter

	// NotesShared counts successfully created share grants.
	NotesShared prometheus.Counter

	// EventsDropped counts notification events discarded because the
	// dispatch buffer was full.
	EventsDropped prometheus.Counter

	// RequestDuration observes HTTP request latency by route and status.
	RequestDuration *prometheus.HistogramVec

	// RequestsTotal counts HTTP requests by route, method, and status.
	RequestsTotal *prometheus.CounterVec
}

// New creates and registers all server metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "noteshare_users_registered_total",
			Help: "Total number of registered users",
		}),
		NotesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "noteshare_notes_created_total",
			Help: "Total number of notes created",
		}),
		NotesShared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "noteshare_notes_shared_total",
			Help: "Total number of share grants created",
		}),
		EventsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "noteshare_notifier_events_dropped_total",
			Help: "Total number of notification events dropped due to a full buffer",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "noteshare_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "noteshare_http_requests_total",
			Help: "Total HTTP requests by route, method, and status",
		}, []string{"route", "method", "status"}),
	}
}

// IncrementUsersRegistered records a successful registration.
func (m *Metrics) IncrementUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

// IncrementNotesCreated records a successfully created note.
func (m *Metrics) IncrementNotesCreated() {
	if m != nil {
		m.NotesCreated.Inc()
	}
}

// IncrementNotesShared records a successfully created share grant.
func (m *Metrics) IncrementNotesShared() {
	if m != nil {
		m.NotesShared.Inc()
	}
}

// IncrementEventsDropped records a notification event lost to backpressure.
func (m *Metrics) IncrementEventsDropped() {
	if m != nil {
		m.EventsDropped.Inc()
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
		m.RequestsTotal.WithLabelValues(route, method, status).Inc()
	}
}
