package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Flightline
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Business Metrics
	ReservationsCreatedTotal   prometheus.Counter
	ReservationsCompletedTotal prometheus.Counter
	ReservationConflictsTotal  prometheus.Counter
	NotificationsSentTotal     prometheus.Counter
	NotificationFailuresTotal  prometheus.Counter
	IssuesReportedTotal        prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightline_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightline_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightline_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightline_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightline_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		ReservationsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightline_reservations_created_total",
				Help: "Total reservations successfully created",
			},
		),
		ReservationsCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightline_reservations_completed_total",
				Help: "Total reservations completed with hobbs accounting",
			},
		),
		ReservationConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightline_reservation_conflicts_total",
				Help: "Total bookings rejected due to overlapping time slots",
			},
		),
		NotificationsSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightline_notifications_sent_total",
				Help: "Total reservation notification emails sent",
			},
		),
		NotificationFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightline_notification_failures_total",
				Help: "Total reservation notification emails that failed to send",
			},
		),
		IssuesReportedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightline_issues_reported_total",
				Help: "Total maintenance issues reported by severity",
			},
			[]string{"severity"},
		),
	}
}
