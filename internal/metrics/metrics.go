package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of in-flight HTTP requests",
		},
	)

	// outcome is the CRM status code, "timeout" or "transport_error"
	integrationCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_calls_total",
			Help: "Total number of outbound integration calls",
		},
		[]string{"service", "operation", "outcome"},
	)

	integrationCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "integration_call_duration_seconds",
			Help:    "Duration of outbound integration calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.025, 2, 10), // 25ms to ~12s
		},
		[]string{"service", "operation"},
	)

	leadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_total",
			Help: "Lead operations by result",
		},
		[]string{"operation", "result"},
	)

	duplicateRemaps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brevo_duplicate_remaps_total",
			Help: "Brevo duplicate_parameter errors answered as success",
		},
	)
)

func TrackActive() (done func()) {
	activeConnections.Inc()
	return activeConnections.Dec
}

func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordIntegrationCall(service, operation, outcome string, duration time.Duration) {
	integrationCalls.WithLabelValues(service, operation, outcome).Inc()
	integrationCallDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func RecordLead(operation, result string) {
	leadsTotal.WithLabelValues(operation, result).Inc()
}

func RecordDuplicateRemap() {
	duplicateRemaps.Inc()
}
