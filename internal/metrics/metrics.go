package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Collaborator call latency (milliseconds)
	CollaboratorCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collaborator_call_latency_ms",
			Help:    "AI collaborator call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"operation", "status"},
	)

	// Communications marked sent
	CommsSentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "communications_sent_count",
			Help: "Total number of communications marked sent",
		},
		[]string{"audience", "type"},
	)

	// Drafts generated
	DraftsGeneratedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drafts_generated_count",
			Help: "Total number of email drafts generated",
		},
		[]string{"audience"},
	)
)

// RecordHTTPRequestDuration records HTTP request latency
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordCollaboratorCall records one collaborator call
func RecordCollaboratorCall(operation, status string, duration time.Duration) {
	CollaboratorCallLatency.WithLabelValues(operation, status).Observe(float64(duration.Milliseconds()))
}

// IncrementCommsSent increments the sent-communications counter
func IncrementCommsSent(audience, commType string) {
	CommsSentCount.WithLabelValues(audience, commType).Inc()
}

// IncrementDraftsGenerated increments the generated-drafts counter
func IncrementDraftsGenerated(audience string) {
	DraftsGeneratedCount.WithLabelValues(audience).Inc()
}
