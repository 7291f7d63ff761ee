// Package metrics provides Prometheus metrics for the caresma server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, endpoint and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "caresma",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "caresma",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// MessagesCreated counts persisted transcript messages by role.
	MessagesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "caresma",
			Name:      "messages_created_total",
			Help:      "Total conversation messages persisted",
		},
		[]string{"role"},
	)

	// SessionsCreated counts sessions created.
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "caresma",
			Name:      "sessions_created_total",
			Help:      "Total assessment sessions created",
		},
	)

	// SessionsEnded counts sessions ended.
	SessionsEnded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "caresma",
			Name:      "sessions_ended_total",
			Help:      "Total assessment sessions ended",
		},
	)

	// AssessmentsCompleted counts completed assessments by risk level.
	AssessmentsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "caresma",
			Name:      "assessments_completed_total",
			Help:      "Total cognitive assessments completed",
		},
		[]string{"risk_level"},
	)

	// AnalysisDuration tracks transcript analysis time against the LLM.
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "caresma",
			Name:      "analysis_duration_seconds",
			Help:      "Duration of transcript analysis calls",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
	)
)

// RecordRequest records one completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordMessageCreated increments the message counter for a role.
func RecordMessageCreated(role string) {
	MessagesCreated.WithLabelValues(role).Inc()
}

// RecordSessionCreated increments session creation metrics.
func RecordSessionCreated() {
	SessionsCreated.Inc()
}

// RecordSessionEnded increments session end metrics.
func RecordSessionEnded() {
	SessionsEnded.Inc()
}

// RecordAssessmentCompleted increments assessment metrics for a risk level.
func RecordAssessmentCompleted(riskLevel string) {
	AssessmentsCompleted.WithLabelValues(riskLevel).Inc()
}

// ObserveAnalysisDuration records one analyzer round trip.
func ObserveAnalysisDuration(d time.Duration) {
	AnalysisDuration.Observe(d.Seconds())
}
