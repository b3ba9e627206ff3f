// Package observability provides Prometheus metrics for the claim pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	claimSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claims_submissions_total",
			Help: "Total number of claim submissions by outcome",
		},
		[]string{"status"}, // status: completed, failed, rejected
	)

	agentCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claims_agent_calls_total",
			Help: "Total number of decision service calls",
		},
		[]string{"status"}, // status: success, failure, error
	)

	agentCallDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "claims_agent_call_duration_seconds",
			Help:    "Decision service call duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	decisionOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claims_decision_outcomes_total",
			Help: "Total number of normalized adjudication outcomes",
		},
		[]string{"decision"},
	)
)

func RecordSubmission(status string) {
	claimSubmissionsTotal.WithLabelValues(status).Inc()
}

func RecordAgentCall(status string, durationSeconds float64) {
	agentCallsTotal.WithLabelValues(status).Inc()
	agentCallDurationSeconds.Observe(durationSeconds)
}

func RecordDecisionOutcome(decision string) {
	decisionOutcomesTotal.WithLabelValues(decision).Inc()
}
