package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts ledger submissions by transaction kind and status
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpt_submissions_total",
			Help: "Total number of ledger submissions",
		},
		[]string{"kind", "status"},
	)

	// SubmissionDuration tracks the autofill/sign/submit round trip time
	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mpt_submission_duration_seconds",
			Help:    "Ledger submission duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// ValidationFailures counts form validation failures by field
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpt_validation_failures_total",
			Help: "Total number of form validation failures",
		},
		[]string{"kind", "field"},
	)

	// LedgerRequests counts read-only ledger queries by method and status
	LedgerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpt_ledger_requests_total",
			Help: "Total number of read-only ledger queries",
		},
		[]string{"method", "status"},
	)

	// EngineResults counts ledger engine result codes seen on rejection
	EngineResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpt_engine_results_total",
			Help: "Engine result codes returned by the ledger",
		},
		[]string{"code"},
	)
)
