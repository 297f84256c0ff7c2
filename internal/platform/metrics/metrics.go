// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts document submissions by kind and outcome.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_document_submissions_total",
		Help: "Number of document submission attempts by document kind and outcome.",
	}, []string{"kind", "outcome"})

	// LedgerRowsPosted counts ledger rows written by document kind.
	LedgerRowsPosted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_rows_posted_total",
		Help: "Number of ledger rows written, by source document kind.",
	}, []string{"kind"})

	// SubmissionDuration observes end-to-end posting latency.
	SubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_submission_duration_seconds",
		Help:    "Latency of document submission, including the posting transaction.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)
