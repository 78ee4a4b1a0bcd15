// Package metrics registers Prometheus collectors for job and order
// lifecycle observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobTransitions counts committed job status transitions by resulting status.
	JobTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movebox",
		Name:      "job_transitions_total",
		Help:      "Committed job status transitions by resulting status.",
	}, []string{"status"})

	// ClaimConflicts counts accept attempts that lost the claim race.
	ClaimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movebox",
		Name:      "job_claim_conflicts_total",
		Help:      "Accept attempts rejected because another mover won the claim.",
	})

	// SecondaryEffectFailures counts swallowed secondary effect failures by kind.
	// Kinds: credit, notification, event, refund, cancel_job.
	SecondaryEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movebox",
		Name:      "secondary_effect_failures_total",
		Help:      "Best-effort secondary effects that failed and were logged.",
	}, []string{"effect"})

	// CreditRetries counts out-of-band mover credit retry attempts by outcome.
	CreditRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movebox",
		Name:      "credit_retries_total",
		Help:      "Out-of-band mover credit retry attempts by outcome.",
	}, []string{"outcome"})
)
