package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger pipeline counters live with the dispatcher that increments them.
// They register on the default registry, so the /metrics endpoint exposes
// them alongside the api-layer metrics.

// eventsRecordedTotal counts audit events persisted by the dispatcher.
// Label:
//   - reason: ledger event reason (e.g. "generation", "payment_approved")
var eventsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "credit_events_recorded_total",
		Help:      "Total number of credit ledger events recorded.",
	},
	[]string{"reason"},
)

// eventErrorsTotal counts audit events that failed to persist.
// Label:
//   - reason: ledger event reason
var eventErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "credit_event_errors_total",
		Help:      "Total number of credit ledger events that failed to persist.",
	},
	[]string{"reason"},
)
