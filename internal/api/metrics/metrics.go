// Package metrics defines the custom Prometheus metrics incremented by the
// http layer. Metrics register with the default registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// ── Generation metrics ────────────────────────────────────────────────────────

// ImagesGeneratedTotal counts successfully generated artifacts.
var ImagesGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_generated_total",
		Help:      "Total number of images successfully generated.",
	},
)

// GenerationErrorsTotal counts failed generation requests.
// Label:
//   - reason: "not_configured", "empty_result", "insufficient_credits", "upstream"
var GenerationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_errors_total",
		Help:      "Total number of generation requests that failed.",
	},
	[]string{"reason"},
)

// GenerationDuration measures the end-to-end latency of a generation request,
// provider call included.
var GenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of image generation requests.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsSubmittedTotal counts submitted payment requests.
// Label:
//   - plan: catalog plan name
var PaymentsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_submitted_total",
		Help:      "Total number of payment requests submitted, by plan.",
	},
	[]string{"plan"},
)

// PaymentsDecidedTotal counts admin decisions on payment requests.
// Label:
//   - decision: "approved" or "rejected"
var PaymentsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_decided_total",
		Help:      "Total number of payment requests decided, by decision.",
	},
	[]string{"decision"},
)
