// Package metrics defines and registers the custom Prometheus metrics of the
// inventory API. HTTP request metrics come from the echoprometheus middleware;
// the collectors here count domain outcomes.
//
// All collectors are registered with the default registry through promauto
// when the package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Item metrics ──────────────────────────────────────────────────────────────

// ItemsCreatedTotal counts items created through the API.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of items created.",
	},
)

// StockAdjustmentsTotal counts relative stock adjustments.
// Label:
//   - result: "applied", "insufficient", "not_found", "out_of_range" or "error"
var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Total number of stock adjustments, by result.",
	},
	[]string{"result"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
