// Package metrics defines all custom Prometheus metrics for the tax
// management API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taxsystem"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CalculationsTotal counts completed tax calculations.
// Label:
//   - tax_type: upper-cased tax type name (e.g. "ICMS")
var CalculationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calculations_total",
		Help:      "Total number of tax calculations performed, by tax type.",
	},
	[]string{"tax_type"},
)

// TaxTypeCacheTotal counts tax type cache lookups.
// Label:
//   - result: "hit" or "miss"
var TaxTypeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "taxtype_cache_total",
		Help:      "Total number of tax type cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
