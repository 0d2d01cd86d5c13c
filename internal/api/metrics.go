package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CalculationsTotal counts engine runs by calculator kind and result.
var CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "finproj",
	Subsystem: "engine",
	Name:      "calculations_total",
	Help:      "Total scenario calculations by kind and result.",
}, []string{"kind", "result"})

// CalculationDuration observes engine latency per calculator kind.
var CalculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "finproj",
	Subsystem: "engine",
	Name:      "calculation_duration_seconds",
	Help:      "Scenario calculation latency in seconds.",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
}, []string{"kind"})

// CacheRequests counts cache lookups by result (hit or miss).
var CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "finproj",
	Subsystem: "cache",
	Name:      "requests_total",
	Help:      "Total response cache lookups by result.",
}, []string{"result"})
