// Package metrics exposes the Prometheus collectors the storefront reports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// CheckoutsTotal tracks checkout submissions by outcome
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout submissions",
		},
		[]string{"status"},
	)

	// CartOperationsTotal tracks cart mutations by operation
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// ChargeAmount tracks charged order totals
	ChargeAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "charge_amount_rupees",
			Help:    "Charged order totals in rupees",
			Buckets: []float64{100, 500, 1000, 2500, 5000, 10000, 25000},
		},
	)
)
