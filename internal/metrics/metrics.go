// Package metrics holds the Prometheus collectors of the assistant.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arlo_resolutions_total",
			Help: "Total number of resolved queries by reply source and intent",
		},
		[]string{"source", "intent"},
	)

	HandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arlo_handler_errors_total",
			Help: "Total number of intent handler failures",
		},
		[]string{"intent"},
	)

	RemoteLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arlo_remote_lookup_duration_seconds",
			Help:    "Duration of computation and knowledge service calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"service", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "arlo_request_duration_seconds",
			Help: "Duration of inbound requests in seconds",
		},
		[]string{"transport"},
	)
)
