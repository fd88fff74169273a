// SPDX-License-Identifier: MIT

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solve outcome labels.
const (
	resultOK           = "ok"
	resultNotConverged = "not_converged"
	resultFailed       = "failed"
)

var (
	// solvesTotal counts solver runs by method and outcome.
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linstep_solves_total",
		Help: "Total solver runs by method and result",
	}, []string{"method", "result"})

	// solveDuration tracks solver latency, step logging included.
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linstep_solve_duration_seconds",
		Help:    "Solver run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.000005, 2, 14), // 5µs to ~40ms
	}, []string{"method"})

	// systemOrder tracks the n of accepted n×n systems.
	systemOrder = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linstep_system_order",
		Help:    "Order n of solved n x n systems",
		Buckets: []float64{2, 3, 4, 5, 6},
	})

	// httpRequests counts API requests by route and status code.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linstep_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "status"})
)
