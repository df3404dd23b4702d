// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travelthreads"

var (
	// MutationsApplied counts operations that changed the tree, by kind.
	MutationsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "thread",
		Name:      "mutations_applied_total",
		Help:      "Mutations that changed the discussion tree",
	}, []string{"kind"})

	// MutationsIgnored counts operations rejected as no-ops, by kind.
	MutationsIgnored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "thread",
		Name:      "mutations_ignored_total",
		Help:      "Operations that left the discussion tree unchanged",
	}, []string{"kind"})

	// JournalFailures counts mutations that could not be journaled.
	JournalFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "failures_total",
		Help:      "Applied mutations that failed to reach the journal",
	})

	Searches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "queries_total",
		Help:      "Search queries served",
	})

	SearchMatches = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "matches",
		Help:      "Number of matches per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	// HTTPRequests counts requests by method, route template and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served",
	}, []string{"method", "route", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)
