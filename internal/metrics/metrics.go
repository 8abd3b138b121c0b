// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request latency by route and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestTotal counts HTTP requests by route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// ComputeDuration tracks indicator computation latency per indicator.
	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "indicator_compute_duration_seconds",
			Help:    "Duration of indicator computations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"indicator"},
	)

	// StorageQueryDuration tracks chain-history query latency per operation.
	StorageQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "storage_query_duration_seconds",
			Help: "Duration of chain-history storage queries in seconds",
		},
		[]string{"operation"},
	)

	// CacheHits counts raw-sample cache hits.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sample_cache_hits_total",
			Help: "Total number of raw-sample cache hits",
		},
	)

	// CacheMisses counts raw-sample cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sample_cache_misses_total",
			Help: "Total number of raw-sample cache misses",
		},
	)
)
