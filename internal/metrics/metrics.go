// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for CineGraph:
// - API endpoint latency and throughput
// - Scoring engine compute durations
// - Dataset snapshot loads
// - Statistics memoization efficiency
// - TMDB poster lookups and circuit breaker state

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Engine Metrics
	EngineComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_compute_duration_seconds",
			Help:    "Duration of analytics computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "recommend", "mood", "crossrec", "tagcloud", "stats", "timeline"
	)

	// Dataset Metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset snapshot loads",
		},
		[]string{"result"}, // "success", "error"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset snapshot loads in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DatasetMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_movies",
			Help: "Number of movies in the current snapshot",
		},
	)

	DatasetRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_ratings",
			Help: "Number of ratings in the current snapshot",
		},
	)

	DatasetTags = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_tags",
			Help: "Number of tag applications in the current snapshot",
		},
	)

	// Statistics Memoization Metrics
	StatsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_cache_hits_total",
			Help: "Total number of statistics memoization hits",
		},
	)

	StatsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_cache_misses_total",
			Help: "Total number of statistics memoization misses",
		},
	)

	// Poster Lookup Metrics
	PosterLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_lookups_total",
			Help: "Total number of TMDB poster lookups",
		},
		[]string{"result"}, // "hit", "miss", "error", "stale", "disabled"
	)

	PosterLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_lookup_duration_seconds",
			Help:    "Duration of TMDB poster lookups in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordAPIRequest records latency and count for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordEngineCompute records the duration of one analytics computation.
func RecordEngineCompute(operation string, duration time.Duration) {
	EngineComputeDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDatasetLoad records the outcome of a snapshot load and, on success,
// updates the snapshot size gauges.
func RecordDatasetLoad(duration time.Duration, movies, ratings, tags int, err error) {
	if err != nil {
		DatasetLoadsTotal.WithLabelValues("error").Inc()
		return
	}
	DatasetLoadsTotal.WithLabelValues("success").Inc()
	DatasetLoadDuration.Observe(duration.Seconds())
	DatasetMovies.Set(float64(movies))
	DatasetRatings.Set(float64(ratings))
	DatasetTags.Set(float64(tags))
}

// RecordPosterLookup records one poster lookup outcome.
func RecordPosterLookup(result string, duration time.Duration) {
	PosterLookupsTotal.WithLabelValues(result).Inc()
	if result == "hit" || result == "miss" {
		PosterLookupDuration.Observe(duration.Seconds())
	}
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
