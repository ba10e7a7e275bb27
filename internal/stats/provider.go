// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package stats

import (
	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/models"
)

// Provider serves per-movie statistics for a snapshot, memoizing results in
// an LRU keyed by snapshot version and movie ID. The cache may be shared
// across providers (and therefore across snapshot generations); version
// prefixes keep stale entries from ever being served.
type Provider struct {
	snap *dataset.Snapshot
	memo *cache.LRU[string, models.MovieStats]
}

// NewProvider creates a provider over the given snapshot. memo may be nil,
// in which case every call computes from scratch.
func NewProvider(snap *dataset.Snapshot, memo *cache.LRU[string, models.MovieStats]) *Provider {
	return &Provider{snap: snap, memo: memo}
}

// StatsFor returns the statistics for a movie. Unknown movies yield zero
// stats, never an error.
func (p *Provider) StatsFor(movieID string) models.MovieStats {
	if p.snap == nil {
		return models.MovieStats{MovieID: movieID, Distribution: []models.RatingBucket{}, RecentRatings: []models.RecentRating{}}
	}
	if p.memo == nil {
		return Compute(movieID, p.snap.RatingsFor(movieID))
	}
	key := p.snap.Version + ":" + movieID
	if s, ok := p.memo.Get(key); ok {
		metrics.StatsCacheHits.Inc()
		return s
	}
	metrics.StatsCacheMisses.Inc()
	s := Compute(movieID, p.snap.RatingsFor(movieID))
	p.memo.Add(key, s)
	return s
}

// AverageFor returns the rounded mean rating for a movie.
func (p *Provider) AverageFor(movieID string) float64 {
	return p.StatsFor(movieID).AverageRating
}

// VarianceFor returns the population rating variance for a movie.
func (p *Provider) VarianceFor(movieID string) float64 {
	return p.StatsFor(movieID).Variance
}
