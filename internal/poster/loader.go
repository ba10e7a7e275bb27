// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package poster

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

const cacheSize = 2048

// Loader caches resolved poster URLs and guards against stale responses.
// Each Invalidate bumps a generation counter; a lookup that started under
// an older generation discards its result instead of caching it, so a
// dataset reload never publishes poster URLs fetched for the previous
// dataset.
type Loader struct {
	client     *Client
	generation atomic.Uint64
	memo       *cache.LRU[string, string]
}

// NewLoader wraps a client with caching and stale-response discard.
func NewLoader(client *Client) *Loader {
	return &Loader{
		client: client,
		memo:   cache.NewLRU[string, string](cacheSize),
	}
}

// Invalidate drops all cached poster URLs and marks in-flight lookups
// stale.
func (l *Loader) Invalidate() {
	l.generation.Add(1)
	l.memo.Purge()
}

// Lookup returns the poster URL for a TMDB movie ID, or "" when no poster
// is available. Results are cached per generation.
func (l *Loader) Lookup(ctx context.Context, tmdbID string) string {
	if l.client == nil || !l.client.Enabled() {
		metrics.RecordPosterLookup("disabled", 0)
		return ""
	}
	if tmdbID == "" {
		return ""
	}

	if url, ok := l.memo.Get(tmdbID); ok {
		metrics.RecordPosterLookup("hit", 0)
		return url
	}

	gen := l.generation.Load()
	start := time.Now()
	url := l.client.PosterURL(ctx, tmdbID)
	elapsed := time.Since(start)

	if l.generation.Load() != gen {
		metrics.RecordPosterLookup("stale", elapsed)
		return ""
	}
	if url == "" {
		metrics.RecordPosterLookup("error", elapsed)
		return ""
	}

	l.memo.Add(tmdbID, url)
	metrics.RecordPosterLookup("miss", elapsed)
	return url
}
