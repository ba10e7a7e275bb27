// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package poster resolves movie poster image URLs from TMDB. Lookups are
// best-effort: a missing API key, an unknown movie, or an upstream failure
// all degrade to "no poster" rather than surfacing an error to callers.
package poster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultImageURL = "https://image.tmdb.org/t/p/w500"

	requestTimeout = 5 * time.Second
)

// Client fetches poster paths from the TMDB movie endpoint. Calls run
// through a circuit breaker so a broken or rate-limited upstream stops
// costing request latency.
//
// DETERMINISM NOTE: the breaker uses real time (via sony/gobreaker) for its
// interval and open-state timeout.
type Client struct {
	apiKey   string
	baseURL  string
	imageURL string
	http     *http.Client
	cb       *gobreaker.CircuitBreaker[string]
	logger   zerolog.Logger
}

// NewClient creates a TMDB client. An empty apiKey produces a disabled
// client whose lookups return no poster.
func NewClient(apiKey string) *Client {
	logger := logging.With().Str("component", "poster").Logger()
	cbName := "tmdb-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		// Opens when failure rate >= 60% with at least 10 requests.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("poster circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		imageURL: defaultImageURL,
		http:     &http.Client{Timeout: requestTimeout},
		cb:       cb,
		logger:   logger,
	}
}

// Enabled reports whether the client has an API key to work with.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// movieResponse is the subset of the TMDB movie payload we read.
type movieResponse struct {
	PosterPath string `json:"poster_path"`
}

// PosterURL resolves the full-size poster image URL for a TMDB movie ID.
// It returns "" without error when the client is disabled, the movie has
// no poster, or the upstream call fails.
func (c *Client) PosterURL(ctx context.Context, tmdbID string) string {
	if !c.Enabled() || tmdbID == "" {
		return ""
	}

	url, err := c.cb.Execute(func() (string, error) {
		return c.fetchPosterPath(ctx, tmdbID)
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("tmdb_id", tmdbID).Msg("poster lookup failed")
		return ""
	}
	if url == "" {
		return ""
	}
	return c.imageURL + url
}

func (c *Client) fetchPosterPath(ctx context.Context, tmdbID string) (string, error) {
	endpoint := fmt.Sprintf("%s/movie/%s?api_key=%s", c.baseURL, tmdbID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building poster request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching poster metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		return "", fmt.Errorf("tmdb returned status %d for movie %s", resp.StatusCode, tmdbID)
	}

	var payload movieResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding poster metadata: %w", err)
	}
	return payload.PosterPath, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
