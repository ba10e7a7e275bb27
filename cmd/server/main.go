// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package main is the entry point for the CineGraph server.
//
// CineGraph is a self-hosted scoring and analytics engine over MovieLens
// style CSV exports. It indexes the movie, rating, and tag corpus into an
// immutable in-memory snapshot and serves rating statistics, timelines,
// similarity-based recommendations, mood classification, movie-to-movie
// comparison, and tag clouds over a REST API.
//
// # Startup Order
//
//  1. Configuration: Koanf v2 layered load (defaults, YAML file, env vars)
//  2. Logging: zerolog, JSON by default
//  3. Dataset: CSV snapshot load from MOVIELENS_DIR
//  4. HTTP Server: chi router under a suture supervision tree
//
// A failed initial dataset load does not abort startup; the server comes
// up degraded and answers 503 until POST /api/v1/dataset/reload succeeds.
//
// # Configuration
//
// Environment variables override the config file, which overrides the
// defaults. The useful ones:
//
//	export MOVIELENS_DIR=/data/movielens   # movies.csv, ratings.csv, tags.csv
//	export HTTP_PORT=8099
//	export TMDB_API_KEY=...                # optional, enables poster lookups
//	export LOG_LEVEL=debug
//	./cinegraph
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the server stops accepting
// connections and waits up to 10s for in-flight requests.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinegraph/internal/api"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/poster"
	"github.com/tomtom215/cinegraph/internal/supervisor"
	"github.com/tomtom215/cinegraph/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().Str("version", version).Msg("cinegraph starting")

	store := dataset.NewStore()
	loader := dataset.NewLoader(cfg.Dataset.Dir, logging.With().Str("component", "dataset").Logger())

	start := time.Now()
	snap, err := loader.Load()
	if err != nil {
		metrics.RecordDatasetLoad(time.Since(start), 0, 0, 0, err)
		logging.Warn().Err(err).Str("dir", cfg.Dataset.Dir).
			Msg("initial dataset load failed, serving degraded until reload")
	} else {
		metrics.RecordDatasetLoad(time.Since(start), snap.MovieCount(), snap.RatingCount(), snap.TagCount(), nil)
		store.Swap(snap)
		logging.Info().
			Str("version", snap.Version).
			Int("movies", snap.MovieCount()).
			Int("ratings", snap.RatingCount()).
			Int("tags", snap.TagCount()).
			Dur("elapsed", time.Since(start)).
			Msg("dataset loaded")
	}

	posters := poster.NewLoader(poster.NewClient(cfg.TMDB.APIKey))
	if cfg.TMDB.APIKey == "" {
		logging.Info().Msg("TMDB API key not configured, poster lookups disabled")
	}

	handler := api.NewHandler(cfg, store, loader, posters)
	router := api.NewRouter(handler, api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.API.RateLimitReqs,
		RateLimitWindow:    cfg.API.RateLimitWindow,
	}))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("http server listening")
	if err := tree.Serve(ctx); err != nil && err != context.Canceled {
		logging.Error().Err(err).Msg("supervisor exited with error")
		os.Exit(1)
	}
	logging.Info().Msg("cinegraph stopped")
}
