// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinegraph/internal/middleware"
)

// Router assembles the HTTP routing tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router over the given handler and middleware stack.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	if mw == nil {
		mw = NewMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup builds the chi routing tree with the full middleware stack.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)
		r.Get("/genres", router.handler.Genres)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.handler.Movies)
			r.Get("/{movieID}", router.handler.Movie)
			r.Get("/{movieID}/stats", router.handler.MovieStats)
			r.Get("/{movieID}/timeline", router.handler.MovieTimeline)
			r.Get("/{movieID}/tags", router.handler.MovieTags)
			r.Get("/{movieID}/poster", router.handler.MoviePoster)
		})

		r.Post("/recommendations", router.handler.Recommendations)

		r.Route("/moods", func(r chi.Router) {
			r.Get("/", router.handler.Moods)
			r.Get("/{moodID}/matches", router.handler.MoodMatches)
		})

		r.Get("/compare", router.handler.Compare)
		r.Post("/tagcloud", router.handler.TagCloud)

		r.Post("/dataset/reload", router.handler.ReloadDataset)
	})

	// Prometheus scrape endpoint, outside the rate limited tree.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
