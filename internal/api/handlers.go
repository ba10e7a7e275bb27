// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/mood"
	"github.com/tomtom215/cinegraph/internal/poster"
	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/stats"
	"github.com/tomtom215/cinegraph/internal/tagcloud"
)

// Handler carries the shared state every endpoint needs: the dataset
// store, the statistics memoization cache, and the poster loader.
type Handler struct {
	cfg      *config.Config
	store    *dataset.Store
	loader   *dataset.Loader
	posters  *poster.Loader
	memo     *cache.LRU[string, models.MovieStats]
	validate *validator.Validate
	logger   zerolog.Logger

	// reloadMu serializes dataset reloads; concurrent readers keep
	// serving the previous snapshot until the swap.
	reloadMu sync.Mutex
}

// NewHandler wires the endpoint handlers.
func NewHandler(cfg *config.Config, store *dataset.Store, loader *dataset.Loader, posters *poster.Loader) *Handler {
	entries := cfg.Cache.StatsEntries
	if entries <= 0 {
		entries = 4096
	}
	return &Handler{
		cfg:      cfg,
		store:    store,
		loader:   loader,
		posters:  posters,
		memo:     cache.NewLRU[string, models.MovieStats](entries),
		validate: validator.New(),
		logger:   logging.With().Str("component", "api").Logger(),
	}
}

// provider builds a statistics provider over the given snapshot backed by
// the shared memoization cache.
func (h *Handler) provider(snap *dataset.Snapshot) *stats.Provider {
	return stats.NewProvider(snap, h.memo)
}

// snapshot returns the current snapshot, or nil when no dataset has been
// loaded yet.
func (h *Handler) snapshot() *dataset.Snapshot {
	return h.store.Current()
}

// clampLimit parses the "limit" query parameter against configured bounds.
func (h *Handler) clampLimit(r *http.Request) int {
	limit := h.cfg.API.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > h.cfg.API.MaxLimit {
		limit = h.cfg.API.MaxLimit
	}
	return limit
}

// Health reports service liveness and the loaded dataset's dimensions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	payload := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	}
	if snap := h.snapshot(); snap != nil {
		rw.WithDatasetVersion(snap.Version)
		payload["dataset"] = map[string]interface{}{
			"version":  snap.Version,
			"loadedAt": snap.LoadedAt,
			"movies":   snap.MovieCount(),
			"ratings":  snap.RatingCount(),
			"tags":     snap.TagCount(),
		}
	} else {
		payload["status"] = "loading"
	}
	rw.Success(payload)
}

// movieSummary is a movie annotated with headline rating figures.
type movieSummary struct {
	models.Movie
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	ImdbURL       string  `json:"imdbUrl,omitempty"`
}

// Movies lists movies with their headline statistics. Supports optional
// substring search on the title, genre filtering, and offset pagination.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	query := r.URL.Query()
	search := strings.ToLower(strings.TrimSpace(query.Get("search")))
	genre := strings.TrimSpace(query.Get("genre"))
	offset := 0
	if raw := query.Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	limit := h.clampLimit(r)

	provider := h.provider(snap)
	filtered := make([]movieSummary, 0, limit)
	total := 0
	for i := range snap.Movies {
		movie := snap.Movies[i]
		if search != "" && !strings.Contains(strings.ToLower(movie.Title), search) {
			continue
		}
		if genre != "" {
			if _, ok := movie.GenreSet()[genre]; !ok {
				continue
			}
		}
		if total >= offset && len(filtered) < limit {
			st := provider.StatsFor(movie.ID)
			filtered = append(filtered, movieSummary{
				Movie:         movie,
				AverageRating: st.AverageRating,
				TotalRatings:  st.TotalRatings,
				ImdbURL:       movie.ImdbURL(),
			})
		}
		total++
	}

	rw.Success(map[string]interface{}{
		"movies": filtered,
		"total":  total,
		"offset": offset,
		"limit":  limit,
	})
}

// Movie returns one movie with statistics and external links.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	movieID := chi.URLParam(r, "movieID")
	movie := snap.MovieByID(movieID)
	if movie == nil {
		rw.NotFound("movie not found")
		return
	}

	st := h.provider(snap).StatsFor(movieID)
	rw.Success(map[string]interface{}{
		"movie":   movie,
		"stats":   st,
		"imdbUrl": movie.ImdbURL(),
	})
}

// MovieStats returns the full rating statistics for one movie. Unknown
// movies yield empty statistics rather than an error.
func (h *Handler) MovieStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	start := time.Now()
	st := h.provider(snap).StatsFor(chi.URLParam(r, "movieID"))
	metrics.RecordEngineCompute("stats", time.Since(start))

	rw.Success(st)
}

// MovieTimeline returns the monthly rating timeline for one movie.
func (h *Handler) MovieTimeline(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	movieID := chi.URLParam(r, "movieID")
	start := time.Now()
	timeline := stats.Timeline(snap.RatingsFor(movieID))
	metrics.RecordEngineCompute("timeline", time.Since(start))

	rw.Success(map[string]interface{}{
		"movieId":  movieID,
		"timeline": timeline,
	})
}

// MovieTags returns a movie's tags aggregated by frequency.
func (h *Handler) MovieTags(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	movieID := chi.URLParam(r, "movieID")
	rw.Success(tagcloud.MovieTags(snap, movieID))
}

// MoviePoster resolves the TMDB poster URL for one movie. A movie without
// a poster yields an empty URL, not an error.
func (h *Handler) MoviePoster(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	movieID := chi.URLParam(r, "movieID")
	movie := snap.MovieByID(movieID)
	if movie == nil {
		rw.NotFound("movie not found")
		return
	}

	rw.Success(map[string]string{
		"movieId":   movieID,
		"posterUrl": h.posters.Lookup(r.Context(), movie.TmdbID),
	})
}

// recommendRequest is the POST body for recommendation queries.
type recommendRequest struct {
	MovieIDs []string `json:"movieIds" validate:"required,min=1,max=50,dive,required"`
	Limit    int      `json:"limit" validate:"min=0,max=100"`
}

// Recommendations scores the catalog against the reference movies in the
// request body and returns the ranked results.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		rw.ValidationFailed("invalid recommendation request", err.Error())
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = h.cfg.API.DefaultLimit
	}
	if limit > h.cfg.API.MaxLimit {
		limit = h.cfg.API.MaxLimit
	}

	start := time.Now()
	results := recommend.Recommend(snap, h.provider(snap), req.MovieIDs, limit)
	metrics.RecordEngineCompute("recommend", time.Since(start))

	rw.Success(map[string]interface{}{
		"recommendations": results,
		"referenceIds":    req.MovieIDs,
	})
}

// Moods lists the mood catalog.
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{"moods": mood.Catalog()})
}

// MoodMatches classifies the catalog against one mood profile.
func (h *Handler) MoodMatches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	moodID := chi.URLParam(r, "moodID")
	profile := mood.ByID(moodID)
	if profile == nil {
		rw.NotFound("unknown mood")
		return
	}

	start := time.Now()
	matches := mood.Classify(snap, h.provider(snap), moodID, h.clampLimit(r))
	metrics.RecordEngineCompute("mood", time.Since(start))

	rw.Success(map[string]interface{}{
		"mood":    profile,
		"matches": matches,
	})
}

// Compare computes the cross-recommendation analysis between two movies
// given as the "a" and "b" query parameters.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	query := r.URL.Query()
	idA, idB := query.Get("a"), query.Get("b")
	if idA == "" || idB == "" {
		rw.BadRequest("query parameters a and b are required")
		return
	}

	start := time.Now()
	result := recommend.CrossRecommend(snap, h.provider(snap), idA, idB)
	metrics.RecordEngineCompute("crossrec", time.Since(start))

	if result == nil {
		rw.NotFound("movie not found")
		return
	}
	rw.Success(result)
}

// tagCloudRequest is the POST body for tag cloud queries.
type tagCloudRequest struct {
	Genres      []string    `json:"genres"`
	YearRange   *[2]int     `json:"yearRange"`
	RatingRange *[2]float64 `json:"ratingRange"`
	MinMovies   int         `json:"minMovies" validate:"min=0"`
	Limit       int         `json:"limit" validate:"min=0,max=500"`
}

// TagCloud builds a weighted tag cloud over the filtered movie population
// and returns it together with summary statistics.
func (h *Handler) TagCloud(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	req := tagCloudRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			rw.BadRequest("invalid request body")
			return
		}
		if err := h.validate.Struct(&req); err != nil {
			rw.ValidationFailed("invalid tag cloud request", err.Error())
			return
		}
	}

	filters := tagcloud.Filters{
		Genres:      req.Genres,
		YearRange:   req.YearRange,
		RatingRange: req.RatingRange,
		MinMovies:   req.MinMovies,
	}

	start := time.Now()
	entries := tagcloud.Build(snap, h.provider(snap), filters, req.Limit)
	metrics.RecordEngineCompute("tagcloud", time.Since(start))

	rw.Success(map[string]interface{}{
		"tags":    entries,
		"summary": tagcloud.Summarize(entries),
	})
}

// Genres lists the distinct genres present in the snapshot, sorted.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.snapshot()
	if snap == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.WithDatasetVersion(snap.Version)

	seen := make(map[string]struct{})
	for i := range snap.Movies {
		for g := range snap.Movies[i].GenreSet() {
			seen[g] = struct{}{}
		}
	}
	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	rw.Success(map[string]interface{}{"genres": genres})
}

// ReloadDataset re-reads the CSV directory and atomically swaps in the new
// snapshot. In-flight requests keep the snapshot they started with.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	start := time.Now()
	snap, err := h.loader.Load()
	if err != nil {
		metrics.RecordDatasetLoad(time.Since(start), 0, 0, 0, err)
		h.logger.Error().Err(err).Msg("dataset reload failed")
		rw.InternalError("dataset reload failed")
		return
	}
	metrics.RecordDatasetLoad(time.Since(start), snap.MovieCount(), snap.RatingCount(), snap.TagCount(), nil)

	h.store.Swap(snap)
	h.posters.Invalidate()

	h.logger.Info().
		Str("version", snap.Version).
		Int("movies", snap.MovieCount()).
		Int("ratings", snap.RatingCount()).
		Int("tags", snap.TagCount()).
		Msg("dataset reloaded")

	rw.WithDatasetVersion(snap.Version)
	rw.Success(map[string]interface{}{
		"version": snap.Version,
		"movies":  snap.MovieCount(),
		"ratings": snap.RatingCount(),
		"tags":    snap.TagCount(),
	})
}
