// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/models"
)

// Dataset file names within the configured directory (MovieLens layout).
const (
	moviesFile  = "movies.csv"
	ratingsFile = "ratings.csv"
	tagsFile    = "tags.csv"
	linksFile   = "links.csv"
)

// Loader reads the flat CSV datasets from a directory and produces
// snapshots. It is stateless; a new snapshot is built on every Load call.
type Loader struct {
	dir    string
	logger zerolog.Logger
}

// NewLoader creates a loader for the given dataset directory.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(dir string, logger zerolog.Logger) *Loader {
	return &Loader{
		dir:    dir,
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// Load reads all dataset files and builds a fresh snapshot.
// The links file is optional; the other three are required.
func (l *Loader) Load() (*Snapshot, error) {
	movies, err := l.loadMovies()
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	ratings, err := l.loadRatings()
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	tags, err := l.loadTags()
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}

	links, err := l.loadLinks()
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}
	attachLinks(movies, links)

	snap := NewSnapshot(movies, ratings, tags)

	l.logger.Info().
		Str("version", snap.Version).
		Int("movies", len(movies)).
		Int("ratings", len(ratings)).
		Int("tags", len(tags)).
		Int("links", len(links)).
		Msg("dataset loaded")

	return snap, nil
}

// loadMovies parses movies.csv (movieId,title,genres).
func (l *Loader) loadMovies() ([]models.Movie, error) {
	rows, err := l.readCSV(moviesFile, 3)
	if err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		title := row[1]
		movies = append(movies, models.Movie{
			ID:     row[0],
			Title:  title,
			Genres: splitGenres(row[2]),
			Year:   models.ExtractYear(title),
		})
	}
	return movies, nil
}

// loadRatings parses ratings.csv (userId,movieId,rating,timestamp).
// Unparseable values become NaN / zero rather than failing the load;
// downstream aggregates skip them.
func (l *Loader) loadRatings() ([]models.Rating, error) {
	rows, err := l.readCSV(ratingsFile, 4)
	if err != nil {
		return nil, err
	}

	ratings := make([]models.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, models.Rating{
			UserID:    row[0],
			MovieID:   row[1],
			Value:     parseRatingValue(row[2]),
			Timestamp: parseTimestamp(row[3]),
		})
	}
	return ratings, nil
}

// loadTags parses tags.csv (userId,movieId,tag,timestamp).
func (l *Loader) loadTags() ([]models.Tag, error) {
	rows, err := l.readCSV(tagsFile, 4)
	if err != nil {
		return nil, err
	}

	tags := make([]models.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, models.Tag{
			UserID:    row[0],
			MovieID:   row[1],
			Text:      row[2],
			Timestamp: parseTimestamp(row[3]),
		})
	}
	return tags, nil
}

// loadLinks parses links.csv (movieId,imdbId,tmdbId). A missing file is
// not an error; external IDs are an optional enrichment.
func (l *Loader) loadLinks() ([]models.Link, error) {
	path := filepath.Join(l.dir, linksFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		l.logger.Debug().Str("file", linksFile).Msg("links file absent, skipping")
		return nil, nil
	}

	rows, err := l.readCSV(linksFile, 3)
	if err != nil {
		return nil, err
	}

	links := make([]models.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, models.Link{
			MovieID: row[0],
			ImdbID:  row[1],
			TmdbID:  row[2],
		})
	}
	return links, nil
}

// readCSV reads a dataset file, skipping the header row and any row with
// fewer than minFields fields.
func (l *Loader) readCSV(name string, minFields int) ([][]string, error) {
	path := filepath.Join(l.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // datasets are hand-curated, tolerate ragged rows
	reader.LazyQuotes = true

	var rows [][]string
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if first {
			first = false
			if isHeaderRow(row) {
				continue
			}
		}
		if len(row) < minFields {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isHeaderRow detects the column-name row every MovieLens file starts with.
func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(row[0])) {
	case "movieid", "userid":
		return true
	}
	return false
}

// splitGenres splits the pipe-delimited genre list, dropping empty entries
// and the MovieLens "(no genres listed)" placeholder.
func splitGenres(raw string) []string {
	parts := strings.Split(raw, "|")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, "(no genres listed)") {
			continue
		}
		genres = append(genres, p)
	}
	return genres
}

// parseRatingValue parses a decimal rating, NaN when unparseable.
func parseRatingValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseTimestamp parses integer seconds since epoch, 0 when unparseable.
func parseTimestamp(raw string) int64 {
	ts, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

// attachLinks merges external IDs onto the movie records in place.
func attachLinks(movies []models.Movie, links []models.Link) {
	if len(links) == 0 {
		return
	}
	byID := make(map[string]models.Link, len(links))
	for _, ln := range links {
		byID[ln.MovieID] = ln
	}
	for i := range movies {
		if ln, ok := byID[movies[i].ID]; ok {
			movies[i].ImdbID = ln.ImdbID
			movies[i].TmdbID = ln.TmdbID
		}
	}
}
