// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package dataset loads the three flat MovieLens datasets and builds the
// immutable, versioned Snapshot the scoring components operate on.
//
// A Snapshot is constructed once from the raw record lists and never mutated
// afterwards, so it is safe to share read-only across concurrent callers.
// When the source files change the whole snapshot is rebuilt and swapped in
// atomically via Store; there is no partial invalidation.
package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cinegraph/internal/models"
)

// Snapshot is an immutable view of the loaded datasets plus the lookup
// indices every scoring component depends on. Index construction is
// O(R+T) for R ratings and T tags.
type Snapshot struct {
	Version  string
	LoadedAt time.Time

	Movies  []models.Movie
	Ratings []models.Rating
	Tags    []models.Tag

	movieByID      map[string]*models.Movie
	ratingsByMovie map[string][]models.Rating
	tagsByMovie    map[string]map[string]struct{}
}

// NewSnapshot builds a snapshot with all indices from raw record lists.
// Ratings and tags referencing unknown movie IDs are indexed anyway; they
// are inert because no movie lookup ever reaches them.
func NewSnapshot(movies []models.Movie, ratings []models.Rating, tags []models.Tag) *Snapshot {
	s := &Snapshot{
		Version:        uuid.New().String(),
		LoadedAt:       time.Now(),
		Movies:         movies,
		Ratings:        ratings,
		Tags:           tags,
		movieByID:      make(map[string]*models.Movie, len(movies)),
		ratingsByMovie: make(map[string][]models.Rating),
		tagsByMovie:    make(map[string]map[string]struct{}),
	}

	for i := range movies {
		s.movieByID[movies[i].ID] = &movies[i]
	}

	for _, r := range ratings {
		s.ratingsByMovie[r.MovieID] = append(s.ratingsByMovie[r.MovieID], r)
	}

	for _, t := range tags {
		text := models.NormalizeTag(t.Text)
		if text == "" {
			continue
		}
		set, ok := s.tagsByMovie[t.MovieID]
		if !ok {
			set = make(map[string]struct{})
			s.tagsByMovie[t.MovieID] = set
		}
		set[text] = struct{}{}
	}

	return s
}

// MovieByID returns the movie with the given ID, or nil when absent.
func (s *Snapshot) MovieByID(id string) *models.Movie {
	return s.movieByID[id]
}

// RatingsFor returns the ratings of a movie. Movies without ratings yield
// an empty result, never an error.
func (s *Snapshot) RatingsFor(movieID string) []models.Rating {
	return s.ratingsByMovie[movieID]
}

// TagsFor returns the set of normalized tags applied to a movie, or nil
// when the movie has no tags.
func (s *Snapshot) TagsFor(movieID string) map[string]struct{} {
	return s.tagsByMovie[movieID]
}

// MovieCount returns the number of movies in the corpus.
func (s *Snapshot) MovieCount() int { return len(s.Movies) }

// RatingCount returns the number of rating records.
func (s *Snapshot) RatingCount() int { return len(s.Ratings) }

// TagCount returns the number of tag records.
func (s *Snapshot) TagCount() int { return len(s.Tags) }
