// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package models defines the domain types shared across the scoring engine:
// the three raw record types (Movie, Rating, Tag), the optional external-ID
// link record, and the derived result types produced by the analytics
// components. All types are plain values; none carry behavior beyond small
// accessors, so they can be shared read-only across concurrent callers.
package models

import (
	"math"
	"regexp"
	"strings"
)

// yearPattern extracts a 4-digit release year embedded in a title,
// e.g. "Toy Story (1995)".
var yearPattern = regexp.MustCompile(`\((\d{4})\)`)

// Movie is an item from the movie corpus. Genres are stored as an ordered
// list but are semantically a set (the source format joins them with "|").
type Movie struct {
	ID     string   `json:"movieId"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`

	// Year is the release year extracted from the title's 4-digit
	// parenthetical, or 0 when the title carries none.
	Year int `json:"year,omitempty"`

	// External identifiers from the links dataset (optional).
	ImdbID string `json:"imdbId,omitempty"`
	TmdbID string `json:"tmdbId,omitempty"`
}

// GenreSet returns the movie's genres as a set, skipping empty entries.
func (m *Movie) GenreSet() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Genres))
	for _, g := range m.Genres {
		g = strings.TrimSpace(g)
		if g != "" {
			set[g] = struct{}{}
		}
	}
	return set
}

// ShortTitle returns the title with any trailing "(YYYY)" suffix stripped.
func (m *Movie) ShortTitle() string {
	return strings.TrimSpace(trailingYearPattern.ReplaceAllString(m.Title, ""))
}

// ImdbURL returns the IMDB page URL for the movie, or "" without a link.
func (m *Movie) ImdbURL() string {
	if m.ImdbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/tt" + m.ImdbID + "/"
}

var trailingYearPattern = regexp.MustCompile(`\s*\(\d{4}\)$`)

// ExtractYear parses a release year out of a movie title.
// Returns 0 when the title has no 4-digit parenthetical.
func ExtractYear(title string) int {
	match := yearPattern.FindStringSubmatch(title)
	if match == nil {
		return 0
	}
	year := 0
	for _, c := range match[1] {
		year = year*10 + int(c-'0')
	}
	return year
}

// Rating is a single user rating of a movie. Value is NaN when the source
// field could not be parsed; aggregate computations skip NaN entries.
type Rating struct {
	UserID    string  `json:"userId"`
	MovieID   string  `json:"movieId"`
	Value     float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// Valid reports whether the rating carries a parseable numeric value.
func (r *Rating) Valid() bool {
	return !math.IsNaN(r.Value)
}

// Tag is a free-text tag a user applied to a movie. Text is kept verbatim;
// NormalizeTag produces the canonical form used for all comparisons.
type Tag struct {
	UserID    string `json:"userId"`
	MovieID   string `json:"movieId"`
	Text      string `json:"tag"`
	Timestamp int64  `json:"timestamp"`
}

// NormalizeTag lower-cases and trims a tag so case/whitespace variants of
// the same text compare equal everywhere tags are matched.
func NormalizeTag(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Link maps a movie to its external identifiers.
type Link struct {
	MovieID string `json:"movieId"`
	ImdbID  string `json:"imdbId"`
	TmdbID  string `json:"tmdbId"`
}
