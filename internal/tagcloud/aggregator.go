// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package tagcloud aggregates the tag corpus into weighted clouds and
// per-movie tag summaries.
package tagcloud

import (
	"sort"

	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
)

// DefaultLimit bounds the cloud size when the caller passes limit <= 0.
const DefaultLimit = 50

// StatsProvider supplies per-movie rating statistics.
type StatsProvider interface {
	StatsFor(movieID string) models.MovieStats
	AverageFor(movieID string) float64
}

// Filters narrows the movie population a cloud is built from. Zero values
// mean "no constraint": an empty genre list admits every genre, a nil
// range admits every year or rating, MinMovies of 0 or 1 keeps every tag.
type Filters struct {
	Genres      []string    `json:"genres,omitempty"`
	YearRange   *[2]int     `json:"yearRange,omitempty"`
	RatingRange *[2]float64 `json:"ratingRange,omitempty"`
	MinMovies   int         `json:"minMovies,omitempty"`
}

// matches reports whether a movie passes the filters. Genre filtering is a
// disjunction: any shared genre admits the movie.
func (f Filters) matches(movie models.Movie, stats StatsProvider) bool {
	if len(f.Genres) > 0 {
		have := movie.GenreSet()
		found := false
		for _, g := range f.Genres {
			if _, ok := have[g]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.YearRange != nil {
		if movie.Year < f.YearRange[0] || movie.Year > f.YearRange[1] {
			return false
		}
	}
	if f.RatingRange != nil {
		avg := stats.AverageFor(movie.ID)
		if avg < f.RatingRange[0] || avg > f.RatingRange[1] {
			return false
		}
	}
	return true
}

type accumulator struct {
	count     int
	ratingSum float64
	movieIDs  map[string]struct{}
}

// Build aggregates every tag application on movies passing the filters into
// a cloud ordered by occurrence count, strongest first. Each application
// contributes the movie's average rating to the tag's rating sum, while the
// reported average divides by the number of distinct movies, so heavily
// re-tagged movies pull a tag's average toward their own.
func Build(snap *dataset.Snapshot, stats StatsProvider, filters Filters, limit int) []models.TagCloudEntry {
	if snap == nil {
		return []models.TagCloudEntry{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	eligible := make(map[string]struct{}, len(snap.Movies))
	for _, movie := range snap.Movies {
		if filters.matches(movie, stats) {
			eligible[movie.ID] = struct{}{}
		}
	}

	acc := make(map[string]*accumulator)
	for _, tag := range snap.Tags {
		if _, ok := eligible[tag.MovieID]; !ok {
			continue
		}
		text := models.NormalizeTag(tag.Text)
		if text == "" {
			continue
		}
		a := acc[text]
		if a == nil {
			a = &accumulator{movieIDs: make(map[string]struct{})}
			acc[text] = a
		}
		a.count++
		a.ratingSum += stats.AverageFor(tag.MovieID)
		a.movieIDs[tag.MovieID] = struct{}{}
	}

	minMovies := filters.MinMovies
	if minMovies < 1 {
		minMovies = 1
	}

	entries := make([]models.TagCloudEntry, 0, len(acc))
	for text, a := range acc {
		if len(a.movieIDs) < minMovies {
			continue
		}
		ids := make([]string, 0, len(a.movieIDs))
		for id := range a.movieIDs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		entries = append(entries, models.TagCloudEntry{
			Tag:           text,
			Count:         a.count,
			AverageRating: a.ratingSum / float64(len(a.movieIDs)),
			MovieIDs:      ids,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Tag < entries[j].Tag
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Summarize reduces a cloud to headline figures. MostPopular points at the
// leading entry of the given cloud, so callers must not mutate it.
func Summarize(entries []models.TagCloudEntry) models.TagCloudSummary {
	summary := models.TagCloudSummary{TotalTags: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	var ratingSum float64
	for i := range entries {
		summary.TotalApplications += entries[i].Count
		ratingSum += entries[i].AverageRating * float64(entries[i].Count)
	}
	summary.MostPopular = &entries[0]
	if summary.TotalApplications > 0 {
		summary.AverageRating = ratingSum / float64(summary.TotalApplications)
	}
	return summary
}

// MovieTags aggregates a single movie's tag applications by normalized text,
// most frequent first. Ties order alphabetically.
func MovieTags(snap *dataset.Snapshot, movieID string) models.MovieTagSummary {
	if snap == nil {
		return models.MovieTagSummary{Tags: []models.TagFrequency{}}
	}

	counts := make(map[string]int)
	total := 0
	for _, tag := range snap.Tags {
		if tag.MovieID != movieID {
			continue
		}
		text := models.NormalizeTag(tag.Text)
		if text == "" {
			continue
		}
		counts[text]++
		total++
	}

	tags := make([]models.TagFrequency, 0, len(counts))
	for text, count := range counts {
		tags = append(tags, models.TagFrequency{Tag: text, Count: count})
	}
	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	return models.MovieTagSummary{Tags: tags, TotalTags: total}
}
