// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tagcloud

import (
	"math"
	"testing"

	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/stats"
)

func cloudSnapshot() *dataset.Snapshot {
	movies := []models.Movie{
		{ID: "1", Title: "Toy Crew (1995)", Genres: []string{"Animation", "Comedy"}, Year: 1995},
		{ID: "2", Title: "Night Heat (1995)", Genres: []string{"Action", "Crime"}, Year: 1995},
		{ID: "3", Title: "Long Goodbye (2005)", Genres: []string{"Drama"}, Year: 2005},
	}
	ratings := []models.Rating{
		{UserID: "u1", MovieID: "1", Value: 4.0},
		{UserID: "u2", MovieID: "1", Value: 4.0},
		{UserID: "u1", MovieID: "2", Value: 3.0},
		{UserID: "u1", MovieID: "3", Value: 5.0},
	}
	tags := []models.Tag{
		{UserID: "u1", MovieID: "1", Text: "Pixar"},
		{UserID: "u2", MovieID: "1", Text: " pixar "},
		{UserID: "u1", MovieID: "1", Text: "fun"},
		{UserID: "u1", MovieID: "2", Text: "pixar"},
		{UserID: "u1", MovieID: "3", Text: "dark"},
	}
	return dataset.NewSnapshot(movies, ratings, tags)
}

func TestBuild(t *testing.T) {
	snap := cloudSnapshot()
	provider := stats.NewProvider(snap, nil)

	got := Build(snap, provider, Filters{}, 0)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}

	// "pixar" is applied three times across two movies. Each application
	// adds its movie's average to the sum (4.0 + 4.0 + 3.0) while the
	// divisor is the distinct-movie count, so the figure exceeds the
	// rating scale.
	top := got[0]
	if top.Tag != "pixar" {
		t.Fatalf("top tag = %q, want pixar", top.Tag)
	}
	if top.Count != 3 {
		t.Errorf("pixar count = %d, want 3", top.Count)
	}
	if top.AverageRating != 5.5 {
		t.Errorf("pixar AverageRating = %v, want 5.5", top.AverageRating)
	}
	if len(top.MovieIDs) != 2 || top.MovieIDs[0] != "1" || top.MovieIDs[1] != "2" {
		t.Errorf("pixar MovieIDs = %v, want [1 2]", top.MovieIDs)
	}

	// Tied counts order alphabetically.
	if got[1].Tag != "dark" || got[2].Tag != "fun" {
		t.Errorf("tie-break order = %q, %q, want dark, fun", got[1].Tag, got[2].Tag)
	}
}

func TestBuildFilters(t *testing.T) {
	snap := cloudSnapshot()
	provider := stats.NewProvider(snap, nil)

	cases := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"genre disjunction", Filters{Genres: []string{"Animation", "Sci-Fi"}}, []string{"pixar", "fun"}},
		{"unmatched genre", Filters{Genres: []string{"Western"}}, []string{}},
		{"year range", Filters{YearRange: &[2]int{2000, 2010}}, []string{"dark"}},
		{"rating range", Filters{RatingRange: &[2]float64{3.5, 5.0}}, []string{"pixar", "dark", "fun"}},
		{"min movies", Filters{MinMovies: 2}, []string{"pixar"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Build(snap, provider, tc.filters, 0)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d entries %v, want %v", len(got), got, tc.want)
			}
			for i, w := range tc.want {
				if got[i].Tag != w {
					t.Errorf("entry[%d] = %q, want %q", i, got[i].Tag, w)
				}
			}
		})
	}
}

func TestBuildGenreFilterChangesAverages(t *testing.T) {
	snap := cloudSnapshot()
	provider := stats.NewProvider(snap, nil)

	// Restricting to Animation drops the third pixar application, leaving
	// two applications on one movie: (4.0 + 4.0) / 1.
	got := Build(snap, provider, Filters{Genres: []string{"Animation"}}, 0)
	if len(got) == 0 || got[0].Tag != "pixar" {
		t.Fatalf("unexpected cloud %v", got)
	}
	if got[0].Count != 2 {
		t.Errorf("filtered pixar count = %d, want 2", got[0].Count)
	}
	if got[0].AverageRating != 8.0 {
		t.Errorf("filtered pixar AverageRating = %v, want 8.0", got[0].AverageRating)
	}
}

func TestBuildLimitAndNil(t *testing.T) {
	snap := cloudSnapshot()
	provider := stats.NewProvider(snap, nil)

	got := Build(snap, provider, Filters{}, 1)
	if len(got) != 1 || got[0].Tag != "pixar" {
		t.Errorf("limited cloud = %v, want only pixar", got)
	}

	empty := Build(nil, provider, Filters{}, 0)
	if empty == nil || len(empty) != 0 {
		t.Errorf("nil snapshot cloud = %v, want empty slice", empty)
	}
}

func TestSummarize(t *testing.T) {
	snap := cloudSnapshot()
	provider := stats.NewProvider(snap, nil)

	entries := Build(snap, provider, Filters{}, 0)
	summary := Summarize(entries)

	if summary.TotalTags != 3 {
		t.Errorf("TotalTags = %d, want 3", summary.TotalTags)
	}
	if summary.TotalApplications != 5 {
		t.Errorf("TotalApplications = %d, want 5", summary.TotalApplications)
	}
	if summary.MostPopular == nil || summary.MostPopular.Tag != "pixar" {
		t.Errorf("MostPopular = %v, want pixar", summary.MostPopular)
	}
	// Count-weighted mean: (5.5*3 + 5.0 + 4.0) / 5 = 5.1.
	if math.Abs(summary.AverageRating-5.1) > 1e-9 {
		t.Errorf("AverageRating = %v, want 5.1", summary.AverageRating)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalTags != 0 || summary.TotalApplications != 0 || summary.AverageRating != 0 {
		t.Errorf("empty summary = %+v", summary)
	}
	if summary.MostPopular != nil {
		t.Error("MostPopular must be nil for an empty cloud")
	}
}

func TestMovieTags(t *testing.T) {
	snap := cloudSnapshot()

	got := MovieTags(snap, "1")
	if got.TotalTags != 3 {
		t.Errorf("TotalTags = %d, want 3", got.TotalTags)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("got %d distinct tags, want 2", len(got.Tags))
	}
	if got.Tags[0].Tag != "pixar" || got.Tags[0].Count != 2 {
		t.Errorf("top tag = %+v, want pixar x2", got.Tags[0])
	}
	if got.Tags[1].Tag != "fun" || got.Tags[1].Count != 1 {
		t.Errorf("second tag = %+v, want fun x1", got.Tags[1])
	}
}

func TestMovieTagsEmpty(t *testing.T) {
	snap := cloudSnapshot()

	got := MovieTags(snap, "999")
	if got.Tags == nil || len(got.Tags) != 0 || got.TotalTags != 0 {
		t.Errorf("unknown movie summary = %+v", got)
	}

	nilGot := MovieTags(nil, "1")
	if nilGot.Tags == nil || len(nilGot.Tags) != 0 {
		t.Errorf("nil snapshot summary = %+v", nilGot)
	}
}
