// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package stats

import (
	"math"
	"testing"

	"github.com/tomtom215/cinegraph/internal/models"
)

func ratingsOf(values ...float64) []models.Rating {
	out := make([]models.Rating, len(values))
	for i, v := range values {
		out[i] = models.Rating{UserID: "u", MovieID: "m", Value: v, Timestamp: int64(i)}
	}
	return out
}

func TestCompute_Empty(t *testing.T) {
	s := Compute("1", nil)

	if s.TotalRatings != 0 {
		t.Errorf("TotalRatings = %d, want 0", s.TotalRatings)
	}
	if s.AverageRating != 0 || s.MedianRating != 0 || s.Variance != 0 {
		t.Error("empty input must produce zero statistics")
	}
	if s.Distribution == nil || len(s.Distribution) != 0 {
		t.Error("Distribution must be empty, not nil")
	}
	if s.RecentRatings == nil || len(s.RecentRatings) != 0 {
		t.Error("RecentRatings must be empty, not nil")
	}
}

func TestCompute_SingleRating(t *testing.T) {
	s := Compute("1", ratingsOf(4.0))

	if s.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", s.AverageRating)
	}
	if s.MedianRating != 4.0 {
		t.Errorf("MedianRating = %v, want 4.0", s.MedianRating)
	}
	if s.Variance != 0 {
		t.Errorf("Variance of single rating = %v, want 0", s.Variance)
	}
}

func TestCompute_AverageAndMedian(t *testing.T) {
	// 2.0, 3.0, 4.0, 5.0: mean 3.5, even-count median (3+4)/2 = 3.5.
	s := Compute("1", ratingsOf(2.0, 3.0, 4.0, 5.0))

	if s.AverageRating != 3.5 {
		t.Errorf("AverageRating = %v, want 3.5", s.AverageRating)
	}
	if s.MedianRating != 3.5 {
		t.Errorf("MedianRating = %v, want 3.5", s.MedianRating)
	}
	if s.TotalRatings != 4 {
		t.Errorf("TotalRatings = %d, want 4", s.TotalRatings)
	}
}

func TestCompute_AverageRounding(t *testing.T) {
	// 4.0, 4.5, 4.5: mean 4.3333 rounds to 4.3.
	s := Compute("1", ratingsOf(4.0, 4.5, 4.5))
	if s.AverageRating != 4.3 {
		t.Errorf("AverageRating = %v, want 4.3", s.AverageRating)
	}
}

func TestCompute_PopulationVariance(t *testing.T) {
	// 2 and 4: mean 3, squared deviations 1 and 1, population variance 1.
	s := Compute("1", ratingsOf(2.0, 4.0))
	if math.Abs(s.Variance-1.0) > 1e-9 {
		t.Errorf("Variance = %v, want 1.0", s.Variance)
	}
}

func TestCompute_SkipsNaN(t *testing.T) {
	ratings := append(ratingsOf(3.0, 5.0), models.Rating{UserID: "u", MovieID: "m", Value: math.NaN()})
	s := Compute("1", ratings)

	if s.TotalRatings != 2 {
		t.Errorf("TotalRatings = %d, want 2 (NaN skipped)", s.TotalRatings)
	}
	if s.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", s.AverageRating)
	}
	for _, b := range s.Distribution {
		if math.IsNaN(b.Rating) {
			t.Error("NaN must not appear in distribution")
		}
	}
}

func TestCompute_Distribution(t *testing.T) {
	s := Compute("1", ratingsOf(3.0, 5.0, 3.0, 4.5))

	want := []models.RatingBucket{
		{Rating: 3.0, Count: 2},
		{Rating: 4.5, Count: 1},
		{Rating: 5.0, Count: 1},
	}
	if len(s.Distribution) != len(want) {
		t.Fatalf("distribution length = %d, want %d", len(s.Distribution), len(want))
	}
	for i, b := range want {
		if s.Distribution[i] != b {
			t.Errorf("distribution[%d] = %+v, want %+v", i, s.Distribution[i], b)
		}
	}
}

func TestCompute_RecentRatings(t *testing.T) {
	ratings := make([]models.Rating, 0, 15)
	for i := 0; i < 15; i++ {
		ratings = append(ratings, models.Rating{
			UserID:    "u",
			MovieID:   "m",
			Value:     3.0,
			Timestamp: int64(1000 + i),
		})
	}
	s := Compute("1", ratings)

	if len(s.RecentRatings) != RecentRatingCount {
		t.Fatalf("recent count = %d, want %d", len(s.RecentRatings), RecentRatingCount)
	}
	// Most recent first.
	if s.RecentRatings[0].Timestamp != 1014 {
		t.Errorf("first recent timestamp = %d, want 1014", s.RecentRatings[0].Timestamp)
	}
	for i := 1; i < len(s.RecentRatings); i++ {
		if s.RecentRatings[i].Timestamp > s.RecentRatings[i-1].Timestamp {
			t.Fatal("recent ratings must be ordered newest first")
		}
	}
}

func TestCompute_RecentRatingDate(t *testing.T) {
	// 2015-03-15 00:00:00 UTC.
	s := Compute("1", []models.Rating{{UserID: "u", Value: 4.0, Timestamp: 1426377600}})
	if got := s.RecentRatings[0].Date; got != "2015-03-15" {
		t.Errorf("Date = %q, want 2015-03-15", got)
	}
}

func TestAverage_AllNaN(t *testing.T) {
	ratings := []models.Rating{
		{Value: math.NaN()},
		{Value: math.NaN()},
	}
	if got := Average(ratings); got != 0 {
		t.Errorf("Average of all-NaN = %v, want 0", got)
	}
}
