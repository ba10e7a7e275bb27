// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package stats computes per-movie descriptive statistics and the monthly
// rating timeline. Everything here is a pure function over a rating slice;
// Provider adds snapshot-scoped memoization on top.
//
// Edge-case contract:
//   - n=0: average, median, and variance are 0; distribution and recent
//     lists are empty.
//   - n=1: variance is 0.
//   - NaN rating values (unparseable source fields) are skipped by every
//     aggregate so they cannot corrupt a sum or mean.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/tomtom215/cinegraph/internal/models"
)

// RecentRatingCount is the number of most-recent ratings kept per movie.
const RecentRatingCount = 10

// Compute derives the full statistics for one movie's ratings.
func Compute(movieID string, ratings []models.Rating) models.MovieStats {
	values := validValues(ratings)

	s := models.MovieStats{
		MovieID:       movieID,
		TotalRatings:  len(values),
		Distribution:  []models.RatingBucket{},
		RecentRatings: []models.RecentRating{},
	}
	if len(values) == 0 {
		return s
	}

	s.AverageRating = round1(mean(values))
	s.MedianRating = round1(median(values))
	s.Variance = variance(values)
	s.Distribution = distribution(values)
	s.RecentRatings = recent(ratings)
	return s
}

// Average returns only the rounded mean rating, 0 for no ratings.
func Average(ratings []models.Rating) float64 {
	values := validValues(ratings)
	if len(values) == 0 {
		return 0
	}
	return round1(mean(values))
}

// Variance returns the population variance of the rating values,
// 0 for fewer than two ratings.
func Variance(ratings []models.Rating) float64 {
	return variance(validValues(ratings))
}

// validValues extracts the parseable rating values.
func validValues(ratings []models.Rating) []float64 {
	values := make([]float64, 0, len(ratings))
	for i := range ratings {
		if ratings[i].Valid() {
			values = append(values, ratings[i].Value)
		}
	}
	return values
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median sorts a copy ascending and takes the middle value, or the mean of
// the two middle values for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// variance is the population variance: mean squared deviation divided by n,
// not n-1. Zero for fewer than two values.
func variance(values []float64) float64 {
	n := len(values)
	if n <= 1 {
		return 0
	}

	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(n)
}

// distribution counts each distinct rating value, sorted ascending by value.
func distribution(values []float64) []models.RatingBucket {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}

	buckets := make([]models.RatingBucket, 0, len(counts))
	for v, c := range counts {
		buckets = append(buckets, models.RatingBucket{Rating: v, Count: c})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Rating < buckets[j].Rating
	})
	return buckets
}

// recent picks the RecentRatingCount ratings with the largest timestamps,
// each annotated with a date string. Ties are broken by original order so
// the result is deterministic.
func recent(ratings []models.Rating) []models.RecentRating {
	valid := make([]models.Rating, 0, len(ratings))
	for i := range ratings {
		if ratings[i].Valid() {
			valid = append(valid, ratings[i])
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Timestamp > valid[j].Timestamp
	})
	if len(valid) > RecentRatingCount {
		valid = valid[:RecentRatingCount]
	}

	out := make([]models.RecentRating, 0, len(valid))
	for _, r := range valid {
		out = append(out, models.RecentRating{
			UserID:    r.UserID,
			Rating:    r.Value,
			Timestamp: r.Timestamp,
			Date:      time.Unix(r.Timestamp, 0).UTC().Format("2006-01-02"),
		})
	}
	return out
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
