// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package stats

import (
	"sort"
	"time"

	"github.com/tomtom215/cinegraph/internal/models"
)

// monthBucket accumulates one calendar month of ratings.
type monthBucket struct {
	month time.Time
	sum   float64
	count int
}

// Timeline groups a movie's ratings by calendar month (UTC) and returns the
// points in chronological order. Each point carries the month's mean and a
// centered 3-month moving average; the window clips at the sequence
// boundaries, and the averaged value is the count-weighted mean of the
// ratings in the window, not a mean of the per-month means.
func Timeline(ratings []models.Rating) []models.TimelinePoint {
	buckets := make(map[time.Time]*monthBucket)
	for i := range ratings {
		r := &ratings[i]
		if !r.Valid() {
			continue
		}
		t := time.Unix(r.Timestamp, 0).UTC()
		month := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

		b, ok := buckets[month]
		if !ok {
			b = &monthBucket{month: month}
			buckets[month] = b
		}
		b.sum += r.Value
		b.count++
	}
	if len(buckets) == 0 {
		return []models.TimelinePoint{}
	}

	ordered := make([]*monthBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].month.Before(ordered[j].month)
	})

	points := make([]models.TimelinePoint, len(ordered))
	for i, b := range ordered {
		points[i] = models.TimelinePoint{
			Month:  b.month,
			Rating: b.sum / float64(b.count),
			Count:  b.count,
		}
	}

	// Window offsets [-1,+1], clipped at the boundaries; edge points use a
	// 2-month window.
	for i := range points {
		lo := i - 1
		if lo < 0 {
			lo = 0
		}
		hi := i + 2
		if hi > len(points) {
			hi = len(points)
		}

		var weightedSum float64
		var totalCount int
		for _, b := range ordered[lo:hi] {
			weightedSum += b.sum
			totalCount += b.count
		}
		points[i].MovingAverage = weightedSum / float64(totalCount)
	}

	return points
}
