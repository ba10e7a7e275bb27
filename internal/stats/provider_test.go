// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package stats

import (
	"testing"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
)

func snapshotWith(ratings []models.Rating) *dataset.Snapshot {
	movies := []models.Movie{{ID: "1", Title: "Test (2000)", Genres: []string{"Drama"}}}
	return dataset.NewSnapshot(movies, ratings, nil)
}

func TestProvider_NilSnapshot(t *testing.T) {
	p := NewProvider(nil, nil)
	s := p.StatsFor("1")

	if s.TotalRatings != 0 {
		t.Errorf("TotalRatings = %d, want 0", s.TotalRatings)
	}
	if s.Distribution == nil || s.RecentRatings == nil {
		t.Error("nil snapshot must still produce empty, non-nil slices")
	}
}

func TestProvider_WithoutMemo(t *testing.T) {
	snap := snapshotWith([]models.Rating{{UserID: "u1", MovieID: "1", Value: 4.0}})
	p := NewProvider(snap, nil)

	if got := p.AverageFor("1"); got != 4.0 {
		t.Errorf("AverageFor = %v, want 4.0", got)
	}
}

func TestProvider_Memoizes(t *testing.T) {
	snap := snapshotWith([]models.Rating{
		{UserID: "u1", MovieID: "1", Value: 3.0},
		{UserID: "u2", MovieID: "1", Value: 5.0},
	})
	memo := cache.NewLRU[string, models.MovieStats](16)
	p := NewProvider(snap, memo)

	first := p.StatsFor("1")
	second := p.StatsFor("1")
	if first.AverageRating != second.AverageRating || first.TotalRatings != second.TotalRatings {
		t.Error("memoized result must match computed result")
	}
	if memo.Len() != 1 {
		t.Errorf("memo.Len() = %d, want 1", memo.Len())
	}
}

func TestProvider_VersionKeyedAcrossSnapshots(t *testing.T) {
	memo := cache.NewLRU[string, models.MovieStats](16)

	snapA := snapshotWith([]models.Rating{{UserID: "u1", MovieID: "1", Value: 2.0}})
	pa := NewProvider(snapA, memo)
	if got := pa.AverageFor("1"); got != 2.0 {
		t.Fatalf("snapshot A average = %v, want 2.0", got)
	}

	// A new snapshot with different ratings must not see A's cached stats.
	snapB := snapshotWith([]models.Rating{{UserID: "u1", MovieID: "1", Value: 5.0}})
	pb := NewProvider(snapB, memo)
	if got := pb.AverageFor("1"); got != 5.0 {
		t.Errorf("snapshot B average = %v, want 5.0 (stale cache entry served)", got)
	}
}

func TestProvider_UnknownMovie(t *testing.T) {
	snap := snapshotWith(nil)
	p := NewProvider(snap, nil)

	s := p.StatsFor("does-not-exist")
	if s.TotalRatings != 0 || s.AverageRating != 0 {
		t.Error("unknown movies must yield zero statistics")
	}
	if p.VarianceFor("does-not-exist") != 0 {
		t.Error("unknown movie variance must be 0")
	}
}
