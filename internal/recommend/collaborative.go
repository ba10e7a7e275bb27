// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
)

// EnthusiastCohort returns the distinct users who rated any reference movie
// at or above the enthusiast threshold. Unparseable rating values never
// qualify.
func EnthusiastCohort(snap *dataset.Snapshot, referenceIDs []string) map[string]struct{} {
	cohort := make(map[string]struct{})
	for _, id := range referenceIDs {
		for _, r := range snap.RatingsFor(id) {
			if r.Valid() && r.Value >= enthusiastThreshold {
				cohort[r.UserID] = struct{}{}
			}
		}
	}
	return cohort
}

// CollaborativeScore scores a candidate by the taste of the enthusiast
// cohort: the cohort members' mean rating of the candidate normalized to
// [0,1], damped by a confidence factor that grows with the number of such
// ratings and saturates at confidenceSaturation. Returns 0 for an empty
// cohort or a candidate with no cohort ratings.
func CollaborativeScore(snap *dataset.Snapshot, cohort map[string]struct{}, candidateID string) float64 {
	if len(cohort) == 0 {
		return 0
	}

	var sum float64
	var count int
	for _, r := range snap.RatingsFor(candidateID) {
		if !r.Valid() {
			continue
		}
		if _, ok := cohort[r.UserID]; ok {
			sum += r.Value
			count++
		}
	}
	if count == 0 {
		return 0
	}

	avg := sum / float64(count)
	confidence := float64(count) / confidenceSaturation
	if confidence > 1 {
		confidence = 1
	}
	return (avg / ratingScale) * confidence
}

// cohortRaters returns the users who rated the movie at or above the
// enthusiast threshold, used for cross-recommendation fan overlap.
func cohortRaters(snap *dataset.Snapshot, movieID string) map[string]struct{} {
	raters := make(map[string]struct{})
	for _, r := range snap.RatingsFor(movieID) {
		if r.Valid() && r.Value >= enthusiastThreshold {
			raters[r.UserID] = struct{}{}
		}
	}
	return raters
}

// resolveMovies maps reference IDs to movies present in the corpus,
// silently dropping unknown IDs.
func resolveMovies(snap *dataset.Snapshot, ids []string) []*models.Movie {
	movies := make([]*models.Movie, 0, len(ids))
	for _, id := range ids {
		if m := snap.MovieByID(id); m != nil {
			movies = append(movies, m)
		}
	}
	return movies
}
