// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/similarity"
)

// Cross-recommendation confidence weighting. Fan overlap and genre match
// carry the same weight as the composite scorer's leading terms; tag
// similarity refines, mirroring the 0.4/0.4/0.2 split.
const (
	crossUserWeight  = 0.4
	crossGenreWeight = 0.4
	crossTagWeight   = 0.2
)

// CrossRecommend analyzes exactly two movies and reports how strongly fans
// of one would take to the other. User overlap compares the two sets of
// users who rated each movie at or above the enthusiast threshold; genre
// and tag match use the same symmetric Jaccard primitive as the
// recommendation scorer. Returns nil when the snapshot is absent or either
// movie is unknown.
func CrossRecommend(snap *dataset.Snapshot, stats StatsProvider, movieIDA, movieIDB string) *models.CrossRecommendation {
	if snap == nil {
		return nil
	}
	a := snap.MovieByID(movieIDA)
	b := snap.MovieByID(movieIDB)
	if a == nil || b == nil {
		return nil
	}

	ratersA := cohortRaters(snap, movieIDA)
	ratersB := cohortRaters(snap, movieIDB)
	userJaccard := similarity.Jaccard(ratersA, ratersB)
	sharedUsers := similarity.IntersectCount(ratersA, ratersB)

	genresA := a.GenreSet()
	genresB := b.GenreSet()
	genreJaccard := similarity.Jaccard(genresA, genresB)
	tagJaccard := similarity.Jaccard(snap.TagsFor(movieIDA), snap.TagsFor(movieIDB))

	confidence := crossUserWeight*userJaccard + crossGenreWeight*genreJaccard + crossTagWeight*tagJaccard

	return &models.CrossRecommendation{
		Confidence:    percent(confidence),
		UserOverlap:   percent(userJaccard),
		SharedUsers:   sharedUsers,
		GenreMatch:    percent(genreJaccard),
		TagSimilarity: percent(tagJaccard),
		CommonAppeal:  commonAppeal(userJaccard, genreJaccard, tagJaccard, genresA, genresB, stats, movieIDA, movieIDB),
	}
}

// commonAppeal applies the threshold-justification style of the
// recommendation scorer to the pairwise measures. Rules are independent;
// the list is empty when none fire.
func commonAppeal(userJaccard, genreJaccard, tagJaccard float64, genresA, genresB map[string]struct{}, stats StatsProvider, movieIDA, movieIDB string) []string {
	appeal := make([]string, 0, 4)

	if userJaccard > tagReasonThreshold {
		appeal = append(appeal, "Strong overlap in fans who loved both")
	}

	if genreJaccard > genreReasonThreshold {
		if shared := sharedGenres(genresA, genresB); len(shared) > 0 {
			appeal = append(appeal, fmt.Sprintf("Both are %s films", strings.Join(shared, ", ")))
		}
	}

	if tagJaccard > tagReasonThreshold {
		appeal = append(appeal, "Tagged with similar themes")
	}

	avgA := stats.StatsFor(movieIDA).AverageRating
	avgB := stats.StatsFor(movieIDB).AverageRating
	if avgA >= highRatingThreshold && avgB >= highRatingThreshold {
		appeal = append(appeal, "Both highly rated by the community")
	}

	return appeal
}

// sharedGenres returns the sorted intersection of two genre sets.
func sharedGenres(a, b map[string]struct{}) []string {
	shared := make([]string, 0, len(a))
	for g := range a {
		if _, ok := b[g]; ok {
			shared = append(shared, g)
		}
	}
	sort.Strings(shared)
	return shared
}

// percent converts a [0,1] score to a rounded integer percentage.
func percent(v float64) int {
	return int(math.Round(v * 100))
}
