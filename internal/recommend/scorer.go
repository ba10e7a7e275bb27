// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/similarity"
)

// Recommend ranks the candidate pool (all movies minus the references)
// against the reference set using the hybrid composite score:
//
//	composite = 0.4·genre + 0.4·collaborative + 0.2·tag
//
// where genre is the mean symmetric Jaccard of the candidate's genres
// against each reference, collaborative is the enthusiast-cohort score, and
// tag is the Jaccard of the candidate's tags against the union of the
// references' tags. Candidates with composite ≤ 0.1 are discarded; the rest
// are sorted by composite descending (ties by movie ID for stable output)
// and capped at limit.
//
// A nil snapshot or a reference set that resolves to no known movies yields
// an empty list, never an error.
func Recommend(snap *dataset.Snapshot, stats StatsProvider, referenceIDs []string, limit int) []models.ScoredMovie {
	if snap == nil || len(referenceIDs) == 0 {
		return []models.ScoredMovie{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	references := resolveMovies(snap, referenceIDs)
	if len(references) == 0 {
		return []models.ScoredMovie{}
	}

	refSet := make(map[string]struct{}, len(references))
	refGenres := make([]map[string]struct{}, len(references))
	refTagSets := make([]map[string]struct{}, 0, len(references))
	for i, ref := range references {
		refSet[ref.ID] = struct{}{}
		refGenres[i] = ref.GenreSet()
		if tags := snap.TagsFor(ref.ID); len(tags) > 0 {
			refTagSets = append(refTagSets, tags)
		}
	}
	refTags := similarity.Union(refTagSets...)
	cohort := EnthusiastCohort(snap, referenceIDs)

	scored := make([]models.ScoredMovie, 0, len(snap.Movies))
	for i := range snap.Movies {
		candidate := &snap.Movies[i]
		if _, isRef := refSet[candidate.ID]; isRef {
			continue
		}

		genreScore := genreSimilarity(candidate, refGenres)
		collabScore := CollaborativeScore(snap, cohort, candidate.ID)
		tagScore := similarity.Jaccard(snap.TagsFor(candidate.ID), refTags)

		composite := genreWeight*genreScore + collabWeight*collabScore + tagWeight*tagScore
		if composite <= minComposite {
			continue
		}

		st := stats.StatsFor(candidate.ID)
		scored = append(scored, models.ScoredMovie{
			Movie:           *candidate,
			AverageRating:   st.AverageRating,
			TotalRatings:    st.TotalRatings,
			Score:           composite,
			MatchPercentage: int(math.Round(composite * 100)),
			GenreMatch:      genreScore,
			CollabScore:     collabScore,
			TagMatch:        tagScore,
			Reasons:         buildReasons(candidate, references, genreScore, collabScore, tagScore, st),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// genreSimilarity averages the symmetric Jaccard of the candidate's genre
// set against each reference's genre set.
func genreSimilarity(candidate *models.Movie, refGenres []map[string]struct{}) float64 {
	if len(refGenres) == 0 {
		return 0
	}

	candidateGenres := candidate.GenreSet()
	total := 0.0
	for _, ref := range refGenres {
		total += similarity.Jaccard(candidateGenres, ref)
	}
	return total / float64(len(refGenres))
}
