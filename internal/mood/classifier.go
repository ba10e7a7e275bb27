// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package mood

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/cinegraph/internal/dataset"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/similarity"
)

// Scoring weights. Genre and tag evidence dominate; rating fit refines.
const (
	genreWeight  = 40.0
	tagWeight    = 40.0
	ratingWeight = 20.0

	minMoodScore = 30

	// DefaultLimit bounds the result set when the caller passes limit <= 0.
	DefaultLimit = 20

	genreReasonThreshold  = 0.5
	tagReasonThreshold    = 0.3
	highRatingThreshold   = 4.0
	popularCountThreshold = 100
)

// StatsProvider supplies per-movie rating statistics.
type StatsProvider interface {
	StatsFor(movieID string) models.MovieStats
}

// Classify scores every movie in the snapshot against the mood profile
// identified by moodID and returns the strongest matches, best first.
// Unknown moods and nil snapshots yield an empty slice. A movie with no
// usable evidence at all scores below the cutoff and is dropped.
func Classify(snap *dataset.Snapshot, stats StatsProvider, moodID string, limit int) []models.MoodMatch {
	profile := ByID(moodID)
	if snap == nil || profile == nil {
		return []models.MoodMatch{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	moodGenres := similarity.SetOf(profile.Genres)

	matches := make([]models.MoodMatch, 0, limit)
	for _, movie := range snap.Movies {
		genreMatch := similarity.Coverage(movie.GenreSet(), moodGenres)
		tagMatch := keywordMatch(snap.TagsFor(movie.ID), profile.Keywords)

		st := stats.StatsFor(movie.ID)
		fit := ratingFit(profile, st)

		score := int(math.Round(genreMatch*genreWeight + tagMatch*tagWeight + fit*ratingWeight))
		if score < minMoodScore {
			continue
		}

		matches = append(matches, models.MoodMatch{
			Movie:         movie,
			AverageRating: st.AverageRating,
			TotalRatings:  st.TotalRatings,
			MoodScore:     score,
			MatchReasons:  buildReasons(profile, movie, genreMatch, tagMatch, st),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MoodScore != matches[j].MoodScore {
			return matches[i].MoodScore > matches[j].MoodScore
		}
		return matches[i].Movie.ID < matches[j].Movie.ID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}
	return matches
}

// keywordMatch returns the fraction of profile keywords that appear as a
// substring of at least one of the movie's normalized tags.
func keywordMatch(tags map[string]struct{}, keywords []string) float64 {
	if len(keywords) == 0 || len(tags) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range keywords {
		for tag := range tags {
			if strings.Contains(tag, kw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(keywords))
}

// ratingFit awards half credit for an average inside the mood's rating
// range and half for satisfying its variance preference. The two credits
// are independent: an unrated movie has a zero average outside every
// range, but its zero variance still satisfies low/medium/any.
func ratingFit(profile *Profile, st models.MovieStats) float64 {
	fit := 0.0
	if st.AverageRating >= profile.RatingMin && st.AverageRating <= profile.RatingMax {
		fit += 0.5
	}
	if profile.Variance.Satisfied(st.Variance) {
		fit += 0.5
	}
	return fit
}

func buildReasons(profile *Profile, movie models.Movie, genreMatch, tagMatch float64, st models.MovieStats) []string {
	reasons := make([]string, 0, 4)
	if genreMatch > genreReasonThreshold {
		if shared := sharedGenres(movie, profile); len(shared) > 0 {
			reasons = append(reasons, fmt.Sprintf("%s genres", strings.Join(shared, ", ")))
		}
	}
	if tagMatch > tagReasonThreshold {
		reasons = append(reasons, "Matching themes and tags")
	}
	if st.AverageRating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f/5.0)", st.AverageRating))
	}
	if st.TotalRatings >= popularCountThreshold {
		reasons = append(reasons, "Popular choice")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Matches mood criteria")
	}
	return reasons
}

// sharedGenres lists the mood genres the movie carries, in profile order.
func sharedGenres(movie models.Movie, profile *Profile) []string {
	have := movie.GenreSet()
	shared := make([]string, 0, len(profile.Genres))
	for _, g := range profile.Genres {
		if _, ok := have[g]; ok {
			shared = append(shared, g)
		}
	}
	return shared
}
