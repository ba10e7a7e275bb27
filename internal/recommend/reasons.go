// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinegraph/internal/models"
)

// buildReasons generates the human-readable justification list for a
// recommendation. The threshold rules are evaluated independently and in a
// fixed order; a rule that fires appends its reason, and a generic fallback
// is emitted only when none fire.
func buildReasons(candidate *models.Movie, references []*models.Movie, genreScore, collabScore, tagScore float64, st models.MovieStats) []string {
	reasons := make([]string, 0, 4)

	if genreScore > genreReasonThreshold {
		if ref := firstGenreMatch(candidate, references); ref != nil {
			reasons = append(reasons, fmt.Sprintf("Similar genres to %q", ref.ShortTitle()))
		}
	}

	if collabScore > collabReasonThreshold {
		reasons = append(reasons, "Highly rated by users with similar taste")
	}

	if tagScore > tagReasonThreshold {
		reasons = append(reasons, "Similar themes and topics")
	}

	if st.AverageRating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f/5.0)", st.AverageRating))
	}

	if st.TotalRatings >= popularCountThreshold {
		reasons = append(reasons, "Popular choice")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Recommended based on your selections")
	}
	return reasons
}

// firstGenreMatch returns the first reference sharing at least one genre
// with the candidate, or nil.
func firstGenreMatch(candidate *models.Movie, references []*models.Movie) *models.Movie {
	candidateGenres := candidate.GenreSet()
	for _, ref := range references {
		for _, g := range ref.Genres {
			if _, ok := candidateGenres[g]; ok {
				return ref
			}
		}
	}
	return nil
}
