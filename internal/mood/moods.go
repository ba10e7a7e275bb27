// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package mood classifies movies against a fixed catalog of mood profiles.
// The catalog is declarative data, not code branching: adding a mood means
// adding a Profile entry, nothing else.
package mood

// VariancePreference expresses how much rating disagreement a mood
// tolerates.
type VariancePreference string

// Variance preferences and their thresholds.
const (
	VarianceLow    VariancePreference = "low"    // variance < 0.5
	VarianceMedium VariancePreference = "medium" // variance < 1.0
	VarianceAny    VariancePreference = "any"    // always satisfied
)

// Satisfied reports whether a movie's rating variance meets the preference.
func (p VariancePreference) Satisfied(variance float64) bool {
	switch p {
	case VarianceLow:
		return variance < 0.5
	case VarianceMedium:
		return variance < 1.0
	default:
		return true
	}
}

// Profile defines one mood: the genres and tag keywords that characterize
// it, the acceptable average-rating range, and a variance preference.
type Profile struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Emoji       string             `json:"emoji"`
	Description string             `json:"description"`
	Genres      []string           `json:"genres"`
	Keywords    []string           `json:"keywords"`
	RatingMin   float64            `json:"ratingMin"`
	RatingMax   float64            `json:"ratingMax"`
	Variance    VariancePreference `json:"variancePreference"`
}

// profiles is the static mood catalog.
var profiles = []Profile{
	{
		ID:          "feel-good",
		Name:        "Feel-Good",
		Emoji:       "😊",
		Description: "Uplifting stories with happy endings",
		Genres:      []string{"Comedy", "Family", "Animation", "Romance"},
		Keywords:    []string{"feel-good", "heartwarming", "fun", "uplifting", "charming", "delightful"},
		RatingMin:   3.8,
		RatingMax:   5.0,
		Variance:    VarianceLow,
	},
	{
		ID:          "emotional",
		Name:        "Emotional Journey",
		Emoji:       "😢",
		Description: "Touching dramas that move you",
		Genres:      []string{"Drama", "Romance"},
		Keywords:    []string{"emotional", "touching", "tearjerker", "moving", "powerful", "dramatic"},
		RatingMin:   3.5,
		RatingMax:   5.0,
		Variance:    VarianceMedium,
	},
	{
		ID:          "thrilling",
		Name:        "Thrilling & Intense",
		Emoji:       "😱",
		Description: "Edge-of-your-seat excitement",
		Genres:      []string{"Action", "Thriller", "Horror", "Mystery"},
		Keywords:    []string{"suspense", "intense", "thrilling", "action", "exciting", "gripping"},
		RatingMin:   3.0,
		RatingMax:   5.0,
		Variance:    VarianceAny,
	},
	{
		ID:          "thought-provoking",
		Name:        "Thought-Provoking",
		Emoji:       "🤔",
		Description: "Complex stories that make you think",
		Genres:      []string{"Sci-Fi", "Mystery", "Drama", "Documentary"},
		Keywords:    []string{"mind-bending", "philosophical", "complex", "thought-provoking", "cerebral", "intelligent"},
		RatingMin:   3.5,
		RatingMax:   5.0,
		Variance:    VarianceAny,
	},
	{
		ID:          "dark",
		Name:        "Dark & Gritty",
		Emoji:       "🌑",
		Description: "Noir and dark thematic elements",
		Genres:      []string{"Film-Noir", "Crime", "Thriller", "Horror"},
		Keywords:    []string{"dark", "noir", "gritty", "bleak", "disturbing", "atmospheric"},
		RatingMin:   3.3,
		RatingMax:   4.7,
		Variance:    VarianceMedium,
	},
	{
		ID:          "epic",
		Name:        "Epic & Grand",
		Emoji:       "🎭",
		Description: "Large-scale adventures and epics",
		Genres:      []string{"Adventure", "Fantasy", "War", "Action"},
		Keywords:    []string{"epic", "visually stunning", "grand", "spectacular", "masterpiece", "adventure"},
		RatingMin:   3.7,
		RatingMax:   5.0,
		Variance:    VarianceLow,
	},
	{
		ID:          "lighthearted",
		Name:        "Lighthearted Fun",
		Emoji:       "😂",
		Description: "Easy, fun entertainment",
		Genres:      []string{"Comedy", "Romance", "Animation"},
		Keywords:    []string{"funny", "lighthearted", "comedy", "amusing", "entertaining", "witty"},
		RatingMin:   3.3,
		RatingMax:   5.0,
		Variance:    VarianceLow,
	},
	{
		ID:          "inspiring",
		Name:        "Uplifting & Inspiring",
		Emoji:       "💪",
		Description: "Stories that motivate and inspire",
		Genres:      []string{"Drama", "Documentary", "Adventure"},
		Keywords:    []string{"inspiring", "uplifting", "motivational", "triumph", "hopeful", "courage"},
		RatingMin:   3.8,
		RatingMax:   5.0,
		Variance:    VarianceLow,
	},
}

// Catalog returns the full mood catalog in declaration order.
func Catalog() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// ByID returns the profile with the given ID, or nil for unknown moods.
func ByID(id string) *Profile {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}
