// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package models

import "time"

// MovieStats holds the derived per-movie rating statistics. It is recomputed
// from the snapshot on demand and never persisted.
type MovieStats struct {
	MovieID       string         `json:"movieId"`
	AverageRating float64        `json:"averageRating"`
	MedianRating  float64        `json:"medianRating"`
	TotalRatings  int            `json:"totalRatings"`
	Variance      float64        `json:"variance"`
	Distribution  []RatingBucket `json:"distribution"`
	RecentRatings []RecentRating `json:"recentRatings"`
}

// RatingBucket is one distinct rating value and its occurrence count.
type RatingBucket struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// RecentRating is one of the N most recent ratings of a movie, annotated
// with a human-readable date derived from the timestamp.
type RecentRating struct {
	UserID    string  `json:"userId"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
	Date      string  `json:"date"`
}

// TimelinePoint is one month of a movie's rating history. MovingAverage is
// the count-weighted mean over the centered 3-month window, shrinking to a
// 2-month window at the sequence boundaries.
type TimelinePoint struct {
	Month         time.Time `json:"month"`
	Rating        float64   `json:"rating"`
	MovingAverage float64   `json:"movingAverage"`
	Count         int       `json:"count"`
}

// ScoredMovie is a recommendation result: a movie, its composite score and
// sub-scores, its rank position, and human-readable justifications.
type ScoredMovie struct {
	Movie
	AverageRating   float64  `json:"averageRating"`
	TotalRatings    int      `json:"totalRatings"`
	Score           float64  `json:"score"`
	MatchPercentage int      `json:"matchPercentage"`
	GenreMatch      float64  `json:"genreMatch"`
	CollabScore     float64  `json:"collaborativeScore"`
	TagMatch        float64  `json:"tagMatch"`
	Rank            int      `json:"rank"`
	Reasons         []string `json:"reasons"`
}

// MoodMatch is a mood-classification result for a single movie.
type MoodMatch struct {
	Movie
	AverageRating float64  `json:"averageRating"`
	TotalRatings  int      `json:"totalRatings"`
	MoodScore     int      `json:"moodScore"`
	Rank          int      `json:"rank"`
	MatchReasons  []string `json:"matchReasons"`
}

// CrossRecommendation summarizes how well two movies cross-recommend.
// All percentages are integers in [0,100].
type CrossRecommendation struct {
	Confidence    int      `json:"confidence"`
	UserOverlap   int      `json:"userOverlap"`
	SharedUsers   int      `json:"sharedUsers"`
	GenreMatch    int      `json:"genreMatch"`
	TagSimilarity int      `json:"tagSimilarity"`
	CommonAppeal  []string `json:"commonAppeal"`
}

// TagCloudEntry is one aggregated tag with its occurrence count, the movies
// it was applied to, and the defined average-rating figure (occurrence-
// weighted numerator over the distinct-movie denominator).
type TagCloudEntry struct {
	Tag           string   `json:"tag"`
	Count         int      `json:"count"`
	AverageRating float64  `json:"averageRating"`
	MovieIDs      []string `json:"movieIds"`
}

// TagCloudSummary holds summary statistics over a tag cloud.
type TagCloudSummary struct {
	TotalTags         int            `json:"totalTags"`
	TotalApplications int            `json:"totalApplications"`
	MostPopular       *TagCloudEntry `json:"mostPopular,omitempty"`
	AverageRating     float64        `json:"averageRating"`
}

// TagFrequency is one tag and its application count for a single movie.
type TagFrequency struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// MovieTagSummary aggregates a single movie's tags by frequency.
type MovieTagSummary struct {
	Tags      []TagFrequency `json:"tags"`
	TotalTags int            `json:"totalTags"`
}
