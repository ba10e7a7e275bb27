// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package recommend implements the hybrid recommendation scorer, the
// collaborative filter it builds on, and the pairwise cross-recommendation
// analyzer. All entry points are pure functions over an immutable dataset
// snapshot; identical inputs always yield identical, order-stable outputs.
package recommend

import "github.com/tomtom215/cinegraph/internal/models"

// StatsProvider supplies per-movie rating statistics to the scorers.
// Implemented by stats.Provider; kept as an interface so tests can feed
// fixed values without building a snapshot twice.
type StatsProvider interface {
	StatsFor(movieID string) models.MovieStats
}

// Composite weighting: genre similarity and collaborative taste carry equal
// weight, tag similarity refines the ranking.
const (
	genreWeight  = 0.4
	collabWeight = 0.4
	tagWeight    = 0.2

	// minComposite is the inclusion floor; candidates scoring at or below
	// it are discarded.
	minComposite = 0.1

	// enthusiastThreshold is the minimum rating that makes a user part of
	// a reference movie's enthusiast cohort.
	enthusiastThreshold = 4.0

	// confidenceSaturation is the cohort-rating count at which the
	// collaborative score reaches full confidence.
	confidenceSaturation = 10

	// ratingScale normalizes mean ratings to [0,1].
	ratingScale = 5.0
)

// DefaultLimit is the recommendation cap applied when the caller passes a
// non-positive limit.
const DefaultLimit = 20

// Justification thresholds, shared with the mood classifier's mirror rules.
const (
	genreReasonThreshold  = 0.5
	collabReasonThreshold = 0.6
	tagReasonThreshold    = 0.3
	highRatingThreshold   = 4.0
	popularCountThreshold = 100
)
