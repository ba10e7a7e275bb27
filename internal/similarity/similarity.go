// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package similarity provides the set-similarity primitives shared by the
// recommendation scorer, the mood classifier, and the cross-recommendation
// analyzer. Every division-by-zero site returns 0 rather than faulting.
package similarity

// Jaccard computes the symmetric Jaccard similarity |A∩B| / |A∪B| of two
// sets. It is commutative and returns 0 when both sets are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	// Iterate the smaller set.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	intersection := 0
	for k := range small {
		if _, ok := large[k]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Coverage computes the directional coverage of src against the target set:
// min(|src∩target| / |target|, 1). It is normalized by the target's size so
// a source satisfying more of the target's defining vocabulary scores higher
// regardless of the source's own size. Returns 0 on an empty intersection
// or an empty target.
func Coverage(src, target map[string]struct{}) float64 {
	if len(target) == 0 {
		return 0
	}

	intersection := 0
	for k := range src {
		if _, ok := target[k]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	score := float64(intersection) / float64(len(target))
	if score > 1 {
		return 1
	}
	return score
}

// SetOf builds a set from a list of strings, skipping empty entries.
func SetOf(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// Union merges any number of sets into a new set.
func Union(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// IntersectCount returns |A∩B|.
func IntersectCount(a, b map[string]struct{}) int {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	n := 0
	for k := range small {
		if _, ok := large[k]; ok {
			n++
		}
	}
	return n
}
