// Package jaro computes Jaro and Jaro-Winkler similarity over code-unit
// sequences.
package jaro

import "github.com/tamirms/strmetric/internal/units"

const (
	// PrefixScale is the Winkler boost applied per shared leading unit.
	PrefixScale = 0.1

	// MaxPrefix caps the shared prefix that earns a boost.
	MaxPrefix = 4

	// stackBitmap is the largest input length whose match bitmap lives in a
	// fixed-size array. Longer inputs allocate.
	stackBitmap = 256
)

// Similarity returns the Jaro similarity of a and b in [0, 1].
func Similarity[U units.Unit](a, b []U) float64 {
	if units.Equal(a, b) {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var aStack, bStack [stackBitmap]bool
	var aMatch, bMatch []bool
	if len(a) <= stackBitmap && len(b) <= stackBitmap {
		aMatch, bMatch = aStack[:len(a)], bStack[:len(b)]
	} else {
		aMatch, bMatch = make([]bool, len(a)), make([]bool, len(b))
	}

	// A non-positive window only admits same-position matches.
	window := max(max(len(a), len(b))/2-1, 0)

	matches := 0
	for i := range a {
		lo := max(i-window, 0)
		hi := min(i+window+1, len(b))
		for j := lo; j < hi; j++ {
			if !bMatch[j] && a[i] == b[j] {
				aMatch[i] = true
				bMatch[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// Walk both match lists in order; every differing pair is half a
	// transposition.
	halfTranspositions := 0
	j := 0
	for i := range a {
		if !aMatch[i] {
			continue
		}
		for !bMatch[j] {
			j++
		}
		if a[i] != b[j] {
			halfTranspositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(halfTranspositions) / 2
	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}

// Winkler returns the Jaro-Winkler similarity of a and b in [0, 1]: the Jaro
// similarity boosted by the length of the common prefix, capped at
// MaxPrefix units.
func Winkler[U units.Unit](a, b []U) float64 {
	sim := Similarity(a, b)
	if sim == 1 {
		return 1
	}
	prefix := min(units.CommonPrefix(a, b), MaxPrefix)
	return sim + float64(prefix)*PrefixScale*(1-sim)
}
