package strmetric

import "github.com/tamirms/strmetric/internal/jaro"

// Jaro returns the Jaro similarity of a and b in [0, 1].
//
// Units match when equal and no further apart than max(len(a), len(b))/2 - 1
// positions (same position only for very short inputs). Matching is greedy
// from left to right. Two empty inputs are identical and score 1.
func Jaro(a, b Text) float64 {
	if bothNarrow(a, b) {
		return jaro.Similarity(a.narrow, b.narrow)
	}
	return jaro.Similarity(a.units16(), b.units16())
}

// JaroWinkler returns the Jaro-Winkler similarity of a and b in [0, 1]:
// the Jaro similarity boosted by 0.1 * (1 - jaro) for each leading unit the
// inputs share, up to four units.
func JaroWinkler(a, b Text) float64 {
	if bothNarrow(a, b) {
		return jaro.Winkler(a.narrow, b.narrow)
	}
	return jaro.Winkler(a.units16(), b.units16())
}
