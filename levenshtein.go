package strmetric

import "github.com/tamirms/strmetric/internal/editdist"

// EditResult is a Levenshtein distance with the algorithm that computed it.
type EditResult struct {
	Distance  int
	Algorithm EditAlgorithm
}

// Levenshtein returns the minimum number of single-unit insertions,
// deletions and substitutions that turn a into b.
//
// Equal inputs return 0 immediately. Otherwise the common prefix and suffix
// are trimmed and the remainder is handed to Myers' bit-parallel algorithm
// when it fits a 64-bit word over a 256-symbol alphabet, or to single-row
// dynamic programming.
func Levenshtein(a, b Text) int {
	return LevenshteinExplain(a, b).Distance
}

// LevenshteinExplain is Levenshtein that also reports the algorithm used.
func LevenshteinExplain(a, b Text) EditResult {
	var (
		d    int
		path editdist.Path
	)
	if bothNarrow(a, b) {
		d, path = editdist.Distance(a.narrow, b.narrow)
	} else {
		d, path = editdist.Distance(a.units16(), b.units16())
	}
	return EditResult{Distance: d, Algorithm: editAlgorithmFromPath(path)}
}
