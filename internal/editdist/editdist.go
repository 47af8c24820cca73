// Package editdist computes Levenshtein edit distance over code-unit
// sequences.
//
// Distance picks one of four paths by input shape:
//
//   - Identical: equal sequences, distance 0 without further work.
//   - Trivial: after trimming the common prefix and suffix one side is
//     empty, so the distance is the length of the other.
//   - BitParallel: Myers' algorithm (Hyyrö's formulation) when the shorter
//     trimmed side fits a 64-bit word and every unit indexes a 256-entry
//     pattern table.
//   - Dynamic: single-row dynamic programming for everything else.
//
// Trimming never changes the result: an optimal alignment can always match
// a shared prefix or suffix at zero cost.
package editdist

import (
	"github.com/tamirms/strmetric/internal/bits"
	"github.com/tamirms/strmetric/internal/units"
)

// Path identifies the algorithm that produced a distance.
type Path uint8

const (
	Identical Path = iota
	Trivial
	BitParallel
	Dynamic
)

// String returns the path name.
func (p Path) String() string {
	switch p {
	case Identical:
		return "identical"
	case Trivial:
		return "trivial"
	case BitParallel:
		return "bit-parallel"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// alphabetSize is the number of entries in the bit-parallel pattern table.
// Units at or above it force the dynamic path.
const alphabetSize = 256

// Distance returns the Levenshtein distance between a and b and the path
// that computed it.
func Distance[U units.Unit](a, b []U) (int, Path) {
	if units.Equal(a, b) {
		return 0, Identical
	}

	p := units.CommonPrefix(a, b)
	a, b = a[p:], b[p:]
	s := units.CommonSuffix(a, b)
	a, b = a[:len(a)-s], b[:len(b)-s]

	if len(a) == 0 {
		return len(b), Trivial
	}
	if len(b) == 0 {
		return len(a), Trivial
	}

	// The shorter side is the pattern (Myers) and the row (DP).
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) <= bits.WordBits && units.AllBelow(a, alphabetSize) && units.AllBelow(b, alphabetSize) {
		return Myers(a, b), BitParallel
	}
	return DP(a, b), Dynamic
}
