package editdist

import (
	"github.com/tamirms/strmetric/internal/bits"
	"github.com/tamirms/strmetric/internal/units"
)

// Myers computes the Levenshtein distance between pattern and text with the
// bit-parallel algorithm of Myers (1999) in the formulation of Hyyrö (2001).
//
// Preconditions: 1 <= len(pattern) <= 64 and every unit of pattern and text
// is below 256. The column of the DP matrix is held as two bit vectors of
// vertical deltas, VP (+1) and VN (-1); each text unit advances the column
// with a constant number of word operations.
func Myers[U units.Unit](pattern, text []U) int {
	// peq[c] has bit i set when pattern[i] == c. It lives on the stack and
	// is rebuilt on every call.
	var peq [alphabetSize]uint64
	for i, u := range pattern {
		peq[u] |= 1 << i
	}

	vp := ^uint64(0)
	vn := uint64(0)
	score := len(pattern)
	top := bits.TopBit(len(pattern))

	for _, u := range text {
		x := peq[u] | vn
		d := (((x & vp) + vp) ^ vp) | x
		hp := vn | ^(d | vp)
		hn := d & vp

		switch {
		case hp&top != 0:
			score++
		case hn&top != 0:
			score--
		}

		shifted := (hp << 1) | 1
		vn = shifted & d
		vp = (hn << 1) | ^(shifted | d)
	}
	return score
}
