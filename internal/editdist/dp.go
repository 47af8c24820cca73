package editdist

import "github.com/tamirms/strmetric/internal/units"

// dpStackRow is the largest DP row (in cells) kept in a fixed-size array.
// Longer rows are heap allocated.
const dpStackRow = 256

// DP computes the Levenshtein distance with the classic single-row dynamic
// program. row is the inner dimension; callers pass the shorter sequence
// there to keep the working set small. Any lengths are accepted.
func DP[U units.Unit](row, col []U) int {
	m := len(row)
	if m == 0 {
		return len(col)
	}

	var stack [dpStackRow]int
	var d []int
	if m+1 <= len(stack) {
		d = stack[:m+1]
	} else {
		d = make([]int, m+1)
	}
	for j := range d {
		d[j] = j
	}

	for i, c := range col {
		prev := d[0]
		d[0] = i + 1
		for j, r := range row {
			cost := 1
			if r == c {
				cost = 0
			}
			cell := min(d[j]+1, d[j+1]+1, prev+cost)
			prev = d[j+1]
			d[j+1] = cell
		}
	}
	return d[m]
}
