// Package entropy computes the Shannon entropy, in bits per symbol, of the
// symbol distribution of a code-unit sequence.
//
// Three frequency tables are used depending on the input:
//
//   - Byte: a 256-bucket table for single-byte storage.
//   - Dense: a 65536-bucket table over UTF-16 units, for inputs of at least
//     DenseThreshold units that contain no surrogate pair.
//   - Sparse: a map keyed by decoded code point, for short inputs and any
//     input containing a surrogate pair. A pair counts as one symbol.
//
// The byte table lives on the stack; the dense table and the sparse map are
// heap-allocated per call.
package entropy

import (
	"maps"
	"math"
	"slices"

	"github.com/tamirms/strmetric/internal/units"
)

// Table identifies the frequency table used for a computation.
type Table uint8

const (
	None Table = iota // empty input, no table built
	Byte
	Dense
	Sparse
)

// String returns the table name.
func (t Table) String() string {
	switch t {
	case None:
		return "none"
	case Byte:
		return "byte"
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// DenseThreshold is the minimum length at which a surrogate-free UTF-16
// input is counted with the dense table rather than the sparse map.
const DenseThreshold = 128

// denseSize is the number of distinct 16-bit code units.
const denseSize = 1 << 16

// Bytes returns the entropy of single-byte storage.
func Bytes(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	var freq [256]uint32
	for _, b := range s {
		freq[b]++
	}
	return fromCounts(freq[:], len(s))
}

// Units returns the entropy of UTF-16 storage and the table that was used.
func Units(s []uint16) (float64, Table) {
	if len(s) == 0 {
		return 0, None
	}
	if len(s) >= DenseThreshold && !hasSurrogatePair(s) {
		freq := make([]uint32, denseSize)
		for _, u := range s {
			freq[u]++
		}
		return fromCounts(freq, len(s)), Dense
	}
	return sparse(s), Sparse
}

// hasSurrogatePair reports whether a high surrogate is immediately followed
// by a low surrogate anywhere in s. Unpaired surrogates do not count.
func hasSurrogatePair(s []uint16) bool {
	for i := 0; i+1 < len(s); i++ {
		if units.IsHighSurrogate(s[i]) && units.IsLowSurrogate(s[i+1]) {
			return true
		}
	}
	return false
}

// sparse counts decoded code points and sums them in code-point order, the
// order the byte and dense tables use, so all three tables give bit-identical
// results for the same distribution.
func sparse(s []uint16) float64 {
	freq := make(map[rune]uint32, min(len(s), 1024))
	total := 0
	for i := 0; i < len(s); i++ {
		cp := rune(s[i])
		if units.IsHighSurrogate(s[i]) && i+1 < len(s) && units.IsLowSurrogate(s[i+1]) {
			cp = units.DecodePair(s[i], s[i+1])
			i++
		}
		freq[cp]++
		total++
	}
	counts := make([]uint32, 0, len(freq))
	for _, cp := range slices.Sorted(maps.Keys(freq)) {
		counts = append(counts, freq[cp])
	}
	return fromCounts(counts, total)
}

// fromCounts evaluates -sum(p * log2(p)) over the non-zero counts.
func fromCounts(counts []uint32, total int) float64 {
	n := float64(total)
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	// A single symbol yields -0; report it as 0.
	if h <= 0 {
		return 0
	}
	return h
}
