package strmetric

import (
	"github.com/tamirms/strmetric/internal/editdist"
	"github.com/tamirms/strmetric/internal/entropy"
)

// EditAlgorithm identifies the path Levenshtein took for a pair of inputs.
type EditAlgorithm uint8

const (
	// EditIdentical: the inputs are equal; no distance computation ran.
	EditIdentical EditAlgorithm = iota

	// EditTrivial: after trimming the common prefix and suffix one side was
	// empty, so the distance is the length of the other.
	EditTrivial

	// EditBitParallel: Myers' bit-parallel algorithm. Chosen when the shorter
	// trimmed input has at most 64 units and every unit is below 256.
	EditBitParallel

	// EditDynamic: single-row dynamic programming, O(len(a) * len(b)).
	EditDynamic
)

// String returns the algorithm name.
func (a EditAlgorithm) String() string {
	switch a {
	case EditIdentical:
		return "identical"
	case EditTrivial:
		return "trivial"
	case EditBitParallel:
		return "bit-parallel"
	case EditDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

func editAlgorithmFromPath(p editdist.Path) EditAlgorithm {
	switch p {
	case editdist.Identical:
		return EditIdentical
	case editdist.Trivial:
		return EditTrivial
	case editdist.BitParallel:
		return EditBitParallel
	default:
		return EditDynamic
	}
}

// EntropyTable identifies the frequency table ShannonEntropy used.
type EntropyTable uint8

const (
	// TableNone: empty input, entropy 0.
	TableNone EntropyTable = iota

	// TableByte: 256 buckets over narrow storage.
	TableByte

	// TableDense: 65536 buckets over UTF-16 units. Chosen for wide inputs of
	// at least 128 units without surrogate pairs.
	TableDense

	// TableSparse: map keyed by decoded code point. Surrogate pairs count as
	// one symbol.
	TableSparse
)

// String returns the table name.
func (t EntropyTable) String() string {
	switch t {
	case TableNone:
		return "none"
	case TableByte:
		return "byte"
	case TableDense:
		return "dense"
	case TableSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

func entropyTableFromInternal(t entropy.Table) EntropyTable {
	switch t {
	case entropy.Byte:
		return TableByte
	case entropy.Dense:
		return TableDense
	case entropy.Sparse:
		return TableSparse
	default:
		return TableNone
	}
}
