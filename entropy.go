package strmetric

import "github.com/tamirms/strmetric/internal/entropy"

// EntropyResult is a Shannon entropy with the frequency table that computed
// it.
type EntropyResult struct {
	Bits  float64
	Table EntropyTable
}

// ShannonEntropy returns the base-2 Shannon entropy, in bits per symbol, of
// the symbol distribution of text. Symbols are bytes for narrow text and
// code points for wide text, with surrogate pairs decoded and counted once.
// Empty text and text of a single repeated symbol have entropy 0.
func ShannonEntropy(text Text) float64 {
	return ShannonEntropyExplain(text).Bits
}

// ShannonEntropyExplain is ShannonEntropy that also reports the table used.
func ShannonEntropyExplain(text Text) EntropyResult {
	if text.Len() == 0 {
		return EntropyResult{Table: TableNone}
	}
	if text.IsNarrow() {
		return EntropyResult{Bits: entropy.Bytes(text.narrow), Table: TableByte}
	}
	bits, table := entropy.Units(text.wide)
	return EntropyResult{Bits: bits, Table: entropyTableFromInternal(table)}
}
