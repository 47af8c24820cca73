// Package bits holds word-level helpers shared by the edit-distance kernel
// and the result cache.
package bits

import "math/bits"

// WordBits is the width of the bit vectors used by the bit-parallel
// edit-distance kernel.
const WordBits = 64

// TopBit returns a word with only bit n-1 set: the row of the last pattern
// unit in an n-unit bit-parallel pattern. n must be in [1, WordBits].
func TopBit(n int) uint64 {
	return uint64(1) << (n - 1)
}

// FastRange32 reduces a 64-bit hash to [0, n) by taking the high word of
// hash * n. The cache uses it to pick a shard.
func FastRange32(hash uint64, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, uint64(n))
	return uint32(hi)
}
