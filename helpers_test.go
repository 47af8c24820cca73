package strmetric

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf16"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

const epsilon = 1e-12

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// randomString returns n runes drawn from alphabet.
func randomString(rng *rand.Rand, n int, alphabet string) string {
	runes := []rune(alphabet)
	var sb strings.Builder
	for range n {
		sb.WriteRune(runes[rng.IntN(len(runes))])
	}
	return sb.String()
}

// wideOf stores s as UTF-16 even when it would fit Latin-1.
func wideOf(s string) Text {
	u := utf16.Encode([]rune(s))
	if u == nil {
		u = []uint16{}
	}
	return UTF16(u)
}
