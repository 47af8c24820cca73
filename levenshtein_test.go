package strmetric

import (
	"strings"
	"testing"
)

func TestLevenshteinScenarios(t *testing.T) {
	tests := []struct {
		a, b string
		want int
		algo EditAlgorithm
	}{
		{"kitten", "sitting", 3, EditBitParallel},
		{"", "", 0, EditIdentical},
		{"", "abc", 3, EditTrivial},
		{"héllo", "hello", 1, EditBitParallel},
		{"你好世界", "你好世间", 1, EditDynamic},
		{"a😀b", "a😃b", 1, EditDynamic},
		{"prefix-core-suffix", "prefix-suffix", 5, EditTrivial},
	}
	for _, tt := range tests {
		got := LevenshteinExplain(FromString(tt.a), FromString(tt.b))
		if got.Distance != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got.Distance, tt.want)
		}
		if got.Algorithm != tt.algo {
			t.Errorf("Levenshtein(%q, %q) algorithm = %v, want %v", tt.a, tt.b, got.Algorithm, tt.algo)
		}
	}
}

// TestLevenshteinMixedStorage compares narrow, wide and mixed storage of the
// same strings.
func TestLevenshteinMixedStorage(t *testing.T) {
	rng := newTestRNG(t)
	for i := range 1000 {
		a := randomString(rng, rng.IntN(100), "abcé")
		b := randomString(rng, rng.IntN(100), "abcé")

		nn := Levenshtein(FromString(a), FromString(b))
		ww := Levenshtein(wideOf(a), wideOf(b))
		nw := Levenshtein(FromString(a), wideOf(b))
		if nn != ww || nn != nw {
			t.Fatalf("iter %d: narrow=%d wide=%d mixed=%d for %q / %q", i, nn, ww, nw, a, b)
		}
	}
}

func TestLevenshteinProperties(t *testing.T) {
	rng := newTestRNG(t)
	for i := range 1000 {
		a := FromString(randomString(rng, rng.IntN(120), "xyz你"))
		b := FromString(randomString(rng, rng.IntN(120), "xyz你"))

		d := Levenshtein(a, b)
		if d != Levenshtein(b, a) {
			t.Fatalf("iter %d: asymmetric", i)
		}
		if Levenshtein(a, a) != 0 {
			t.Fatalf("iter %d: d(a,a) != 0", i)
		}
		if diff := a.Len() - b.Len(); d < max(diff, -diff) {
			t.Fatalf("iter %d: d=%d below length difference", i, d)
		}
		if Levenshtein(Text{}, b) != b.Len() {
			t.Fatalf("iter %d: d(\"\", b) != len(b)", i)
		}
	}
}

func TestLevenshteinLongInputs(t *testing.T) {
	a := FromString(strings.Repeat("abcdefgh", 50))
	b := FromString(strings.Repeat("abcdefgh", 49) + "hgfedcba")
	got := LevenshteinExplain(a, b)
	if got.Distance != 8 {
		t.Errorf("Distance = %d, want 8", got.Distance)
	}
	if got.Algorithm != EditBitParallel {
		t.Errorf("Algorithm = %v, want bit-parallel after trimming", got.Algorithm)
	}

	c := FromString(strings.Repeat("x", 300))
	d := FromString(strings.Repeat("y", 300))
	if got := LevenshteinExplain(c, d); got.Distance != 300 || got.Algorithm != EditDynamic {
		t.Errorf("LevenshteinExplain = %+v, want {300 dynamic}", got)
	}
}

func TestEditAlgorithmString(t *testing.T) {
	for a, want := range map[EditAlgorithm]string{
		EditIdentical:     "identical",
		EditTrivial:       "trivial",
		EditBitParallel:   "bit-parallel",
		EditDynamic:       "dynamic",
		EditAlgorithm(99): "unknown",
	} {
		if a.String() != want {
			t.Errorf("EditAlgorithm(%d).String() = %q, want %q", a, a.String(), want)
		}
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	rng := newTestRNG(b)
	x := FromString(randomString(rng, 40, "abcdefghij"))
	y := FromString(randomString(rng, 60, "abcdefghij"))
	b.ReportAllocs()
	for range b.N {
		Levenshtein(x, y)
	}
}
