package entropy

import (
	"encoding/binary"
	"hash/fnv"
	"math"
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

func encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestBytes(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"a", 0},
		{"aaaa", 0},
		{"ab", 1},
		{"abcd", 2},
		{"aabb", 1},
		{"abcdefgh", 3},
		{"aaab", 0.8112781244591328},
	}
	for _, tt := range tests {
		if got := Bytes([]byte(tt.in)); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Bytes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnitsTableSelection(t *testing.T) {
	tests := []struct {
		name  string
		in    []uint16
		table Table
	}{
		{"empty", nil, None},
		{"short bmp", encode("héllo"), Sparse},
		{"long bmp", encode(strings.Repeat("你好", DenseThreshold/2)), Dense},
		{"long with pair", encode(strings.Repeat("a", DenseThreshold) + "😀"), Sparse},
		{"long with lone surrogates", append(encode(strings.Repeat("a", DenseThreshold)), 0xDC00, 0xD800), Dense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, table := Units(tt.in); table != tt.table {
				t.Errorf("table = %v, want %v", table, tt.table)
			}
		})
	}
}

func TestUnitsSurrogatePairsCountOnce(t *testing.T) {
	// Two emoji, each one symbol of two units: entropy 1 bit, not 2.
	got, _ := Units(encode("😀😃"))
	if math.Abs(got-1) > epsilon {
		t.Errorf("Units(two emoji) = %v, want 1", got)
	}
	// The same emoji repeated is a single symbol.
	got, _ = Units(encode("😀😀😀"))
	if got != 0 {
		t.Errorf("Units(repeated emoji) = %v, want 0", got)
	}
	// Four distinct symbols with one pair among them.
	got, _ = Units(encode("ab😀c"))
	if math.Abs(got-2) > epsilon {
		t.Errorf("Units(ab😀c) = %v, want 2", got)
	}
}

func TestUnitsUnpairedSurrogates(t *testing.T) {
	// Reversed order is not a pair: three distinct units, counted separately.
	got, table := Units([]uint16{0xDC00, 0xD800, 'a'})
	if table != Sparse {
		t.Fatalf("table = %v, want sparse", table)
	}
	if want := math.Log2(3); math.Abs(got-want) > epsilon {
		t.Errorf("Units = %v, want %v", got, want)
	}
	// Trailing high surrogate.
	got, _ = Units([]uint16{'a', 0xD800})
	if math.Abs(got-1) > epsilon {
		t.Errorf("Units(trailing high) = %v, want 1", got)
	}
}

// TestTablesAgree checks that every table reports bit-identical values for
// the same symbol distribution.
func TestTablesAgree(t *testing.T) {
	rng := newTestRNG(t)
	for i := range 300 {
		n := 1 + rng.IntN(DenseThreshold+400)
		narrow := make([]byte, n)
		for j := range narrow {
			narrow[j] = byte(rng.IntN(1 + i%200))
		}
		wide := make([]uint16, n)
		for j, b := range narrow {
			wide[j] = uint16(b)
		}
		b := Bytes(narrow)
		u, table := Units(wide)
		want := Sparse
		if n >= DenseThreshold {
			want = Dense
		}
		if table != want {
			t.Fatalf("iter %d: table = %v, want %v", i, table, want)
		}
		s := sparse(wide)
		if math.Float64bits(b) != math.Float64bits(u) || math.Float64bits(b) != math.Float64bits(s) {
			t.Fatalf("iter %d: byte=%v units=%v sparse=%v", i, b, u, s)
		}
	}
}

func TestUniformDistribution(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5, 7, 16, 100, 255} {
		var sb strings.Builder
		for range 4 {
			for s := range k {
				sb.WriteByte(byte(s))
			}
		}
		got := Bytes([]byte(sb.String()))
		if want := math.Log2(float64(k)); math.Abs(got-want) > 1e-9 {
			t.Errorf("k=%d: entropy = %v, want %v", k, got, want)
		}
	}
}

func TestNonNegativeAndDeterministic(t *testing.T) {
	rng := newTestRNG(t)
	for i := range 500 {
		in := make([]uint16, rng.IntN(200))
		for j := range in {
			in[j] = uint16(rng.IntN(0x10000))
		}
		first, _ := Units(in)
		second, _ := Units(in)
		if first != second {
			t.Fatalf("iter %d: non-deterministic %v vs %v", i, first, second)
		}
		if first < 0 {
			t.Fatalf("iter %d: negative entropy %v", i, first)
		}
	}
}

func TestTableString(t *testing.T) {
	for tb, want := range map[Table]string{None: "none", Byte: "byte", Dense: "dense", Sparse: "sparse", Table(9): "unknown"} {
		if tb.String() != want {
			t.Errorf("Table(%d).String() = %q, want %q", tb, tb.String(), want)
		}
	}
}

func BenchmarkEntropy(b *testing.B) {
	rng := newTestRNG(b)
	narrow := make([]byte, 4096)
	wide := make([]uint16, 4096)
	for i := range narrow {
		narrow[i] = byte('a' + rng.IntN(26))
		wide[i] = uint16(0x4E00 + rng.IntN(2000))
	}
	b.Run("byte", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			Bytes(narrow)
		}
	})
	b.Run("dense", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			Units(wide)
		}
	})
	b.Run("sparse", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			Units(wide[:100])
		}
	})
}
