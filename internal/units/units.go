// Package units provides the code-unit sequence primitives shared by every
// metric: a constraint over 8-bit and 16-bit units and the comparison helpers
// the algorithms build on.
//
// A sequence is a plain read-only slice. Nothing in this package retains or
// mutates its arguments.
package units

// Unit is a fixed-width code unit: a Latin-1 byte or a UTF-16 code unit.
type Unit interface {
	~uint8 | ~uint16
}

// Surrogate ranges for UTF-16 code units.
const (
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
)

// Equal reports whether a and b have the same length and the same units.
func Equal[U Unit](a, b []U) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CommonPrefix returns the length of the longest common prefix of a and b.
func CommonPrefix[U Unit](a, b []U) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// CommonSuffix returns the length of the longest common suffix of a and b.
func CommonSuffix[U Unit](a, b []U) int {
	i, j := len(a), len(b)
	for i > 0 && j > 0 && a[i-1] == b[j-1] {
		i--
		j--
	}
	return len(a) - i
}

// AllBelow reports whether every unit of s is strictly less than limit.
func AllBelow[U Unit](s []U, limit uint32) bool {
	for _, u := range s {
		if uint32(u) >= limit {
			return false
		}
	}
	return true
}

// Widen copies 8-bit units into a new 16-bit sequence. Values are preserved,
// so a Latin-1 byte becomes the UTF-16 unit with the same code point.
func Widen(s []byte) []uint16 {
	out := make([]uint16, len(s))
	for i, b := range s {
		out[i] = uint16(b)
	}
	return out
}

// IsHighSurrogate reports whether u is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= HighSurrogateMin && u <= HighSurrogateMax
}

// IsLowSurrogate reports whether u is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= LowSurrogateMin && u <= LowSurrogateMax
}

// DecodePair combines a high and low surrogate into a supplementary-plane
// code point. The caller checks both ranges first.
func DecodePair(hi, lo uint16) rune {
	return 0x10000 + (rune(hi-HighSurrogateMin)<<10 | rune(lo-LowSurrogateMin))
}
