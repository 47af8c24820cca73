// Package encoding converts between Go strings and the two code-unit storage
// forms used by the metrics, and serializes units for hashing.
//
// Narrow storage holds one Latin-1 code point per byte. Wide storage holds
// UTF-16 code units. A string whose runes all fit Latin-1 is stored narrow,
// mirroring how JavaScript engines keep one-byte strings; anything else is
// stored wide.
package encoding

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Split decodes UTF-8 text into code units. Exactly one of narrow and wide
// is non-nil for non-empty input; both are nil for "". Invalid UTF-8 bytes
// decode to U+FFFD and therefore force wide storage.
func Split(s string) (narrow []byte, wide []uint16) {
	if s == "" {
		return nil, nil
	}
	narrow = make([]byte, 0, len(s))
	for i, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, widen(narrow, s[i:])
		}
		narrow = append(narrow, b)
	}
	return narrow, nil
}

// widen converts the already-narrowed prefix and the remaining string to
// UTF-16.
func widen(prefix []byte, rest string) []uint16 {
	wide := make([]uint16, 0, len(prefix)+len(rest))
	for _, b := range prefix {
		wide = append(wide, uint16(b))
	}
	for _, r := range rest {
		wide = utf16.AppendRune(wide, r)
	}
	return wide
}

// NarrowString renders Latin-1 units as UTF-8.
func NarrowString(narrow []byte) string {
	buf := make([]byte, 0, len(narrow))
	for _, b := range narrow {
		buf = utf8.AppendRune(buf, charmap.ISO8859_1.DecodeByte(b))
	}
	return string(buf)
}

// WideString renders UTF-16 units as UTF-8. Unpaired surrogates become
// U+FFFD.
func WideString(wide []uint16) string {
	return string(utf16.Decode(wide))
}

// AppendUnitsLE appends the little-endian bytes of each unit to dst.
func AppendUnitsLE(dst []byte, wide []uint16) []byte {
	for _, u := range wide {
		dst = binary.LittleEndian.AppendUint16(dst, u)
	}
	return dst
}

// AppendLatin1LE appends each Latin-1 unit to dst as a little-endian uint16,
// producing the same bytes AppendUnitsLE would for the widened units.
func AppendLatin1LE(dst []byte, narrow []byte) []byte {
	for _, b := range narrow {
		dst = append(dst, b, 0)
	}
	return dst
}
