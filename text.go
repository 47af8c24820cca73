package strmetric

import (
	"github.com/tamirms/strmetric/internal/encoding"
	"github.com/tamirms/strmetric/internal/units"
)

// Text is a read-only view over a sequence of code units.
//
// Storage is either narrow (one Latin-1 code point per byte) or wide (UTF-16
// code units). The zero value is the empty text. Text never copies or
// retains the slice it wraps beyond a single call, and never modifies it;
// the caller must not modify it during a call either.
type Text struct {
	narrow []byte
	wide   []uint16
}

// Latin1 wraps single-byte code units. Each byte is the code point of the
// same value (U+0000..U+00FF).
func Latin1(b []byte) Text {
	return Text{narrow: b}
}

// UTF16 wraps UTF-16 code units. Surrogate pairs are decoded where an
// algorithm needs code points; unpaired surrogates are treated as ordinary
// units.
func UTF16(u []uint16) Text {
	if u == nil {
		return Text{}
	}
	return Text{wide: u}
}

// FromString decodes UTF-8 text. The result is narrow when every rune fits
// Latin-1, wide otherwise. Invalid UTF-8 decodes to U+FFFD.
func FromString(s string) Text {
	narrow, wide := encoding.Split(s)
	return Text{narrow: narrow, wide: wide}
}

// Len returns the number of code units.
func (t Text) Len() int {
	if t.wide != nil {
		return len(t.wide)
	}
	return len(t.narrow)
}

// IsNarrow reports whether the text is stored one byte per unit. The empty
// text is narrow.
func (t Text) IsNarrow() bool {
	return t.wide == nil
}

// At returns the code unit at index i. It panics if i is out of range.
func (t Text) At(i int) uint16 {
	if t.wide != nil {
		return t.wide[i]
	}
	return uint16(t.narrow[i])
}

// String renders the text as UTF-8.
func (t Text) String() string {
	if t.wide != nil {
		return encoding.WideString(t.wide)
	}
	return encoding.NarrowString(t.narrow)
}

// units16 returns the text as UTF-16 units, widening narrow storage.
func (t Text) units16() []uint16 {
	if t.wide != nil {
		return t.wide
	}
	return units.Widen(t.narrow)
}

// bothNarrow reports whether a pair of texts can be compared byte-wise.
func bothNarrow(a, b Text) bool {
	return a.IsNarrow() && b.IsNarrow()
}
