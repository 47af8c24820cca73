package strmetric

import (
	"strings"

	"github.com/tamirms/strmetric/internal/charclass"
)

// CharClass is one of the five character classes scored by Cardinality.
type CharClass uint8

// Classes in classification priority order.
const (
	ClassLower   = CharClass(charclass.Lower)
	ClassUpper   = CharClass(charclass.Upper)
	ClassDigit   = CharClass(charclass.Digit)
	ClassASCII   = CharClass(charclass.ASCII)
	ClassUnicode = CharClass(charclass.Unicode)
)

// String returns the class name.
func (c CharClass) String() string {
	return charclass.Class(c).String()
}

// ClassSet is the set of character classes observed in a text.
type ClassSet uint8

// Has reports whether class c was observed.
func (s ClassSet) Has(c CharClass) bool {
	return charclass.Set(s).Has(charclass.Class(c))
}

// Len returns the number of classes observed.
func (s ClassSet) Len() int {
	return charclass.Set(s).Len()
}

// String lists the observed classes separated by "|", or "none".
func (s ClassSet) String() string {
	var names []string
	for _, c := range charclass.Classes {
		if charclass.Set(s).Has(c) {
			names = append(names, c.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Cardinality scores the character-class diversity of text.
//
// Each unit falls into exactly one class, tested in order: lowercase ASCII
// letter, uppercase ASCII letter, ASCII digit, other ASCII (<= 0x7F),
// non-ASCII. The score is the sum of the weights of every class observed at
// least once; repeated classes add nothing. Scanning stops as soon as all
// five classes have been observed. Empty text scores 0.
//
// By default a NUL unit ends the scan (see WithStopAtNUL). The only errors
// are option validation errors, which wrap errors.ErrInvalidArgument.
func Cardinality(text Text, opts ...CardinalityOption) (uint32, error) {
	cfg, err := resolveCardinalityConfig(opts)
	if err != nil {
		return 0, err
	}
	return cfg.weights.score(scanClasses(text, cfg.stopAtNUL)), nil
}

// CardinalityClasses returns the set of classes Cardinality would score for
// text under the same options.
func CardinalityClasses(text Text, opts ...CardinalityOption) (ClassSet, error) {
	cfg, err := resolveCardinalityConfig(opts)
	if err != nil {
		return 0, err
	}
	return ClassSet(scanClasses(text, cfg.stopAtNUL)), nil
}

func scanClasses(text Text, stopAtNUL bool) charclass.Set {
	if text.IsNarrow() {
		return charclass.Scan(text.narrow, stopAtNUL)
	}
	return charclass.Scan(text.wide, stopAtNUL)
}

// score sums the weights of the classes in seen. Validate guarantees the
// total of all five weights fits a uint32.
func (w CardinalityWeights) score(seen charclass.Set) uint32 {
	var total uint32
	if seen.Has(charclass.Lower) {
		total += uint32(w.Lower)
	}
	if seen.Has(charclass.Upper) {
		total += uint32(w.Upper)
	}
	if seen.Has(charclass.Digit) {
		total += uint32(w.Digit)
	}
	if seen.Has(charclass.ASCII) {
		total += uint32(w.ASCII)
	}
	if seen.Has(charclass.Unicode) {
		total += uint32(w.Unicode)
	}
	return total
}
