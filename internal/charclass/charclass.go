// Package charclass classifies code units into the five mutually exclusive
// classes used by cardinality scoring and tracks which classes a text uses.
package charclass

import "github.com/tamirms/strmetric/internal/units"

// Class is one of the five character classes, in classification priority
// order.
type Class uint8

const (
	Lower   Class = iota // 'a'..'z'
	Upper                // 'A'..'Z'
	Digit                // '0'..'9'
	ASCII                // any other unit <= 0x7F
	Unicode              // any unit > 0x7F
	numClasses
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digit:
		return "digit"
	case ASCII:
		return "ascii"
	case Unicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// Classes lists every class in priority order.
var Classes = [numClasses]Class{Lower, Upper, Digit, ASCII, Unicode}

// Set is a bitset over Class.
type Set uint8

// All is the set containing every class. A scan can stop once it reaches it.
const All Set = 1<<numClasses - 1

// Has reports whether c is in s.
func (s Set) Has(c Class) bool {
	return s&(1<<c) != 0
}

// With returns s with c added.
func (s Set) With(c Class) Set {
	return s | 1<<c
}

// Len returns the number of classes in s.
func (s Set) Len() int {
	n := 0
	for _, c := range Classes {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Classify returns the class of a single code unit.
func Classify[U units.Unit](u U) Class {
	switch {
	case u >= 'a' && u <= 'z':
		return Lower
	case u >= 'A' && u <= 'Z':
		return Upper
	case u >= '0' && u <= '9':
		return Digit
	case u <= 0x7F:
		return ASCII
	default:
		return Unicode
	}
}

// Scan returns the set of classes observed in s. It returns as soon as every
// class has been seen. When stopAtNUL is set a zero unit ends the scan as if
// it were the end of the input.
func Scan[U units.Unit](s []U, stopAtNUL bool) Set {
	var seen Set
	for _, u := range s {
		if u == 0 && stopAtNUL {
			break
		}
		seen = seen.With(Classify(u))
		if seen == All {
			break
		}
	}
	return seen
}
