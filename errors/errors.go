// Package errors defines all exported error sentinels for the strmetric library.
//
// The metric functions themselves are total over their input domain; the
// only failures are option validation errors raised before any text is
// scanned. Every such error wraps ErrInvalidArgument so callers can test for
// the category with a single errors.Is check.
package errors

import (
	"errors"
	"fmt"
)

// Argument errors
var (
	ErrInvalidArgument = errors.New("strmetric: invalid argument")
)

// Cardinality option errors
var (
	ErrNegativeWeight = fmt.Errorf("%w: cardinality weight is negative", ErrInvalidArgument)
	ErrWeightOverflow = fmt.Errorf("%w: cardinality weights exceed uint32 range", ErrInvalidArgument)
)
