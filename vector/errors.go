// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the vector
// package (and re-exported by matrix). Operations MUST return these sentinels,
// wrapped with call-site context, and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for grep-ability. Call sites
// wrap with vectorErrorf so the method and offending index stay visible while
// errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> size/start validation -> index range -> operand size mismatch.

var (
	// ErrInvalidSize is returned by constructors when the requested size is
	// negative, exceeds its ceiling, or the start index is negative.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrIndexOutOfRange indicates that an external index resolved to an
	// offset outside [0, Size()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates that the operands of a binary operation
	// (Add, Sub, Dot) hold a different number of elements.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed where a value is required.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrMalformedInput indicates that Scan could not read Size() elements.
	ErrMalformedInput = errors.New("vector: malformed input")
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// indexErrorf wraps an index failure with the offending external position
// and the valid window, e.g. "Vector.At(7) not in [2,5): vector: index out of range".
func indexErrorf(method string, pos, lo, hi int) error {
	return fmt.Errorf("Vector.%s(%d) not in [%d,%d): %w", method, pos, lo, hi, ErrIndexOutOfRange)
}
