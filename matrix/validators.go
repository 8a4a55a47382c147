// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep Add/Sub minimal by delegating nil/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → SameSize.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Number](m *Triangular[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b have the same row count.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameSize[T Number](a, b *Triangular[T]) error {
	if len(a.rows) != len(b.rows) {
		return validatorErrorf("ValidateSameSize", ErrSizeMismatch)
	}

	return nil
}

// ValidateBinary is the composite check for binary operations:
// NotNil(a) → NotNil(b) → SameSize.
func ValidateBinary[T Number](a, b *Triangular[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}
