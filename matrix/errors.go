// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The three-kind taxonomy (invalid size, index out of range, size mismatch)
// is owned by package vector; matrix re-exports those sentinels so that
// errors.Is matches regardless of which layer detected the condition. A
// mismatched row inside Add/Sub surfaces vector's own ErrSizeMismatch.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// SHARED TAXONOMY (aliases, identical sentinels).
var (
	// ErrInvalidSize is returned by constructors when size < 0 or size > MaxMatrixSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row or column outside its valid window.
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates operands with different row counts or row lengths.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilVector indicates a nil row handed to FromRows.
	ErrNilVector = vector.ErrNilVector

	// ErrMalformedInput indicates that Scan could not read every row.
	ErrMalformedInput = vector.ErrMalformedInput
)

// ErrNilMatrix indicates that a nil *Triangular was used as an operand.
var ErrNilMatrix = errors.New("matrix: nil matrix")

// matrixErrorf wraps an underlying error with Triangular method context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Triangular.%s: %w", method, err)
}

// rowErrorf wraps a row-level failure with the row index.
func rowErrorf(method string, row int, err error) error {
	return fmt.Errorf("Triangular.%s: row %d: %w", method, row, err)
}
