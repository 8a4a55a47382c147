// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix addition and subtraction by row-wise delegation to vector.Add/Sub.
//
// Design:
//   - One private kernel (ewRows) holds the row loop; public methods choose
//     the row operation.
//   - Row-count mismatch is caught by ValidateBinary; a row-length mismatch
//     (possible only with FromRows input) surfaces vector's ErrSizeMismatch.
//   - Results are fresh matrices; operands are never modified.

package matrix

import "github.com/katalvlaran/utmatrix/vector"

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
)

// rowOp is a binary vector operation applied to a pair of corresponding rows.
type rowOp[T Number] func(a, b *vector.Vector[T]) (*vector.Vector[T], error)

// ewRows computes out.rows[i] = op(a.rows[i], b.rows[i]) for every row.
// All rows are computed before the result is returned, so a failing row
// leaves no partial matrix behind.
// Time O(total elements), Space O(total elements).
func ewRows[T Number](method string, a, b *Triangular[T], op rowOp[T]) (*Triangular[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(method, err)
	}
	out := make([]*vector.Vector[T], len(a.rows))
	for i := range a.rows {
		row, err := op(a.rows[i], b.rows[i])
		if err != nil {
			return nil, rowErrorf(method, i, err)
		}
		out[i] = row
	}

	return &Triangular[T]{rows: out}, nil
}

// Add returns the element-wise sum m + other.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrSizeMismatch when row counts or corresponding row lengths differ.
//
// Complexity:
//   - Time O(n²/2), Space O(n²/2).
func (m *Triangular[T]) Add(other *Triangular[T]) (*Triangular[T], error) {
	return ewRows(ctxAdd, m, other, (*vector.Vector[T]).Add)
}

// Sub returns the element-wise difference m - other.
// Errors as in Add.
func (m *Triangular[T]) Sub(other *Triangular[T]) (*Triangular[T], error) {
	return ewRows(ctxSub, m, other, (*vector.Vector[T]).Sub)
}
