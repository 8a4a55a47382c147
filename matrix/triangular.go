// SPDX-License-Identifier: MIT

// Package matrix - Triangular storage (row vectors) & safe accessors.
//
// Purpose:
//   - Store only the upper triangle: row i is a vector of length n-i, start index i.
//   - Guarantee safety at the public surface: Ref/At/Set/Row return errors instead of panicking.
//   - Keep copies independent: Clone and Assign deep-copy every row.
//
// Complexity quicksheet:
//   - New: O(n²/2) zero-init; Row/Ref/At/Set: O(1); Clone/Assign/Equal: O(n²/2).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/utmatrix/vector"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxRow      = "Row"
	ctxRef      = "Ref"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAssign   = "Assign"
)

// ---------- Formatting literals ----------
const (
	_fmtRowClose = "\n"
)

// Triangular is an upper-triangular square matrix.
//   - rows holds one owned vector per row; len(rows) is the matrix size.
//   - rows[i] covers columns i..n-1 when the matrix was built by New.
type Triangular[T Number] struct {
	rows []*vector.Vector[T] // owned row buffer
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Triangular[float64])(nil)

// New creates a zero n×n upper-triangular matrix.
// MAIN DESCRIPTION:
//   - Public constructor; row i is allocated with length n-i and start index i.
//
// Implementation:
//   - Stage 1: validate 0 <= n <= MaxMatrixSize.
//   - Stage 2: allocate each row through vector.New.
//
// Errors:
//   - ErrInvalidSize (wrapped with the requested size).
//
// Complexity:
//   - Time O(n²), Space O(n²/2).
func New[T Number](n int) (*Triangular[T], error) {
	if n < 0 || n > MaxMatrixSize {
		return nil, fmt.Errorf("Triangular.%s(%d): %w", ctxNew, n, ErrInvalidSize)
	}
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		row, err := vector.New[T](n-i, i)
		if err != nil {
			return nil, rowErrorf(ctxNew, i, err)
		}
		rows[i] = row
	}

	return &Triangular[T]{rows: rows}, nil
}

// FromRows builds a matrix from a deep copy of rows.
// MAIN DESCRIPTION:
//   - Conversion constructor: adopts any row set. The triangular layout is NOT
//     validated; see IsTriangular.
//
// Errors:
//   - ErrInvalidSize when len(rows) > MaxMatrixSize.
//   - ErrNilVector when a row is nil.
//
// Complexity:
//   - Time O(total elements).
func FromRows[T Number](rows []*vector.Vector[T]) (*Triangular[T], error) {
	if len(rows) > MaxMatrixSize {
		return nil, fmt.Errorf("Triangular.%s(%d): %w", ctxFromRows, len(rows), ErrInvalidSize)
	}
	out := make([]*vector.Vector[T], len(rows))
	for i, row := range rows {
		if row == nil {
			return nil, rowErrorf(ctxFromRows, i, ErrNilVector)
		}
		out[i] = row.Clone()
	}

	return &Triangular[T]{rows: out}, nil
}

// Size returns the number of rows (equal to the number of columns).
func (m *Triangular[T]) Size() int { return len(m.rows) }

// IsTriangular reports whether every row i has length Size()-i and start index i.
// Always true for matrices built by New; FromRows may produce false.
func (m *Triangular[T]) IsTriangular() bool {
	n := len(m.rows)
	for i, row := range m.rows {
		if row.Size() != n-i || row.StartIndex() != i {
			return false
		}
	}

	return true
}

// Row returns row i. The row is owned by m: writes through it are visible in
// m, and it must not be handed to another owner.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, Size()).
func (m *Triangular[T]) Row(i int) (*vector.Vector[T], error) {
	return m.row(ctxRow, i)
}

func (m *Triangular[T]) row(method string, i int) (*vector.Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Triangular.%s(%d) not in [0,%d): %w", method, i, len(m.rows), ErrIndexOutOfRange)
	}

	return m.rows[i], nil
}

// Ref returns a pointer to cell (i, j).
// MAIN DESCRIPTION:
//   - Double indexing: the row check runs first, then the row vector's own
//     column check; either failing yields ErrIndexOutOfRange.
//
// Behavior highlights:
//   - Cells with j < i are absent and always out of range.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Triangular[T]) Ref(i, j int) (*T, error) {
	row, err := m.row(ctxRef, i)
	if err != nil {
		return nil, err
	}
	p, err := row.Ref(j)
	if err != nil {
		return nil, rowErrorf(ctxRef, i, err)
	}

	return p, nil
}

// At returns cell (i, j).
func (m *Triangular[T]) At(i, j int) (T, error) {
	row, err := m.row(ctxAt, i)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := row.At(j)
	if err != nil {
		return v, rowErrorf(ctxAt, i, err)
	}

	return v, nil
}

// Set stores val at cell (i, j).
func (m *Triangular[T]) Set(i, j int, val T) error {
	row, err := m.row(ctxSet, i)
	if err != nil {
		return err
	}
	if err = row.Set(j, val); err != nil {
		return rowErrorf(ctxSet, i, err)
	}

	return nil
}

// Clone returns a deep copy; every row is cloned.
// Complexity: O(total elements).
func (m *Triangular[T]) Clone() *Triangular[T] {
	out := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		out[i] = row.Clone()
	}

	return &Triangular[T]{rows: out}
}

// Equal reports whether m and other have the same row count and every pair of
// rows is vector-equal (sizes and elements; start indices are ignored).
// Matrices of different size are therefore never equal. A nil matrix equals only nil.
func (m *Triangular[T]) Equal(other *Triangular[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if m.rows[i].NotEqual(other.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Triangular[T]) NotEqual(other *Triangular[T]) bool { return !m.Equal(other) }

// Assign replaces m's content with a deep copy of other.
// MAIN DESCRIPTION:
//   - Row buffer is reallocated when row counts differ; each row is then
//     assigned through vector.Assign.
//
// Implementation:
//   - Stage 1: reject nil; return early on self-assignment.
//   - Stage 2: clone other's rows into a staging buffer.
//   - Stage 3: reuse or reallocate m's row buffer, then assign row by row.
//
// Behavior highlights:
//   - Staging makes the operation safe even when other shares rows with m.
//   - On error m is untouched.
//
// Errors:
//   - ErrNilMatrix when other is nil.
func (m *Triangular[T]) Assign(other *Triangular[T]) error {
	if other == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == other {
		return nil
	}
	staged := other.Clone().rows

	if len(m.rows) != len(staged) {
		m.rows = staged
		return nil
	}
	for i := range m.rows {
		// Rows are non-nil and staged[i] is non-nil, so Assign cannot fail.
		_ = m.rows[i].Assign(staged[i])
	}

	return nil
}

// String renders one diagnostic row per line, e.g. "[1, 2]\n[3]\n".
func (m *Triangular[T]) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(row.String())
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
