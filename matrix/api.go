// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points as free functions.
//   - No logic duplication; each facade delegates to the canonical method.

package matrix

// NewZeros returns a zero n×n upper-triangular matrix. Alias of New.
func NewZeros[T Number](n int) (*Triangular[T], error) { return New[T](n) }

// NewFilled returns an n×n upper-triangular matrix with val in every stored cell.
// Complexity: O(n²).
func NewFilled[T Number](n int, val T) (*Triangular[T], error) {
	m, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i, row := range m.rows {
		// AddScalar on a zero row yields val everywhere with the same layout.
		m.rows[i] = row.AddScalar(val)
	}

	return m, nil
}

// Sum is an alias for a.Add(b).
func Sum[T Number](a, b *Triangular[T]) (*Triangular[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(ctxAdd, err)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b).
func Diff[T Number](a, b *Triangular[T]) (*Triangular[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(ctxSub, err)
	}

	return a.Sub(b)
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Clone.
func CloneMatrix[T Number](m *Triangular[T]) *Triangular[T] { return m.Clone() }
