// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and element-wise arithmetic plus the dot product.
//   - Every operation returns a fresh vector; operands are never modified.
//
// Design:
//   - Two private kernels (ewScalar, ewBinary) hold the only loops; public
//     methods select the operator and add error context.
//   - Results keep the receiver's start index.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; one allocation for the result.

package vector

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }

// ewScalar computes out[i] = op(v[i], val). Time O(n), Space O(n).
func ewScalar[T Number](v *Vector[T], val T, op func(a, b T) T) *Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = op(x, val)
	}

	return &Vector[T]{start: v.start, data: out}
}

// ewBinary computes out[i] = op(a[i], b[i]) after validating operands.
// Time O(n), Space O(n).
func ewBinary[T Number](method string, a, b *Vector[T], op func(x, y T) T) (*Vector[T], error) {
	if err := validateOperand(method, a, b); err != nil {
		return nil, err
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = op(a.data[i], b.data[i])
	}

	return &Vector[T]{start: a.start, data: out}, nil
}

// validateOperand checks both operands of a binary operation:
// nil first, then size.
func validateOperand[T Number](method string, a, b *Vector[T]) error {
	if a == nil || b == nil {
		return vectorErrorf(method, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return vectorErrorf(method, ErrSizeMismatch)
	}

	return nil
}

// AddScalar returns a new vector with val added to every element.
func (v *Vector[T]) AddScalar(val T) *Vector[T] { return ewScalar(v, val, add[T]) }

// SubScalar returns a new vector with val subtracted from every element.
func (v *Vector[T]) SubScalar(val T) *Vector[T] { return ewScalar(v, val, sub[T]) }

// MulScalar returns a new vector with every element multiplied by val.
func (v *Vector[T]) MulScalar(val T) *Vector[T] { return ewScalar(v, val, mul[T]) }

// Add returns the element-wise sum v + other.
//
// Errors:
//   - ErrNilVector when v or other is nil.
//   - ErrSizeMismatch when Size() differs.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return ewBinary(ctxAdd, v, other, add[T])
}

// Sub returns the element-wise difference v - other.
// Errors as in Add.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return ewBinary(ctxSub, v, other, sub[T])
}

// Dot returns the sum of pairwise products of v and other.
// The accumulator starts at the zero value of T, so empty vectors yield zero.
//
// Errors:
//   - ErrNilVector when v or other is nil.
//   - ErrSizeMismatch when Size() differs.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var acc T
	if err := validateOperand(ctxDot, v, other); err != nil {
		return acc, err
	}
	for i := range v.data {
		acc += v.data[i] * other.data[i]
	}

	return acc, nil
}
