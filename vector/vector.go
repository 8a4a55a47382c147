// SPDX-License-Identifier: MIT

// Package vector - owned storage, start-index addressing & safe accessors.
//
// Purpose:
//   - Provide one owned slice per vector, addressed through an external index
//     shifted by the start index (offset = pos - start).
//   - Guarantee safety at the public surface: Ref/At/Set return errors instead of panicking.
//   - Keep copies independent: Clone and Assign never share storage.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; Ref/At/Set: O(1); Clone/Assign/Equal: O(n).

package vector

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxFrom   = "FromSlice"
	ctxRef    = "Ref"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
)

// Vector is a generic numeric container with a start index.
//   - start is added to every external index (start >= 0).
//   - data is the owned buffer; len(data) is the vector size.
type Vector[T Number] struct {
	start int // external index of data[0]
	data  []T // exclusively owned storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New creates a zero-filled vector of size elements whose first element has
// external index startIndex.
// MAIN DESCRIPTION:
//   - Public constructor with strict validation against MaxVectorSize.
//
// Implementation:
//   - Stage 1: validate 0 <= size <= MaxVectorSize and startIndex >= 0.
//   - Stage 2: allocate the zero-filled buffer (make zero-fills deterministically).
//
// Errors:
//   - ErrInvalidSize (wrapped with the requested shape).
//
// Complexity:
//   - Time O(size), Space O(size).
func New[T Number](size, startIndex int) (*Vector[T], error) {
	if err := validateShape(size, startIndex); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d,%d): %w", ctxNew, size, startIndex, err)
	}

	return &Vector[T]{start: startIndex, data: make([]T, size)}, nil
}

// FromSlice creates a vector holding a copy of values, starting at startIndex.
// The caller keeps ownership of values; later writes to it are not observed.
// Complexity: O(len(values)).
func FromSlice[T Number](startIndex int, values []T) (*Vector[T], error) {
	if err := validateShape(len(values), startIndex); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d,%d): %w", ctxFrom, len(values), startIndex, err)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Vector[T]{start: startIndex, data: buf}, nil
}

// validateShape is the single source of truth for the constructor contract.
func validateShape(size, startIndex int) error {
	if size < 0 || size > MaxVectorSize || startIndex < 0 {
		return ErrInvalidSize
	}

	return nil
}

// Size returns the element count.
func (v *Vector[T]) Size() int { return len(v.data) }

// StartIndex returns the external index of the first element.
func (v *Vector[T]) StartIndex() int { return v.start }

// offsetOf translates an external index into a storage offset.
// Returns ErrIndexOutOfRange (wrapped with method and window) when the offset
// falls outside [0, Size()).
func (v *Vector[T]) offsetOf(method string, pos int) (int, error) {
	off := pos - v.start
	if off < 0 || off >= len(v.data) {
		return 0, indexErrorf(method, pos, v.start, v.start+len(v.data))
	}

	return off, nil
}

// Ref returns a pointer to the element at external index pos.
// MAIN DESCRIPTION:
//   - The single access path; At and Set are thin wrappers around it.
//
// Behavior highlights:
//   - Writes through the pointer mutate the vector.
//   - The pointer is invalidated by an Assign that changes Size().
//
// Errors:
//   - ErrIndexOutOfRange when pos-StartIndex() < 0 or >= Size().
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) Ref(pos int) (*T, error) {
	off, err := v.offsetOf(ctxRef, pos)
	if err != nil {
		return nil, err
	}

	return &v.data[off], nil
}

// At returns the element at external index pos.
func (v *Vector[T]) At(pos int) (T, error) {
	off, err := v.offsetOf(ctxAt, pos)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.data[off], nil
}

// Set stores val at external index pos.
func (v *Vector[T]) Set(pos int, val T) error {
	off, err := v.offsetOf(ctxSet, pos)
	if err != nil {
		return err
	}
	v.data[off] = val

	return nil
}

// Values returns an independent copy of the elements in index order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy: same size, start index and elements, new buffer.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	cp := make([]T, len(v.data))
	copy(cp, v.data)

	return &Vector[T]{start: v.start, data: cp}
}

// Equal reports whether v and other hold the same number of elements and
// every pair of corresponding elements compares equal.
// The start index does not take part in equality. A nil vector equals only nil.
// Complexity: O(n).
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(other *Vector[T]) bool { return !v.Equal(other) }

// Assign replaces v's content with a deep copy of other.
// MAIN DESCRIPTION:
//   - Value assignment: size, start index and elements are taken from other.
//
// Implementation:
//   - Stage 1: reject nil.
//   - Stage 2: snapshot other's elements into a temporary.
//   - Stage 3: reallocate v's buffer only when sizes differ, then copy.
//
// Behavior highlights:
//   - Self-assignment leaves v unchanged; the temporary makes this hold even
//     when v and other are the same vector.
//   - On error v is untouched.
//
// Errors:
//   - ErrNilVector when other is nil.
//
// Complexity:
//   - Time O(n), Space O(n) for the temporary.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if other == nil {
		return vectorErrorf(ctxAssign, ErrNilVector)
	}
	tmp := make([]T, len(other.data))
	copy(tmp, other.data)

	if len(v.data) != len(tmp) {
		v.data = make([]T, len(tmp))
	}
	copy(v.data, tmp)
	v.start = other.start

	return nil
}
