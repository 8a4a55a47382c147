// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures so tests read as intent, not setup.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
)

// mustVector ALLOCATES a zero vector or fails the test.
// Accepts testing.TB so benchmarks can share it.
func mustVector[T vector.Number](tb testing.TB, size, start int) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](size, start)
	if err != nil {
		tb.Fatalf("vector.New(%d,%d): %v", size, start, err)
	}

	return v
}

// mustFrom builds a vector from literal values or fails the test.
func mustFrom[T vector.Number](tb testing.TB, start int, values ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(start, values)
	if err != nil {
		tb.Fatalf("vector.FromSlice(%d,%v): %v", start, values, err)
	}

	return v
}

// fill writes val into every valid position of v.
func fill[T vector.Number](tb testing.TB, v *vector.Vector[T], val T) {
	tb.Helper()
	for pos := v.StartIndex(); pos < v.StartIndex()+v.Size(); pos++ {
		if err := v.Set(pos, val); err != nil {
			tb.Fatalf("Set(%d): %v", pos, err)
		}
	}
}

// fillSeq writes base, base+1, ... into v in index order.
func fillSeq(tb testing.TB, v *vector.Vector[int], base int) {
	tb.Helper()
	for i := 0; i < v.Size(); i++ {
		if err := v.Set(v.StartIndex()+i, base+i); err != nil {
			tb.Fatalf("Set(%d): %v", v.StartIndex()+i, err)
		}
	}
}

// failingWriter rejects every write with err.
type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }
