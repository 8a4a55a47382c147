// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for triangular matrices.
//   • Keep setup out of the assertions so each test reads as its property.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/katalvlaran/utmatrix/vector"
)

// mustTriangular ALLOCATES an n×n zero matrix or fails the test.
func mustTriangular[T matrix.Number](tb testing.TB, n int) *matrix.Triangular[T] {
	tb.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		tb.Fatalf("matrix.New(%d): %v", n, err)
	}

	return m
}

// fillConst writes val into every stored cell (i <= j).
func fillConst[T matrix.Number](tb testing.TB, m *matrix.Triangular[T], val T) {
	tb.Helper()
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := m.Set(i, j, val); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// fillCoords writes 10*i + j into every stored cell, so each value names its cell.
func fillCoords(tb testing.TB, m *matrix.Triangular[int]) {
	tb.Helper()
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := m.Set(i, j, 10*i+j); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// row builds a vector from literal values or fails the test.
func row[T vector.Number](tb testing.TB, start int, values ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(start, values)
	if err != nil {
		tb.Fatalf("vector.FromSlice: %v", err)
	}

	return v
}

// failingWriter rejects every write with err.
type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }
