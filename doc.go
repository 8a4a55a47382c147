// Package utmatrix is a small library of generic numeric containers:
// a start-indexed vector and an upper-triangular matrix built from it.
//
// What's inside?
//
//	• vector/ (Vector[T]): owned storage, start-index addressing, bounds-checked
//	  access, equality, deep-copy assignment, scalar & element-wise arithmetic,
//	  dot product, textual stream I/O.
//	• matrix/ (Triangular[T]): row i stored as a Vector of length N-i starting at
//	  index i; double indexing, equality, assignment, Add/Sub, textual I/O.
//
// Guarantees:
//
//   - No panics on user errors: every failure is a sentinel error
//     (ErrInvalidSize, ErrIndexOutOfRange, ErrSizeMismatch) matched with errors.Is.
//   - Fail before mutate: an operation that returns an error changed nothing.
//   - No aliasing: Clone and Assign always deep-copy.
//
// Layout (N = 3):
//
//	row 0: a00 a01 a02
//	row 1:     a11 a12
//	row 2:         a22
//
// Quick example:
//
//	a, _ := matrix.New[int](3)
//	_ = a.Set(0, 2, 5)       // row 0, column 2
//	sum, _ := a.Add(a)       // sum.At(0, 2) == 10
//	_, err := sum.At(2, 0)   // errors.Is(err, matrix.ErrIndexOutOfRange)
//
// Install:
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix
