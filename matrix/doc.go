// Package matrix provides Triangular, an upper-triangular square matrix of
// generic numeric elements built from vector.Vector rows.
//
// Layout:
//
//	Row i of an N×N matrix is a vector of length N-i whose start index is i,
//	so it holds exactly columns i..N-1. Cells below the diagonal are not
//	stored at all; addressing them fails with ErrIndexOutOfRange.
//
//	N = 3:   row 0: [a00 a01 a02]   start 0
//	         row 1:     [a11 a12]   start 1
//	         row 2:         [a22]   start 2
//
// Composition:
//
//	Triangular holds its rows; it is not a vector itself. Equality, assignment
//	and Add/Sub delegate row by row to the vector operations, while scalar
//	arithmetic and the dot product are intentionally not part of the surface.
//
// Shape caveat:
//
//	FromRows adopts any row set without checking the triangular layout. Equal
//	then compares row by row with vector semantics; call IsTriangular when the
//	shape matters.
package matrix
