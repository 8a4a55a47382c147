// Package vector provides Vector, a generic numeric container with a
// configurable start index.
//
// What & Why:
//
//	A Vector owns a contiguous run of Size() elements. External indices are
//	shifted by StartIndex(): position pos is valid iff
//	StartIndex() <= pos < StartIndex()+Size(). This lets a vector stand for a
//	slice of a larger index space, which is how matrix stores only the
//	upper-triangular part of each row.
//
// Ownership:
//
//	Storage is exclusively owned. Clone and Assign always deep-copy; no two
//	vectors ever alias the same buffer.
//
// Errors:
//
//	Constructors return ErrInvalidSize, accessors ErrIndexOutOfRange and binary
//	arithmetic ErrSizeMismatch. Every operation validates before it writes.
//
// Complexity:
//
//	Ref/At/Set run in O(1). Clone, Assign, Equal and all arithmetic are O(n).
package vector
