package pinchgraph

import "errors"

// Sentinel errors for pinch graph operations. Mirror the teacher's core
// package style: a dedicated var block of wrapped sentinels, never panics for
// conditions a caller can recover from.
var (
	// ErrOutOfRange indicates a split point or queried position does not lie
	// on any black edge of the contig.
	ErrOutOfRange = errors.New("pinchgraph: position out of range")

	// ErrZeroLengthPiece indicates an attempt to pinch-merge a piece whose
	// start/end describe zero bases.
	ErrZeroLengthPiece = errors.New("pinchgraph: zero-length piece")

	// ErrMismatchedLength indicates pinchMerge was given two pieces of
	// different lengths; they cannot be walked column-by-column together.
	ErrMismatchedLength = errors.New("pinchgraph: mismatched piece lengths")

	// ErrVertexNotEmpty indicates an attempt to remove a vertex that still
	// has black or grey edges attached.
	ErrVertexNotEmpty = errors.New("pinchgraph: vertex has incident edges")

	// ErrInvariantViolation is returned by the consistency checkers
	// (CheckPinchGraph, CheckPinchGraphDegree) when a structural invariant
	// from spec §4.1 is violated.
	ErrInvariantViolation = errors.New("pinchgraph: invariant violation")
)
