package cactus

import "errors"

// Sentinel errors for the cactus object graph, mirroring the teacher's core
// package sentinel-variable style.
var (
	// ErrInvariantViolation is returned by Check methods and by mutators that
	// detect a structural assertion failure (orientation mismatch,
	// end-without-block, a non-involutive reverse companion).
	ErrInvariantViolation = errors.New("cactus: invariant violation")

	// ErrMissingEntity indicates a referenced Name does not resolve to any
	// entity in the flower's arenas.
	ErrMissingEntity = errors.New("cactus: missing entity")

	// ErrOutOfRange indicates a split point lies outside a block's length.
	ErrOutOfRange = errors.New("cactus: split point out of range")

	// ErrAlreadyAdjacent indicates a cap already has an adjacency and cannot
	// be given a second one without first breaking it.
	ErrAlreadyAdjacent = errors.New("cactus: cap already has an adjacency")

	// ErrMultipleChains indicates a block's two ends resolve to links
	// belonging to different chains — spec §8 invariant 6 requires at most
	// one chain per block.
	ErrMultipleChains = errors.New("cactus: block ends disagree on chain membership")

	// ErrWrongFlower indicates an entity handle was passed to a Flower other
	// than the one that constructed it.
	ErrWrongFlower = errors.New("cactus: entity does not belong to this flower")
)
