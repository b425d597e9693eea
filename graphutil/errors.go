package graphutil

import "errors"

var (
	// ErrOddNodeCount indicates a matcher was given an odd number of nodes,
	// which cannot have a perfect matching.
	ErrOddNodeCount = errors.New("graphutil: node set has odd cardinality")

	// ErrNoMatching indicates a matcher could not produce a perfect matching
	// from the given nodes and edges (spec's MatchingInfeasible taxonomy
	// entry — the caller maps this into REFERENCE_BUILDING failures).
	ErrNoMatching = errors.New("graphutil: no perfect matching exists")
)
