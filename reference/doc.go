// Package reference implements the top-down reference-genome construction
// algorithm (spec.md §4.3): given a flower with fixed block/end/chain
// topology, choose a perfect matching over its active node set — attached
// stub ends and tangle-group block ends — that respects stub adjacencies
// inherited from the parent flower, incorporates every chain as a forced
// edge, and avoids closing more than the one cycle a reference path implies.
//
// The algorithm walks one flower at a time; BuildReference is the entry
// point a caller invokes bottom-up or top-down over the flower hierarchy
// (this package does not itself recurse into nested flowers — that
// traversal belongs to the tree-building pipeline spec.md's Out-of-scope
// section excludes).
package reference
