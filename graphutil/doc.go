// Package graphutil provides the small graph-theoretic primitives the
// reference-construction algorithm is built from: weighted edge sets over
// integer node ids, clique completion, weight-descending batch extraction,
// and a pluggable perfect-matching interface with a deterministic greedy
// implementation.
//
// None of this package is specific to the cactus data model — it operates on
// bare node ids and edges, the same separation the teacher draws between its
// core.Graph and the algorithms built on top of it.
package graphutil
