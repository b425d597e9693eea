package graphutil

// CompleteClique adds a defaultWeight edge between every pair of nodes in
// nodes not already connected by an edge in edges, returning the augmented
// edge set. Grounded on the original implementation's makeEdgesAClique: the
// top-level reference-construction loop needs every pair of active nodes to
// be a candidate matching edge, so any pair left disconnected by the real
// chain/stub/adjacency edges is backfilled at zero (or caller-chosen) weight.
func CompleteClique(edges *EdgeSet, nodes *NodeSet, defaultWeight float64) *EdgeSet {
	out := NewEdgeSet(edges.Slice()...)
	ids := nodes.Sorted()
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if !out.Has(a, b) {
				out.Add(NewEdge(a, b, defaultWeight))
			}
		}
	}
	return out
}
