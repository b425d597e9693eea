package graphutil

import "sort"

// Edge is a weighted, undirected edge between two node ids. U is always the
// smaller of the two endpoints — constructors normalize this so EdgeSet
// lookups don't need to try both orderings.
type Edge struct {
	U, V   int
	Weight float64
}

// NewEdge builds an Edge with its endpoints normalized so U <= V.
func NewEdge(a, b int, weight float64) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b, Weight: weight}
}

// NodeSet is a sorted, deduplicated set of node ids, mirroring the
// original implementation's sorted stSortedSet of node tuples.
type NodeSet struct {
	ids map[int]struct{}
}

// NewNodeSet builds a NodeSet from the given ids, deduplicating.
func NewNodeSet(ids ...int) *NodeSet {
	s := &NodeSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s *NodeSet) Add(id int) { s.ids[id] = struct{}{} }

// Contains reports whether id is a member.
func (s *NodeSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of distinct members.
func (s *NodeSet) Len() int { return len(s.ids) }

// Sorted returns the set's members in ascending order.
func (s *NodeSet) Sorted() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Difference returns the members of s not present in other, sorted
// ascending — mirrors the original's getActiveNodes (stSortedSet_getDifference).
func (s *NodeSet) Difference(other *NodeSet) []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		if !other.Contains(id) {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// EdgeSet is an unordered collection of Edges with an O(1) endpoint-pair
// membership test, mirroring the original's nodesToEdges hash built by
// getNodesToEdgesHash.
type EdgeSet struct {
	byPair map[[2]int]Edge
}

// NewEdgeSet builds an EdgeSet from the given edges, normalizing endpoints.
func NewEdgeSet(edges ...Edge) *EdgeSet {
	s := &EdgeSet{byPair: make(map[[2]int]Edge, len(edges))}
	for _, e := range edges {
		s.Add(e)
	}
	return s
}

// Add inserts e, normalizing its endpoint order, overwriting any existing
// edge between the same pair.
func (s *EdgeSet) Add(e Edge) {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}
	s.byPair[[2]int{e.U, e.V}] = e
}

// Get returns the edge between a and b, if any.
func (s *EdgeSet) Get(a, b int) (Edge, bool) {
	if a > b {
		a, b = b, a
	}
	e, ok := s.byPair[[2]int{a, b}]
	return e, ok
}

// Has reports whether an edge exists between a and b.
func (s *EdgeSet) Has(a, b int) bool {
	_, ok := s.Get(a, b)
	return ok
}

// Len returns the number of distinct edges.
func (s *EdgeSet) Len() int { return len(s.byPair) }

// Slice returns all edges in unspecified order.
func (s *EdgeSet) Slice() []Edge {
	out := make([]Edge, 0, len(s.byPair))
	for _, e := range s.byPair {
		out = append(out, e)
	}
	return out
}

// Nodes returns the NodeSet of every endpoint appearing in s, mirroring the
// original's getNodeSetOfEdges.
func (s *EdgeSet) Nodes() *NodeSet {
	nodes := NewNodeSet()
	for pair := range s.byPair {
		nodes.Add(pair[0])
		nodes.Add(pair[1])
	}
	return nodes
}
