package pinchgraph

import (
	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/comparative-genomics/cactusgraph/piece"
)

// SplitEdge splits whichever black edge contains position on contig,
// returning the vertex that lies on the requested side of position. If
// position already sits on a span boundary for that side, no split occurs
// and the existing bounding vertex is returned directly.
//
// Complexity: O(log n) to locate the edge; the split itself shifts the
// contig's span slice, O(n) in the number of spans on that contig.
func (g *Graph) SplitEdge(contig name.Name, position int32, side Side) (*Vertex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.splitEdgeAtPosition(contig, position, side)
}

// splitEdgeAtPosition is SplitEdge's body, callable while mu is already
// held (e.g. from PinchMerge's boundary-preparation step).
func (g *Graph) splitEdgeAtPosition(contig name.Name, position int32, side Side) (*Vertex, error) {
	idx := g.findSpanIdx(contig, position)
	if idx < 0 {
		return nil, ErrOutOfRange
	}
	sp := g.contigSpans[contig][idx]

	var splitAt int32
	switch side {
	case Left:
		if position == sp.start {
			return sp.edge.From, nil
		}
		splitAt = position
	case Right:
		if position == sp.end {
			return sp.edge.To, nil
		}
		splitAt = position + 1
	}
	return g.splitEdgeAt(contig, idx, splitAt), nil
}

// splitEdgeAt splits the span at contigSpans[contig][idx] into
// [start, splitAt-1] and [splitAt, end], introducing one new vertex between
// them, and returns that vertex. Callers must hold mu (write).
func (g *Graph) splitEdgeAt(contig name.Name, idx int, splitAt int32) *Vertex {
	sp := g.contigSpans[contig][idx]
	edge := sp.edge
	redge := edge.REdge
	u, v := edge.From, edge.To

	// Detach the edge pair being split.
	delete(u.blackEdges, edge)
	delete(v.blackEdges, redge)
	g.removeSpanAt(contig, idx)

	w := g.addVertex(false, false)

	leftPiece := piece.New(contig, sp.start, splitAt-1)
	rightPiece := piece.New(contig, splitAt, sp.end)

	edgeA, redgeA := g.addEdgePair(u, w, leftPiece) // u -> w, mirror w -> u
	edgeB, redgeB := g.addEdgePair(w, v, rightPiece) // w -> v, mirror v -> w
	_ = redgeA
	_ = redgeB

	g.insertSpan(contig, span{start: sp.start, end: splitAt - 1, edge: edgeA})
	g.insertSpan(contig, span{start: splitAt, end: sp.end, edge: edgeB})

	return w
}

// MergeVertices unifies v1 and v2 into a single vertex, relocating every
// black and grey edge and removing the now-empty vertex. Idempotent when
// v1 == v2.
func (g *Graph) MergeVertices(v1, v2 *Vertex) *Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mergeVertices(v1, v2)
}

func (g *Graph) mergeVertices(v1, v2 *Vertex) *Vertex {
	if v1 == v2 {
		return v1
	}

	// Relocate black edges: every edge e with e.From == v1 is stored in
	// v1.blackEdges; its reverse (stored elsewhere) points in to v1 and must
	// have its To updated to v2.
	for e := range v1.blackEdges {
		e.From = v2
		e.REdge.To = v2
		v2.blackEdges[e] = struct{}{}
	}
	v1.blackEdges = nil

	// Relocate grey edges, dropping any that would become self-loops.
	for w := range v1.greyEdges {
		delete(w.greyEdges, v1)
		if w == v2 {
			continue
		}
		w.greyEdges[v2] = struct{}{}
		v2.greyEdges[w] = struct{}{}
	}
	v1.greyEdges = nil
	delete(v2.greyEdges, v1)

	if v1.isEnd {
		v2.isEnd = true
	}
	if v1.isDeadEnd {
		v2.isDeadEnd = true
	}

	delete(g.vertices, v1.id)
	return v2
}

// RemoveVertex deletes v from the graph. v must have no incident black or
// grey edges; otherwise ErrVertexNotEmpty is returned and the graph is left
// untouched.
func (g *Graph) RemoveVertex(v *Vertex) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(v.blackEdges) > 0 || len(v.greyEdges) > 0 {
		return ErrVertexNotEmpty
	}
	delete(g.vertices, v.id)
	return nil
}
