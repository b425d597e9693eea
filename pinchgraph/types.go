package pinchgraph

import (
	"sync"

	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/comparative-genomics/cactusgraph/piece"
)

// Side selects which side of a queried position SplitEdge should return the
// bounding vertex for.
type Side int

const (
	// Left requests the vertex immediately to the left of the queried
	// position (i.e. the vertex bounding the column before it).
	Left Side = iota
	// Right requests the vertex immediately to the right of the queried
	// position.
	Right
)

// Vertex is a node of the pinch graph: an endpoint shared by zero or more
// black (pinch) edges and zero or more grey (adjacency) edges.
type Vertex struct {
	id         int
	blackEdges map[*Edge]struct{}
	greyEdges  map[*Vertex]struct{}
	isEnd      bool
	isDeadEnd  bool
}

// ID returns the vertex's monotonically assigned integer identifier.
func (v *Vertex) ID() int { return v.id }

// IsEnd reports whether this vertex denotes the end of an original contig
// (as opposed to a vertex introduced purely by a later split).
func (v *Vertex) IsEnd() bool { return v.isEnd }

// IsDeadEnd reports whether this vertex denotes a free (unattached)
// telomere — a contig endpoint that will never be pinched further.
func (v *Vertex) IsDeadEnd() bool { return v.isDeadEnd }

// BlackDegree returns the number of black edges whose From is this vertex.
func (v *Vertex) BlackDegree() int { return len(v.blackEdges) }

// GreyDegree returns the number of grey edges incident to this vertex.
func (v *Vertex) GreyDegree() int { return len(v.greyEdges) }

// BlackEdges returns the vertex's outgoing black edges in unspecified order.
func (v *Vertex) BlackEdges() []*Edge {
	out := make([]*Edge, 0, len(v.blackEdges))
	for e := range v.blackEdges {
		out = append(out, e)
	}
	return out
}

// GreyEdges returns the vertex's grey neighbors in unspecified order.
func (v *Vertex) GreyEdges() []*Vertex {
	out := make([]*Vertex, 0, len(v.greyEdges))
	for w := range v.greyEdges {
		out = append(out, w)
	}
	return out
}

// HasGreyEdge reports whether v and w are grey-adjacent.
func (v *Vertex) HasGreyEdge(w *Vertex) bool {
	_, ok := v.greyEdges[w]
	return ok
}

// Edge is a directed black (pinch) edge carrying one Piece, paired with its
// reverse twin REdge walking the same physical interval the other way.
//
// Invariants (spec §4.1): REdge.REdge == e; REdge.Piece == e.Piece.Mirror();
// REdge.From == e.To; REdge.To == e.From.
type Edge struct {
	From  *Vertex
	To    *Vertex
	Piece piece.Piece
	REdge *Edge
}

// Graph is the pinch graph: a vertex set plus the black/grey edges between
// them, indexed per-contig for O(log n) containing-edge lookups.
type Graph struct {
	mu           sync.RWMutex
	vertices     map[int]*Vertex
	nextVertexID int
	contigSpans  map[name.Name][]span
}

// span is one entry of a contig's sorted, gap-free partition into black
// edges, used by GetContainingBlackEdge's binary search.
type span struct {
	start int32
	end   int32
	edge  *Edge
}

// NewGraph returns an empty pinch graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:    make(map[int]*Vertex),
		contigSpans: make(map[name.Name][]span),
	}
}

// addVertex allocates and registers a fresh vertex. Callers must hold mu.
func (g *Graph) addVertex(isEnd, isDeadEnd bool) *Vertex {
	v := &Vertex{
		id:         g.nextVertexID,
		blackEdges: make(map[*Edge]struct{}),
		greyEdges:  make(map[*Vertex]struct{}),
		isEnd:      isEnd,
		isDeadEnd:  isDeadEnd,
	}
	g.nextVertexID++
	g.vertices[v.id] = v
	return v
}

// AddVertex allocates and registers a fresh, edge-less vertex.
func (g *Graph) AddVertex(isEnd, isDeadEnd bool) *Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addVertex(isEnd, isDeadEnd)
}

// VertexCount returns the number of vertices currently in the graph.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// addEdgePair links from->to with a black edge carrying p, together with its
// mirrored to->from reverse. Callers must hold mu.
func (g *Graph) addEdgePair(from, to *Vertex, p piece.Piece) (*Edge, *Edge) {
	e := &Edge{From: from, To: to, Piece: p}
	r := &Edge{From: to, To: from, Piece: p.Mirror()}
	e.REdge = r
	r.REdge = e
	from.blackEdges[e] = struct{}{}
	to.blackEdges[r] = struct{}{}
	return e, r
}

// AddContig registers a brand-new contig of the given length as a single
// black edge between two fresh end vertices, returning the 5' and 3'
// vertices. leftDeadEnd/rightDeadEnd mark whichever ends are free telomeres.
func (g *Graph) AddContig(contig name.Name, length int32, leftDeadEnd, rightDeadEnd bool) (from, to *Vertex) {
	if length <= 0 {
		panic("pinchgraph: contig length must be positive")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	from = g.addVertex(true, leftDeadEnd)
	to = g.addVertex(true, rightDeadEnd)
	p := piece.New(contig, 0, length-1)
	edge, _ := g.addEdgePair(from, to, p)
	g.insertSpan(contig, span{start: 0, end: length - 1, edge: edge})
	return from, to
}

// ConnectVertices inserts a symmetric grey (adjacency) edge between v and w.
// A grey self-loop is rejected by the caller's own convention; this method
// performs no such check, mirroring the teacher's AddEdge permissiveness.
func (g *Graph) ConnectVertices(v, w *Vertex) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v.greyEdges[w] = struct{}{}
	w.greyEdges[v] = struct{}{}
}

// DisconnectVertices removes the grey edge between v and w, if present.
func (g *Graph) DisconnectVertices(v, w *Vertex) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(v.greyEdges, w)
	delete(w.greyEdges, v)
}
