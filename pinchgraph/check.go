package pinchgraph

import "fmt"

// CheckPinchGraph traverses every edge and asserts the invariants from spec
// §4.1: rEdge involution, symmetric black-edge storage, grey-edge symmetry,
// and non-zero piece length. Returns the first violation found, wrapped in
// ErrInvariantViolation.
func (g *Graph) CheckPinchGraph() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		for e := range v.blackEdges {
			if e.From != v {
				return fmt.Errorf("%w: edge stored under vertex %d but From is %d", ErrInvariantViolation, v.id, e.From.id)
			}
			if e.REdge.REdge != e {
				return fmt.Errorf("%w: edge %d->%d rEdge involution broken", ErrInvariantViolation, e.From.id, e.To.id)
			}
			if !e.REdge.Piece.Equal(e.Piece.Mirror()) {
				return fmt.Errorf("%w: edge %d->%d rEdge piece is not the mirror", ErrInvariantViolation, e.From.id, e.To.id)
			}
			if e.REdge.From != e.To || e.REdge.To != e.From {
				return fmt.Errorf("%w: edge %d->%d rEdge endpoints inconsistent", ErrInvariantViolation, e.From.id, e.To.id)
			}
			if _, ok := e.To.blackEdges[e.REdge]; !ok {
				return fmt.Errorf("%w: reverse of edge %d->%d missing from To's black edges", ErrInvariantViolation, e.From.id, e.To.id)
			}
			if e.Piece.Length() <= 0 {
				return fmt.Errorf("%w: edge %d->%d carries a zero-length piece", ErrInvariantViolation, e.From.id, e.To.id)
			}
		}
		for w := range v.greyEdges {
			if !w.HasGreyEdge(v) {
				return fmt.Errorf("%w: grey edge %d->%d is not symmetric", ErrInvariantViolation, v.id, w.id)
			}
		}
	}
	return nil
}

// CheckPinchGraphDegree additionally asserts every vertex's combined
// black-edge degree (in + out) does not exceed maxDegree.
func (g *Graph) CheckPinchGraphDegree(maxDegree int) error {
	if err := g.CheckPinchGraph(); err != nil {
		return err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	degree := make(map[int]int, len(g.vertices))
	for _, v := range g.vertices {
		for e := range v.blackEdges {
			degree[e.From.id]++
			degree[e.To.id]++
		}
	}
	for id, d := range degree {
		if d > maxDegree {
			return fmt.Errorf("%w: vertex %d has black degree %d exceeding max %d", ErrInvariantViolation, id, d, maxDegree)
		}
	}
	return nil
}
