package reference

import (
	"fmt"

	"github.com/comparative-genomics/cactusgraph/cactus"
	"github.com/comparative-genomics/cactusgraph/graphutil"
	"github.com/comparative-genomics/cactusgraph/name"
)

// stubEdgeWeight is large enough that GreedyMatch under Max weighting
// prefers a forced stub edge over any observed adjacency (CompleteClique only
// backfills missing pairs, so the stub edge keeps this weight), without
// resorting to a separate "forced" bit threaded through graphutil.Edge.
const stubEdgeWeight = 1e12

// ImportStubs copies every End in child's parent Group not already present
// in child, per spec §4.3.3. Returns the newly-created Ends (not ones
// already present, which are left untouched). A root flower (no parent)
// returns an empty slice.
func ImportStubs(child *cactus.Flower) ([]cactus.End, error) {
	parentLink, ok := child.Parent()
	if !ok {
		return nil, nil
	}
	parentGroup, ok := parentLink.Flower.GetGroup(parentLink.Group)
	if !ok {
		return nil, fmt.Errorf("%w: parent group %v", ErrMissingEntity, parentLink.Group)
	}

	var imported []cactus.End
	for _, pe := range parentGroup.Ends() {
		if e, created := child.ImportEnd(pe.Name(), true); created {
			imported = append(imported, e)
		}
	}
	return imported, nil
}

// ChainEdges builds one edge per chain (spec §4.3.4): non-trivial chains
// connect the outward-facing end of each chain-terminus block, weighted by
// the average length of the chain's blocks; trivial (un-chained, both ends
// tangle) blocks connect their own two ends, weighted by block length.
// Only edges whose both endpoints are mapped nodes are returned — an
// unmapped terminus indicates a malformed chain (a terminus sitting in a
// link group) and is silently skipped, matching spec's "link-group ends are
// excluded" node-mapping rule.
func ChainEdges(f *cactus.Flower, nm *NodeMap) ([]graphutil.Edge, error) {
	var edges []graphutil.Edge
	chained := make(map[name.Name]bool)

	for _, c := range f.AllChains() {
		links := c.Links()
		if len(links) == 0 {
			continue
		}
		first, last := links[0], links[len(links)-1]

		threeEnd, ok := f.GetEnd(first.ThreeEnd)
		if !ok {
			return nil, fmt.Errorf("%w: chain terminus end %v", ErrMissingEntity, first.ThreeEnd)
		}
		blockA, ok := threeEnd.Block()
		if !ok {
			return nil, fmt.Errorf("%w: chain terminus end %v has no block", ErrMissingEntity, first.ThreeEnd)
		}

		fiveEnd, ok := f.GetEnd(last.FiveEnd)
		if !ok {
			return nil, fmt.Errorf("%w: chain terminus end %v", ErrMissingEntity, last.FiveEnd)
		}
		blockZ, ok := fiveEnd.Block()
		if !ok {
			return nil, fmt.Errorf("%w: chain terminus end %v has no block", ErrMissingEntity, last.FiveEnd)
		}

		outwardA, outwardZ := blockA.FiveEnd(), blockZ.ThreeEnd()
		nodeA, okA := nm.NodeOf(outwardA)
		nodeZ, okZ := nm.NodeOf(outwardZ)
		markChainBlocks(f, links, chained)
		if !okA || !okZ {
			continue
		}
		edges = append(edges, graphutil.NewEdge(nodeA, nodeZ, averageChainBlockLength(f, links)))
	}

	for _, b := range f.AllBlocks() {
		if chained[b.Name()] {
			continue
		}
		if _, inChain, err := b.Chain(); err != nil {
			return nil, err
		} else if inChain {
			continue
		}
		five, three := b.FiveEnd(), b.ThreeEnd()
		nFive, okFive := nm.NodeOf(five)
		nThree, okThree := nm.NodeOf(three)
		if !okFive || !okThree {
			continue
		}
		edges = append(edges, graphutil.NewEdge(nFive, nThree, float64(b.Length())))
	}
	return edges, nil
}

func markChainBlocks(f *cactus.Flower, links []cactus.Link, chained map[name.Name]bool) {
	for _, l := range links {
		if e, ok := f.GetEnd(l.ThreeEnd); ok {
			if b, ok := e.Block(); ok {
				chained[b.Name()] = true
			}
		}
		if e, ok := f.GetEnd(l.FiveEnd); ok {
			if b, ok := e.Block(); ok {
				chained[b.Name()] = true
			}
		}
	}
}

func averageChainBlockLength(f *cactus.Flower, links []cactus.Link) float64 {
	seen := make(map[name.Name]bool)
	var total float64
	var count int
	consider := func(n name.Name) {
		e, ok := f.GetEnd(n)
		if !ok {
			return
		}
		b, ok := e.Block()
		if !ok || seen[b.Name()] {
			return
		}
		seen[b.Name()] = true
		total += float64(b.Length())
		count++
	}
	for _, l := range links {
		consider(l.ThreeEnd)
		consider(l.FiveEnd)
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// StubEdges walks each newly-imported stub End to its parent counterpart,
// reads the parent's reference-event cap adjacency, and maps the adjacent
// end back into this flower's node space (spec §4.3.4 "Stub edges").
func StubEdges(f *cactus.Flower, nm *NodeMap, imported []cactus.End, refHeader string) ([]graphutil.Edge, error) {
	parentLink, hasParent := f.Parent()
	if !hasParent {
		return nil, nil
	}

	var edges []graphutil.Edge
	seen := make(map[name.Name]bool)
	for _, e := range imported {
		if seen[e.Name()] {
			continue
		}
		parentEnd, ok := parentLink.Flower.GetEnd(e.Name())
		if !ok {
			return nil, fmt.Errorf("%w: parent end %v", ErrMissingEntity, e.Name())
		}
		refCap, ok := referenceCapOn(parentEnd, refHeader)
		if !ok {
			continue
		}
		adjCap, ok := refCap.Adjacency()
		if !ok {
			continue
		}
		otherParentEnd := adjCap.End()
		if otherParentEnd.Name() == e.Name() {
			continue
		}
		otherChildEnd, ok := f.GetEnd(otherParentEnd.Name())
		if !ok {
			continue
		}
		nodeA, okA := nm.NodeOf(e)
		nodeB, okB := nm.NodeOf(otherChildEnd)
		if !okA || !okB {
			continue
		}
		edges = append(edges, graphutil.NewEdge(nodeA, nodeB, stubEdgeWeight))
		seen[e.Name()] = true
		seen[otherChildEnd.Name()] = true
	}
	return edges, nil
}

func referenceCapOn(e cactus.End, refHeader string) (cactus.Cap, bool) {
	for _, c := range e.Caps() {
		if c.Event().Header() == refHeader {
			return c, true
		}
	}
	return cactus.Cap{}, false
}

// ObservedAdjacencyEdges traces segment adjacencies starting from each cap
// on every active End whose strand-canonical view (the cap reversed when it
// lies on the negative strand) sits on an End with Side() true; other caps
// start no trace. Per spec §4.3.4's
// "Tracing adjacencies" algorithm:
// follow adjacency -> other-segment-cap repeatedly until another active end
// is reached (emit an edge) or a free stub is reached (no edge); a path that
// revisits its own starting end is dropped. Duplicate observations between
// the same pair of ends collapse into one edge whose weight is the
// observation count.
func ObservedAdjacencyEdges(nm *NodeMap, active *graphutil.NodeSet) *graphutil.EdgeSet {
	counts := make(map[[2]int]int)
	for _, id := range active.Sorted() {
		e, ok := nm.End(id)
		if !ok {
			continue
		}
		for _, c := range e.Caps() {
			canon := c
			if _, strand, hasSeq := c.SequencePosition(); hasSeq && !strand {
				canon = c.Reverse()
			}
			if !canon.End().Side() {
				continue
			}
			other, ok := traceAdjacency(c, e, nm, active)
			if !ok || other == id {
				continue
			}
			u, v := id, other
			if u > v {
				u, v = v, u
			}
			counts[[2]int{u, v}]++
		}
	}
	out := graphutil.NewEdgeSet()
	for pair, n := range counts {
		out.Add(graphutil.NewEdge(pair[0], pair[1], float64(n)))
	}
	return out
}

func traceAdjacency(start cactus.Cap, startEnd cactus.End, nm *NodeMap, active *graphutil.NodeSet) (int, bool) {
	visited := map[name.Name]bool{startEnd.Name(): true}
	cur := start
	for {
		adj, ok := cur.Adjacency()
		if !ok {
			return 0, false
		}
		otherEnd := adj.End()
		if id, ok := nm.NodeOf(otherEnd); ok && active.Contains(id) {
			return id, true
		}
		if otherEnd.IsStub() && !otherEnd.IsAttached() {
			return 0, false
		}
		seg, ok := adj.Segment()
		if !ok {
			return 0, false
		}
		var next cactus.Cap
		if adj.Name() == seg.FiveCap().Name() {
			next = seg.ThreeCap()
		} else {
			next = seg.FiveCap()
		}
		if visited[next.End().Name()] {
			return 0, false
		}
		visited[next.End().Name()] = true
		cur = next
	}
}
