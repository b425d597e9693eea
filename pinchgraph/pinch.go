package pinchgraph

import (
	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/comparative-genomics/cactusgraph/piece"
)

// PinchMerge merges the two (equal-length) Pieces into the same run of
// vertex pairs, implementing spec §4.1's "pinch one alignment" for a single
// ungapped match block.
//
// The pieces need not already lie on edge boundaries: PinchMerge first
// splits any black edge straddling p1.Start-1/p1.End or p2.Start-1/p2.End,
// then walks the interior. Pinching a piece against itself is a no-op.
//
// Algorithm: split both ends of both pieces onto edge boundaries, then walk
// forward consuming the longer of the two current overlapping edges at each
// step, splitting it down to match its shorter counterpart, and merging the
// pair of "from" vertices at each step; the final pair of "to" vertices is
// merged once the walk exhausts the block. This reproduces the same final
// quotient graph as a literal column-by-column merge without materializing
// a vertex per base pair.
func (g *Graph) PinchMerge(p1, p2 piece.Piece) error {
	if p1.Length() != p2.Length() {
		return ErrMismatchedLength
	}
	if p1.Length() <= 0 {
		return ErrZeroLengthPiece
	}
	if p1.Equal(p2) {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Step 1: split any edge straddling either endpoint of either piece.
	g.splitBoundary(p1.Contig, p1.Start, Left)
	g.splitBoundary(p1.Contig, p1.End, Right)
	g.splitBoundary(p2.Contig, p2.Start, Left)
	g.splitBoundary(p2.Contig, p2.End, Right)

	length := p1.Length()
	var offset int32
	for offset < length {
		idx1 := g.findSpanIdx(p1.Contig, p1.Start+offset)
		idx2 := g.findSpanIdx(p2.Contig, p2.Start+offset)
		sp1 := g.contigSpans[p1.Contig][idx1]
		sp2 := g.contigSpans[p2.Contig][idx2]

		remaining1 := sp1.end - (p1.Start + offset) + 1
		remaining2 := sp2.end - (p2.Start + offset) + 1
		remaining := length - offset
		step := min3(remaining1, remaining2, remaining)

		if remaining1 > step {
			g.splitEdgeAt(p1.Contig, idx1, p1.Start+offset+step)
			idx1 = g.findSpanIdx(p1.Contig, p1.Start+offset)
			sp1 = g.contigSpans[p1.Contig][idx1]
		}
		if remaining2 > step {
			g.splitEdgeAt(p2.Contig, idx2, p2.Start+offset+step)
			idx2 = g.findSpanIdx(p2.Contig, p2.Start+offset)
			sp2 = g.contigSpans[p2.Contig][idx2]
		}

		g.mergeVertices(sp1.edge.From, sp2.edge.From)

		offset += step
		if offset == length {
			// Final boundary: merge the trailing "to" vertices too, closing
			// off the last pair of edges.
			g.mergeVertices(sp1.edge.To, sp2.edge.To)
		}
	}
	return nil
}

// splitBoundary splits the edge at position (if any) on the given side,
// discarding the returned vertex — used purely for its side effect of
// establishing a clean boundary before the column walk. No-op if position
// lies outside any existing span (callers must have already registered both
// contigs via AddContig before pinching them).
func (g *Graph) splitBoundary(contig name.Name, position int32, side Side) {
	_, _ = g.splitEdgeAtPosition(contig, position, side)
}

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
