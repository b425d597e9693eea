package pinchgraph

import (
	"sort"

	"github.com/comparative-genomics/cactusgraph/name"
)

// insertSpan inserts sp into the contig's sorted, gap-free span list.
// Callers must hold mu and guarantee sp does not overlap any existing span.
func (g *Graph) insertSpan(contig name.Name, sp span) {
	spans := g.contigSpans[contig]
	idx := sort.Search(len(spans), func(i int) bool { return spans[i].start >= sp.start })
	spans = append(spans, span{})
	copy(spans[idx+1:], spans[idx:])
	spans[idx] = sp
	g.contigSpans[contig] = spans
}

// removeSpanAt deletes the span at index idx from the contig's span list.
// Callers must hold mu.
func (g *Graph) removeSpanAt(contig name.Name, idx int) {
	spans := g.contigSpans[contig]
	spans = append(spans[:idx], spans[idx+1:]...)
	g.contigSpans[contig] = spans
}

// findSpanIdx returns the index of the span covering position on contig, or
// -1 if none exists. Callers must hold mu (read or write).
func (g *Graph) findSpanIdx(contig name.Name, position int32) int {
	spans := g.contigSpans[contig]
	i := sort.Search(len(spans), func(i int) bool { return spans[i].end >= position })
	if i < len(spans) && spans[i].start <= position && position <= spans[i].end {
		return i
	}
	return -1
}

// GetContainingBlackEdge returns the black edge whose piece contains
// position on contig, in O(log n) via binary search over the contig's
// sorted span partition. Returns ErrOutOfRange if no such edge exists.
func (g *Graph) GetContainingBlackEdge(contig name.Name, position int32) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx := g.findSpanIdx(contig, position)
	if idx < 0 {
		return nil, ErrOutOfRange
	}
	return g.contigSpans[contig][idx].edge, nil
}
