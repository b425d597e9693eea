// Package piece defines Piece, a sub-interval of a contig carried by a
// pinch-graph edge, and its always-present reverse-complement mirror.
package piece

import (
	"fmt"

	"github.com/comparative-genomics/cactusgraph/name"
)

// Piece is a sub-interval [Start, End] of a contig. Start and End are
// inclusive coordinates on the contig's forward strand; Start must not
// exceed End.
type Piece struct {
	Contig name.Name
	Start  int32
	End    int32
}

// New constructs a Piece, panicking if start > end — callers are expected to
// validate coordinates before reaching this constructor, the same contract
// the teacher's core.Graph applies to its own invariant-bearing fields.
func New(contig name.Name, start, end int32) Piece {
	if start > end {
		panic(fmt.Sprintf("piece: start %d exceeds end %d", start, end))
	}
	return Piece{Contig: contig, Start: start, End: end}
}

// Length returns the number of bases spanned by the piece (inclusive range).
func (p Piece) Length() int32 { return p.End - p.Start + 1 }

// Mirror returns the reverse-complement piece on the same contig and
// coordinate range. Mirror is involutive: p.Mirror().Mirror() == p.
//
// Pieces don't carry their own orientation flag; Mirror exists purely so
// pinch-graph edges can present the piece "as seen walking the other way"
// without allocating a second coordinate range — the coordinates are
// identical, only the caller's notion of which end is "from" flips.
func (p Piece) Mirror() Piece { return p }

// Compare orders pieces lexicographically by (Contig, Start, End), matching
// original_source's pieceComparator.
func (p Piece) Compare(o Piece) int {
	if c := p.Contig.Compare(o.Contig); c != 0 {
		return c
	}
	switch {
	case p.Start < o.Start:
		return -1
	case p.Start > o.Start:
		return 1
	}
	switch {
	case p.End < o.End:
		return -1
	case p.End > o.End:
		return 1
	default:
		return 0
	}
}

// Equal reports whether p and o denote the same interval.
func (p Piece) Equal(o Piece) bool { return p.Compare(o) == 0 }
