package pinchgraph_test

import (
	"testing"

	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/comparative-genomics/cactusgraph/piece"
	"github.com/comparative-genomics/cactusgraph/pinchgraph"
	"github.com/stretchr/testify/suite"
)

type PinchSuite struct {
	suite.Suite
	g          *pinchgraph.Graph
	c1, c2, c3 name.Name
}

func (s *PinchSuite) SetupTest() {
	s.g = pinchgraph.NewGraph()
	s.c1, s.c2, s.c3 = name.Name(1), name.Name(2), name.Name(3)
}

func TestPinchSuite(t *testing.T) {
	suite.Run(t, new(PinchSuite))
}

// TestPinchFullContigsCollapsesEndpoints covers the "pinch basic" scenario:
// two whole same-length contigs pinched together collapse down to a single
// pair of shared endpoint vertices.
func (s *PinchSuite) TestPinchFullContigsCollapsesEndpoints() {
	from1, to1 := s.g.AddContig(s.c1, 10, true, true)
	from2, to2 := s.g.AddContig(s.c2, 10, true, true)
	s.Require().Equal(4, s.g.VertexCount())

	p1 := piece.New(s.c1, 0, 9)
	p2 := piece.New(s.c2, 0, 9)
	s.Require().NoError(s.g.PinchMerge(p1, p2))

	s.Require().Equal(2, s.g.VertexCount())
	s.Require().NoError(s.g.CheckPinchGraph())

	e1, err := s.g.GetContainingBlackEdge(s.c1, 5)
	s.Require().NoError(err)
	e2, err := s.g.GetContainingBlackEdge(s.c2, 5)
	s.Require().NoError(err)
	s.Require().Equal(e1.From, e2.From)
	s.Require().Equal(e1.To, e2.To)
	s.Require().NotEqual(from1.ID(), to1.ID())
	_ = from2
	_ = to2
}

// TestPinchSelfIsNoOp covers the round-trip law pinch_merge(p, p, _) is a
// no-op: pinching a piece against itself must not change the vertex count or
// violate any invariant.
func (s *PinchSuite) TestPinchSelfIsNoOp() {
	s.g.AddContig(s.c1, 10, true, true)
	before := s.g.VertexCount()

	p := piece.New(s.c1, 2, 6)
	s.Require().NoError(s.g.PinchMerge(p, p))

	s.Require().Equal(before, s.g.VertexCount())
	s.Require().NoError(s.g.CheckPinchGraph())
}

// TestPinchPartialOverlapSplitsBoundaries covers pinching a sub-range, which
// must split both contigs onto clean boundaries before merging, leaving the
// untouched flanking regions on separate vertices.
func (s *PinchSuite) TestPinchPartialOverlapSplitsBoundaries() {
	from1, to1 := s.g.AddContig(s.c1, 10, true, true)
	from2, to2 := s.g.AddContig(s.c2, 10, true, true)

	p1 := piece.New(s.c1, 2, 5)
	p2 := piece.New(s.c2, 4, 7)
	s.Require().NoError(s.g.PinchMerge(p1, p2))
	s.Require().NoError(s.g.CheckPinchGraph())

	boundEdge, err := s.g.GetContainingBlackEdge(s.c1, 3)
	s.Require().NoError(err)
	other, err := s.g.GetContainingBlackEdge(s.c2, 5)
	s.Require().NoError(err)
	s.Require().Equal(boundEdge.From, other.From)
	s.Require().Equal(boundEdge.To, other.To)

	// The flanking regions remain attached to the original endpoint vertices.
	left1, err := s.g.GetContainingBlackEdge(s.c1, 0)
	s.Require().NoError(err)
	s.Require().Equal(from1, left1.From)

	right2, err := s.g.GetContainingBlackEdge(s.c2, 9)
	s.Require().NoError(err)
	s.Require().Equal(to2, right2.To)

	_ = to1
	_ = from2
}

// TestPinchMismatchedLength rejects pieces of unequal length.
func (s *PinchSuite) TestPinchMismatchedLength() {
	s.g.AddContig(s.c1, 10, true, true)
	s.g.AddContig(s.c2, 10, true, true)

	p1 := piece.New(s.c1, 0, 4)
	p2 := piece.New(s.c2, 0, 5)
	err := s.g.PinchMerge(p1, p2)
	s.Require().ErrorIs(err, pinchgraph.ErrMismatchedLength)
}

// TestPinchChainsThreeContigsThroughSharedVertex covers grey-edge adjacency
// surviving across a chain of two pinch operations against a common contig.
func (s *PinchSuite) TestPinchChainsThreeContigsThroughSharedVertex() {
	s.g.AddContig(s.c1, 6, true, true)
	s.g.AddContig(s.c2, 6, true, true)
	s.g.AddContig(s.c3, 6, true, true)

	s.Require().NoError(s.g.PinchMerge(piece.New(s.c1, 0, 5), piece.New(s.c2, 0, 5)))
	s.Require().NoError(s.g.PinchMerge(piece.New(s.c2, 0, 5), piece.New(s.c3, 0, 5)))
	s.Require().NoError(s.g.CheckPinchGraph())

	e1, err := s.g.GetContainingBlackEdge(s.c1, 3)
	s.Require().NoError(err)
	e3, err := s.g.GetContainingBlackEdge(s.c3, 3)
	s.Require().NoError(err)
	s.Require().Equal(e1.From, e3.From)
	s.Require().Equal(e1.To, e3.To)
}
