package pinchgraph_test

import (
	"testing"

	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/comparative-genomics/cactusgraph/pinchgraph"
	"github.com/stretchr/testify/suite"
)

type MutateSuite struct {
	suite.Suite
	g      *pinchgraph.Graph
	contig name.Name
}

func (s *MutateSuite) SetupTest() {
	s.g = pinchgraph.NewGraph()
	s.contig = name.Name(1)
}

func TestMutateSuite(t *testing.T) {
	suite.Run(t, new(MutateSuite))
}

func (s *MutateSuite) TestAddContigCreatesOneSpanningEdge() {
	from, to := s.g.AddContig(s.contig, 10, true, true)
	s.Require().NotEqual(from.ID(), to.ID())
	s.Require().Equal(1, from.BlackDegree())
	s.Require().True(from.IsDeadEnd())
	s.Require().True(to.IsDeadEnd())

	edge, err := s.g.GetContainingBlackEdge(s.contig, 0)
	s.Require().NoError(err)
	s.Require().Equal(from, edge.From)
	s.Require().Equal(to, edge.To)
	s.Require().Equal(int32(10), edge.Piece.Length())
}

func (s *MutateSuite) TestSplitEdgeAtInteriorPosition() {
	from, to := s.g.AddContig(s.contig, 10, false, false)

	w, err := s.g.SplitEdge(s.contig, 4, pinchgraph.Right)
	s.Require().NoError(err)
	s.Require().NotEqual(from.ID(), w.ID())
	s.Require().NotEqual(to.ID(), w.ID())

	left, err := s.g.GetContainingBlackEdge(s.contig, 0)
	s.Require().NoError(err)
	s.Require().Equal(from, left.From)
	s.Require().Equal(w, left.To)
	s.Require().Equal(int32(5), left.Piece.Length())

	right, err := s.g.GetContainingBlackEdge(s.contig, 9)
	s.Require().NoError(err)
	s.Require().Equal(w, right.From)
	s.Require().Equal(to, right.To)
	s.Require().Equal(int32(5), right.Piece.Length())
}

func (s *MutateSuite) TestSplitEdgeOnExistingBoundaryIsNoOp() {
	from, to := s.g.AddContig(s.contig, 10, false, false)
	before := s.g.VertexCount()

	v, err := s.g.SplitEdge(s.contig, 0, pinchgraph.Left)
	s.Require().NoError(err)
	s.Require().Equal(from, v)

	w, err := s.g.SplitEdge(s.contig, 9, pinchgraph.Right)
	s.Require().NoError(err)
	s.Require().Equal(to, w)

	s.Require().Equal(before, s.g.VertexCount())
}

func (s *MutateSuite) TestSplitEdgeOutOfRange() {
	s.g.AddContig(s.contig, 10, false, false)
	_, err := s.g.SplitEdge(s.contig, 20, pinchgraph.Right)
	s.Require().ErrorIs(err, pinchgraph.ErrOutOfRange)
}

func (s *MutateSuite) TestMergeVerticesIsIdempotentOnSelf() {
	from, _ := s.g.AddContig(s.contig, 10, false, false)
	merged := s.g.MergeVertices(from, from)
	s.Require().Equal(from, merged)
	s.Require().NoError(s.g.CheckPinchGraph())
}

func (s *MutateSuite) TestMergeVerticesRelocatesBlackAndGreyEdges() {
	contig2 := name.Name(2)
	from1, to1 := s.g.AddContig(s.contig, 5, true, true)
	from2, to2 := s.g.AddContig(contig2, 5, true, true)

	other := s.g.AddVertex(true, true)
	s.g.ConnectVertices(to1, other)

	survivor := s.g.MergeVertices(to1, to2)
	s.Require().Equal(to2, survivor)

	s.Require().True(survivor.HasGreyEdge(other))
	s.Require().True(other.HasGreyEdge(survivor))

	edge, err := s.g.GetContainingBlackEdge(s.contig, 4)
	s.Require().NoError(err)
	s.Require().Equal(from1, edge.From)
	s.Require().Equal(survivor, edge.To)

	edge2, err := s.g.GetContainingBlackEdge(contig2, 4)
	s.Require().NoError(err)
	s.Require().Equal(from2, edge2.From)
	s.Require().Equal(survivor, edge2.To)

	s.Require().NoError(s.g.CheckPinchGraph())
}

func (s *MutateSuite) TestRemoveVertexRequiresEmptiness() {
	from, _ := s.g.AddContig(s.contig, 5, false, false)
	err := s.g.RemoveVertex(from)
	s.Require().ErrorIs(err, pinchgraph.ErrVertexNotEmpty)

	loose := s.g.AddVertex(false, false)
	s.Require().NoError(s.g.RemoveVertex(loose))
}
