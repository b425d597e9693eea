package cactus_test

import (
	"strconv"
	"testing"

	"github.com/comparative-genomics/cactusgraph/cactus"
	"github.com/comparative-genomics/cactusgraph/log"
	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/stretchr/testify/suite"
)

type NewickSuite struct {
	suite.Suite
	src name.Source
	f   *cactus.Flower
}

func (s *NewickSuite) SetupTest() {
	s.src = name.NewCounterSource(1)
	s.f = cactus.NewFlower(s.src, nil, log.Nop())
}

func TestNewickSuite(t *testing.T) {
	suite.Run(t, new(NewickSuite))
}

// TestNewickSkipUnaryCollapsesChain covers spec §8 scenario S6: the segment
// tree root -> a -> b -> leaf, all unary, renders as just the leaf's own
// name when includeUnaryEvents is false.
func (s *NewickSuite) TestNewickSkipUnaryCollapsesChain() {
	b := s.f.ConstructBlock(10)
	ev := s.f.ConstructEvent(s.f.RootEvent(), "genomeA", 1)

	root := s.f.ConstructSegment(b, ev)
	a := s.f.ConstructSegment(b, ev)
	bb := s.f.ConstructSegment(b, ev)
	leaf := s.f.ConstructSegment(b, ev)
	cactus.SetSegmentParent(a, root)
	cactus.SetSegmentParent(bb, a)
	cactus.SetSegmentParent(leaf, bb)
	b.SetRootSegment(root)

	s.Require().Equal(formatLeaf(leaf)+";", b.Newick(false, false))
}

// TestNewickIncludeUnaryEventsRendersNestedParens covers the same tree with
// includeUnaryEvents true: every internal node gets its own set of parens
// even though each has exactly one child.
func (s *NewickSuite) TestNewickIncludeUnaryEventsRendersNestedParens() {
	b := s.f.ConstructBlock(10)
	ev := s.f.ConstructEvent(s.f.RootEvent(), "genomeA", 1)

	root := s.f.ConstructSegment(b, ev)
	a := s.f.ConstructSegment(b, ev)
	bb := s.f.ConstructSegment(b, ev)
	leaf := s.f.ConstructSegment(b, ev)
	cactus.SetSegmentParent(a, root)
	cactus.SetSegmentParent(bb, a)
	cactus.SetSegmentParent(leaf, bb)
	b.SetRootSegment(root)

	want := "(((" + formatLeaf(leaf) + "))" + ");"
	s.Require().Equal(want, b.Newick(false, true))
}

// TestNewickIncludeInternalNamesAppendsSegmentName covers internal-name
// rendering on a branching tree (two children, so no unary collapse to
// interact with).
func (s *NewickSuite) TestNewickIncludeInternalNamesAppendsSegmentName() {
	b := s.f.ConstructBlock(10)
	ev := s.f.ConstructEvent(s.f.RootEvent(), "genomeA", 1)

	root := s.f.ConstructSegment(b, ev)
	left := s.f.ConstructSegment(b, ev)
	right := s.f.ConstructSegment(b, ev)
	cactus.SetSegmentParent(left, root)
	cactus.SetSegmentParent(right, root)
	b.SetRootSegment(root)

	got := b.Newick(true, true)
	s.Require().Contains(got, formatLeaf(root))
	s.Require().Contains(got, formatLeaf(left))
	s.Require().Contains(got, formatLeaf(right))
}

// TestNewickEmptyWithoutRootSegment covers the no-root-instance case.
func (s *NewickSuite) TestNewickEmptyWithoutRootSegment() {
	b := s.f.ConstructBlock(10)
	s.Require().Equal("", b.Newick(false, false))
}

func formatLeaf(seg cactus.Segment) string {
	return strconv.FormatUint(uint64(seg.Name()), 10)
}
