package reference_test

import (
	"testing"

	"github.com/comparative-genomics/cactusgraph/cactus"
	"github.com/comparative-genomics/cactusgraph/config"
	"github.com/comparative-genomics/cactusgraph/log"
	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/comparative-genomics/cactusgraph/reference"
	"github.com/stretchr/testify/suite"
)

const refHeader = "reference"

type ReferenceSuite struct {
	suite.Suite
	src name.Source
}

func (s *ReferenceSuite) SetupTest() {
	s.src = name.NewCounterSource(1)
}

func TestReferenceSuite(t *testing.T) {
	suite.Run(t, new(ReferenceSuite))
}

// buildTrivialChainFlower assembles scenario S1: two genomes, each with one
// attached stub pair bracketing a single shared block.
func (s *ReferenceSuite) buildTrivialChainFlower() *cactus.Flower {
	f := cactus.NewFlower(s.src, nil, log.Nop())
	root := f.RootEvent()
	evA := f.ConstructEvent(root, "genomeA", 1)
	evB := f.ConstructEvent(root, "genomeB", 1)

	block := f.ConstructBlock(100)
	segA := f.ConstructSegment(block, evA)
	segB := f.ConstructSegment(block, evB)

	leftStub := f.ConstructStubEnd(true)
	rightStub := f.ConstructStubEnd(true)

	capLeftA := f.ConstructCap(leftStub, evA)
	capRightA := f.ConstructCap(rightStub, evA)
	s.Require().NoError(cactus.MakeAdjacent(capLeftA, segA.FiveCap()))
	s.Require().NoError(cactus.MakeAdjacent(segA.ThreeCap(), capRightA))

	capLeftB := f.ConstructCap(leftStub, evB)
	capRightB := f.ConstructCap(rightStub, evB)
	s.Require().NoError(cactus.MakeAdjacent(capLeftB, segB.FiveCap()))
	s.Require().NoError(cactus.MakeAdjacent(segB.ThreeCap(), capRightB))

	f.ConstructTangleGroup([]cactus.End{leftStub, block.FiveEnd()}, nil)
	f.ConstructTangleGroup([]cactus.End{block.ThreeEnd(), rightStub}, nil)

	return f
}

// TestBuildReferenceTrivialChain covers spec §8 scenario S1: once
// BuildReference completes, at least one segment lies on the reference event
// and every such segment has both caps adjacent to some other cap.
func (s *ReferenceSuite) TestBuildReferenceTrivialChain() {
	f := s.buildTrivialChainFlower()

	err := reference.BuildReference(f, reference.Options{
		Header: refHeader,
		Config: config.DefaultReferenceConfig(),
	})
	s.Require().NoError(err)

	refEvent, ok := f.FindEventByHeader(refHeader)
	s.Require().True(ok)
	s.Require().Equal(refHeader, refEvent.Header())

	var seenRefCaps int
	for _, b := range f.AllBlocks() {
		for _, seg := range b.Segments() {
			if seg.Event().Header() == refHeader {
				seenRefCaps++
				adj5, ok5 := seg.FiveCap().Adjacency()
				adj3, ok3 := seg.ThreeCap().Adjacency()
				s.Require().True(ok5)
				s.Require().True(ok3)
				s.Require().NotEqual(adj5.Name(), seg.FiveCap().Name())
				s.Require().NotEqual(adj3.Name(), seg.ThreeCap().Name())
			}
		}
	}
	s.Require().GreaterOrEqual(seenRefCaps, 1)
}

// TestBuildReferenceFromParent covers spec §8 scenario S4: a child flower
// importing stubs from a parent that already has an established reference
// adjacency builds without error, reuses the parent's reference event Name,
// and holds at least two attached stubs afterwards.
func (s *ReferenceSuite) TestBuildReferenceFromParent() {
	parent := s.buildTrivialChainFlower()
	s.Require().NoError(reference.BuildReference(parent, reference.Options{
		Header: refHeader,
		Config: config.DefaultReferenceConfig(),
	}))

	// Identify the parent's tangle group (left stub + block five-end) to
	// decompose into a child flower.
	var parentGroup cactus.Group
	for _, g := range parent.AllGroups() {
		if !g.IsLink() {
			parentGroup = g
			break
		}
	}
	s.Require().NotZero(parentGroup.Name())

	child := cactus.NewFlower(s.src, &cactus.ParentLink{Flower: parent, Group: parentGroup.Name()}, log.Nop())
	parentGroup.SetNestedFlower(child)

	tangleBlock := child.ConstructBlock(30)
	evC := child.ConstructEvent(child.RootEvent(), "genomeC", 1)
	segC := child.ConstructSegment(tangleBlock, evC)
	_ = segC

	err := reference.BuildReference(child, reference.Options{
		Header: refHeader,
		Config: config.DefaultReferenceConfig(),
	})
	s.Require().NoError(err)

	childRefEvent, ok := child.FindEventByHeader(refHeader)
	s.Require().True(ok)

	parentRefEvent, ok := parent.FindEventByHeader(refHeader)
	s.Require().True(ok)
	s.Require().Equal(parentRefEvent.Name(), childRefEvent.Name())

	s.Require().GreaterOrEqual(child.AttachedStubCount(), 2)
}
