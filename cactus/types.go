package cactus

import (
	"sync"

	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/rs/zerolog"
)

// blockData is the single arena-owned record backing both orientations of a
// Block. The positive orientation is the record's own name; the reverse
// companion is the same record viewed with orientation=false.
type blockData struct {
	name     name.Name
	length   int32
	segments map[name.Name]struct{} // positive-orientation segment names
	fiveEnd  name.Name               // positive-orientation end name, side=true
	threeEnd name.Name               // positive-orientation end name, side=false
	rootSeg  name.Name
	hasRoot  bool
}

// endData backs both orientations of an End (block-end or stub).
type endData struct {
	name       name.Name
	hasBlock   bool
	block      name.Name
	side       bool // true = 5', false = 3'; meaningless if !hasBlock
	isAttached bool // stub only: attached vs free
	hasGroup   bool
	group      name.Name
	caps       map[name.Name]struct{}
}

// segmentData backs both orientations of a Segment.
type segmentData struct {
	name      name.Name
	block     name.Name
	event     name.Name
	fiveCap   name.Name
	threeCap  name.Name
	hasParent bool
	parent    name.Name
	children  map[name.Name]struct{}
}

// capData backs both orientations of a Cap.
type capData struct {
	name         name.Name
	end          name.Name
	event        name.Name
	segment      name.Name
	hasSegment   bool
	hasSeq       bool
	seqPos       int32
	strand       bool
	hasAdjacency bool
	adjName      name.Name
	adjPositive  bool // orientation of the adjacent cap as seen from this cap's positive view
	hasParent    bool
	parent       name.Name
	children     map[name.Name]struct{}
}

// Link is a pair of ends (3' of one block, 5' of the next) within the same
// Group, one entry of a Chain.
type Link struct {
	ThreeEnd name.Name
	FiveEnd  name.Name
}

type chainData struct {
	name  name.Name
	links []Link
}

type groupData struct {
	name         name.Name
	ends         map[name.Name]struct{}
	isLink       bool
	chain        name.Name
	linkIdx      int
	hasNested    bool
	nestedFlower *Flower
}

// ParentLink identifies the Group in a parent Flower that this Flower
// decomposes, establishing the flower hierarchy.
type ParentLink struct {
	Flower *Flower
	Group  name.Name
}

// Flower is the top-level container of Blocks, Ends, Chains, Groups and an
// EventTree for one nested alignment subproblem.
type Flower struct {
	name   name.Name
	source name.Source
	parent *ParentLink

	muEntities sync.RWMutex
	blocks     map[name.Name]*blockData
	ends       map[name.Name]*endData
	segments   map[name.Name]*segmentData
	caps       map[name.Name]*capData

	muTopo sync.RWMutex
	chains map[name.Name]*chainData
	groups map[name.Name]*groupData
	events map[name.Name]*eventData

	rootEvent name.Name

	builtBlocks bool
	builtTrees  bool

	log zerolog.Logger
}

// NewFlower constructs an empty Flower issuing Names from src. parent is nil
// for the root flower; otherwise it records which Group in which Flower this
// one decomposes.
func NewFlower(src name.Source, parent *ParentLink, logger zerolog.Logger) *Flower {
	f := &Flower{
		name:     src.Next(),
		source:   src,
		parent:   parent,
		blocks:   make(map[name.Name]*blockData),
		ends:     make(map[name.Name]*endData),
		segments: make(map[name.Name]*segmentData),
		caps:     make(map[name.Name]*capData),
		chains:   make(map[name.Name]*chainData),
		groups:   make(map[name.Name]*groupData),
		events:   make(map[name.Name]*eventData),
		log:      logger,
	}
	root := src.Next()
	f.events[root] = &eventData{name: root, header: "root", children: make(map[name.Name]struct{})}
	f.rootEvent = root
	return f
}

// Name returns the flower's identifier.
func (f *Flower) Name() name.Name { return f.name }

// Parent returns the parent-group link, if this flower is not the root.
func (f *Flower) Parent() (*ParentLink, bool) {
	if f.parent == nil {
		return nil, false
	}
	return f.parent, true
}

// BuiltBlocks reports whether this flower's block set is considered final.
func (f *Flower) BuiltBlocks() bool { return f.builtBlocks }

// SetBuiltBlocks marks the flower's block set as final.
func (f *Flower) SetBuiltBlocks(v bool) { f.builtBlocks = v }

// BuiltTrees reports whether this flower's segment/cap trees are considered final.
func (f *Flower) BuiltTrees() bool { return f.builtTrees }

// SetBuiltTrees marks the flower's segment/cap trees as final.
func (f *Flower) SetBuiltTrees(v bool) { f.builtTrees = v }
