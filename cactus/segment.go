package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// Segment is a per-genome instance of a Block: (flower, name, orientation).
type Segment struct {
	flower      *Flower
	name        name.Name
	orientation bool
}

// Name returns the Segment's identifier.
func (s Segment) Name() name.Name { return s.name }

// Orientation reports which companion view this handle presents.
func (s Segment) Orientation() bool { return s.orientation }

// Reverse returns the Segment's companion view.
func (s Segment) Reverse() Segment {
	return Segment{flower: s.flower, name: s.name, orientation: !s.orientation}
}

func (f *Flower) segmentData(n name.Name) (*segmentData, bool) {
	d, ok := f.segments[n]
	return d, ok
}

// Block returns the Segment's owning Block.
func (s Segment) Block() Block {
	d, _ := s.flower.segmentData(s.name)
	return Block{flower: s.flower, name: d.block, orientation: s.orientation}
}

// Event returns the genome Event this Segment instantiates the block on.
func (s Segment) Event() Event {
	d, _ := s.flower.segmentData(s.name)
	return Event{flower: s.flower, name: d.event}
}

// FiveCap returns the Segment's 5' Cap, orientation-adjusted like Block's
// FiveEnd/ThreeEnd pair.
func (s Segment) FiveCap() Cap {
	d, _ := s.flower.segmentData(s.name)
	if s.orientation {
		return Cap{flower: s.flower, name: d.fiveCap, orientation: true}
	}
	return Cap{flower: s.flower, name: d.threeCap, orientation: false}
}

// ThreeCap returns the Segment's 3' Cap, orientation-adjusted.
func (s Segment) ThreeCap() Cap {
	d, _ := s.flower.segmentData(s.name)
	if s.orientation {
		return Cap{flower: s.flower, name: d.threeCap, orientation: true}
	}
	return Cap{flower: s.flower, name: d.fiveCap, orientation: false}
}

// Parent returns the Segment's phylogenetic parent, if any.
func (s Segment) Parent() (Segment, bool) {
	d, _ := s.flower.segmentData(s.name)
	if !d.hasParent {
		return Segment{}, false
	}
	return Segment{flower: s.flower, name: d.parent, orientation: s.orientation}, true
}

// Children returns the Segment's phylogenetic children.
func (s Segment) Children() []Segment {
	d, _ := s.flower.segmentData(s.name)
	out := make([]Segment, 0, len(d.children))
	for n := range d.children {
		out = append(out, Segment{flower: s.flower, name: n, orientation: s.orientation})
	}
	return out
}

// ConstructSegment adds a new per-genome instance of b on event, creating its
// two Caps and registering them on the block's Ends.
func (f *Flower) ConstructSegment(b Block, event Event) Segment {
	f.muEntities.Lock()
	defer f.muEntities.Unlock()
	return f.constructSegment(b, event)
}

func (f *Flower) constructSegment(b Block, event Event) Segment {
	n := f.source.Next()
	fiveCap := f.source.Next()
	threeCap := f.source.Next()

	bd := f.blocks[b.name]
	bd.segments[n] = struct{}{}

	fiveEnd := b.FiveEnd()
	threeEnd := b.ThreeEnd()

	f.caps[fiveCap] = &capData{name: fiveCap, end: fiveEnd.name, event: event.name, segment: n, hasSegment: true, children: make(map[name.Name]struct{})}
	f.caps[threeCap] = &capData{name: threeCap, end: threeEnd.name, event: event.name, segment: n, hasSegment: true, children: make(map[name.Name]struct{})}
	fiveEnd.addCap(fiveCap)
	threeEnd.addCap(threeCap)

	f.segments[n] = &segmentData{
		name:     n,
		block:    b.name,
		event:    event.name,
		fiveCap:  fiveCap,
		threeCap: threeCap,
		children: make(map[name.Name]struct{}),
	}
	return Segment{flower: f, name: n, orientation: true}
}

// SetSegmentParent records the phylogenetic parent/child relation between
// two segment instances of (possibly different) blocks. Exported for the
// reference builder, which hangs a newly materialized reference segment off
// a block's existing root instance (spec §4.3.6).
func SetSegmentParent(child, parent Segment) { setSegmentParent(child, parent) }

// setSegmentParent records the phylogenetic parent/child relation between two
// segment instances of (possibly different) blocks.
func setSegmentParent(child, parent Segment) {
	cd := child.flower.segments[child.name]
	cd.hasParent = true
	cd.parent = parent.name
	pd := parent.flower.segments[parent.name]
	pd.children[child.name] = struct{}{}
}
