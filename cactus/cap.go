package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// Cap is a per-genome instance of an End: (flower, name, orientation).
type Cap struct {
	flower      *Flower
	name        name.Name
	orientation bool
}

// Name returns the Cap's identifier.
func (c Cap) Name() name.Name { return c.name }

// Orientation reports which companion view this handle presents.
func (c Cap) Orientation() bool { return c.orientation }

// Reverse returns the Cap's companion view.
func (c Cap) Reverse() Cap { return Cap{flower: c.flower, name: c.name, orientation: !c.orientation} }

func (f *Flower) capData(n name.Name) (*capData, bool) {
	d, ok := f.caps[n]
	return d, ok
}

// ConstructCap adds a standalone Cap instance of e on event, not attached to
// any Segment. Used by reference materialization when a stub End needs a
// fresh reference-event Cap with no corresponding per-genome segment (spec
// §4.3.6: "Creating in a stub end ... constructs a fresh one").
func (f *Flower) ConstructCap(e End, event Event) Cap {
	f.muEntities.Lock()
	defer f.muEntities.Unlock()

	n := f.source.Next()
	f.caps[n] = &capData{name: n, end: e.name, event: event.name, children: make(map[name.Name]struct{})}
	e.addCap(n)
	return Cap{flower: f, name: n, orientation: e.orientation}
}

// End returns the Cap's owning End.
func (c Cap) End() End {
	d, _ := c.flower.capData(c.name)
	return End{flower: c.flower, name: d.end, orientation: c.orientation}
}

// Event returns the genome Event this Cap instantiates the end on.
func (c Cap) Event() Event {
	d, _ := c.flower.capData(c.name)
	return Event{flower: c.flower, name: d.event}
}

// Segment returns the Segment this Cap belongs to, if it was constructed via
// ConstructSegment rather than standing alone on a stub end.
func (c Cap) Segment() (Segment, bool) {
	d, ok := c.flower.capData(c.name)
	if !ok || !d.hasSegment {
		return Segment{}, false
	}
	return Segment{flower: c.flower, name: d.segment, orientation: c.orientation}, true
}

// SequencePosition returns the Cap's coordinate on its sequence, if any.
func (c Cap) SequencePosition() (pos int32, strand bool, ok bool) {
	d, _ := c.flower.capData(c.name)
	return d.seqPos, d.strand, d.hasSeq
}

// SetSequencePosition records c's coordinate and strand on its sequence.
func (c Cap) SetSequencePosition(pos int32, strand bool) {
	d := c.flower.caps[c.name]
	d.hasSeq = true
	d.seqPos = pos
	d.strand = strand
}

// Adjacency returns the Cap this one is adjacent to, if any.
func (c Cap) Adjacency() (Cap, bool) {
	d, _ := c.flower.capData(c.name)
	if !d.hasAdjacency {
		return Cap{}, false
	}
	orientation := d.adjPositive
	if !c.orientation {
		orientation = !orientation
	}
	return Cap{flower: c.flower, name: d.adjName, orientation: orientation}, true
}

// MakeAdjacent links c and other symmetrically: c.Adjacency() == other and
// other.Adjacency() == c. Returns ErrAlreadyAdjacent if either cap already
// has a different adjacency.
func MakeAdjacent(c, other Cap) error {
	cd := c.flower.caps[c.name]
	od := other.flower.caps[other.name]

	if cd.hasAdjacency && cd.adjName != other.name {
		return ErrAlreadyAdjacent
	}
	if od.hasAdjacency && od.adjName != c.name {
		return ErrAlreadyAdjacent
	}

	cd.hasAdjacency = true
	cd.adjName = other.name
	cd.adjPositive = other.orientation == c.orientation

	od.hasAdjacency = true
	od.adjName = c.name
	od.adjPositive = c.orientation == other.orientation
	return nil
}

// BreakAdjacency removes c's adjacency link, symmetrically clearing the
// peer's side too (the weak mutual reference spec §3 "Lifecycle/ownership"
// requires when either cap is destroyed).
func BreakAdjacency(c Cap) {
	cd, ok := c.flower.caps[c.name]
	if !ok || !cd.hasAdjacency {
		return
	}
	if od, ok := c.flower.caps[cd.adjName]; ok {
		od.hasAdjacency = false
	}
	cd.hasAdjacency = false
}

// Parent returns the Cap's event-tree parent, if any.
func (c Cap) Parent() (Cap, bool) {
	d, _ := c.flower.capData(c.name)
	if !d.hasParent {
		return Cap{}, false
	}
	return Cap{flower: c.flower, name: d.parent, orientation: c.orientation}, true
}

// Children returns the Cap's event-tree children.
func (c Cap) Children() []Cap {
	d, _ := c.flower.capData(c.name)
	out := make([]Cap, 0, len(d.children))
	for n := range d.children {
		out = append(out, Cap{flower: c.flower, name: n, orientation: c.orientation})
	}
	return out
}

func setCapParent(child, parent Cap) {
	cd := child.flower.caps[child.name]
	cd.hasParent = true
	cd.parent = parent.name
	pd := parent.flower.caps[parent.name]
	pd.children[child.name] = struct{}{}
}
