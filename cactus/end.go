package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// End is a handle to one side of either a Block or a stub: (flower, name,
// orientation). The positive orientation (side=true half, by convention) and
// its reverse companion share one endData record.
type End struct {
	flower      *Flower
	name        name.Name
	orientation bool
}

// Name returns the End's identifier (shared by both orientations).
func (e End) Name() name.Name { return e.name }

// Orientation reports which of the two companion views this handle presents.
func (e End) Orientation() bool { return e.orientation }

// Reverse returns the End's companion view.
func (e End) Reverse() End { return End{flower: e.flower, name: e.name, orientation: !e.orientation} }

func (f *Flower) endData(n name.Name) (*endData, bool) {
	d, ok := f.ends[n]
	return d, ok
}

// ConstructStubEnd adds a free-standing End not owned by any Block: an
// attached stub (participates in reference construction) or a free stub
// (never will).
func (f *Flower) ConstructStubEnd(attached bool) End {
	f.muEntities.Lock()
	defer f.muEntities.Unlock()

	n := f.source.Next()
	f.ends[n] = &endData{
		name:       n,
		isAttached: attached,
		caps:       make(map[name.Name]struct{}),
	}
	return End{flower: f, name: n, orientation: true}
}

// GetEnd looks up an End by Name.
func (f *Flower) GetEnd(n name.Name) (End, bool) {
	f.muEntities.RLock()
	defer f.muEntities.RUnlock()
	if _, ok := f.ends[n]; !ok {
		return End{}, false
	}
	return End{flower: f, name: n, orientation: true}, true
}

// Block returns the owning Block and true if this End belongs to one.
func (e End) Block() (Block, bool) {
	d, ok := e.flower.endData(e.name)
	if !ok || !d.hasBlock {
		return Block{}, false
	}
	// End orientation==true always denotes the block's own positive-side end
	// (fiveEnd or threeEnd as constructed); the block's orientation matches.
	return Block{flower: e.flower, name: d.block, orientation: e.orientation}, true
}

// Side reports whether this is a block's 5' end (true) or 3' end (false).
// Meaningless for stub ends.
func (e End) Side() bool {
	d, ok := e.flower.endData(e.name)
	if !ok {
		return false
	}
	if e.orientation {
		return d.side
	}
	return !d.side
}

// IsStub reports whether this End is not owned by any Block.
func (e End) IsStub() bool {
	d, ok := e.flower.endData(e.name)
	return ok && !d.hasBlock
}

// IsAttached reports whether a stub End is attached (participates in
// reference construction). Meaningless for block ends.
func (e End) IsAttached() bool {
	d, ok := e.flower.endData(e.name)
	return ok && d.isAttached
}

// Group returns the End's Group, if assigned.
func (e End) Group() (Group, bool) {
	d, ok := e.flower.endData(e.name)
	if !ok || !d.hasGroup {
		return Group{}, false
	}
	return Group{flower: e.flower, name: d.group}, true
}

// SetGroup assigns g as this End's group (both orientations share the group
// assignment, since Group membership is orientation-independent).
func (e End) SetGroup(g Group) {
	e.flower.muEntities.Lock()
	defer e.flower.muEntities.Unlock()
	if d, ok := e.flower.ends[e.name]; ok {
		d.hasGroup = true
		d.group = g.name
	}
}

// Caps returns every Cap instance attached to this End, in the requested
// orientation.
func (e End) Caps() []Cap {
	d, ok := e.flower.endData(e.name)
	if !ok {
		return nil
	}
	out := make([]Cap, 0, len(d.caps))
	for n := range d.caps {
		out = append(out, Cap{flower: e.flower, name: n, orientation: e.orientation})
	}
	return out
}

func (e End) addCap(n name.Name) {
	if d, ok := e.flower.ends[e.name]; ok {
		d.caps[n] = struct{}{}
	}
}
