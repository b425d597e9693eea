package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// sentinelBranchLength is used for a fresh top-level reference event created
// with no parent flower, per spec §4.3.2.
const sentinelBranchLength = int32(1<<31 - 1) // INT32_MAX in the original

type eventData struct {
	name         name.Name
	header       string
	branchLength int32
	parent       name.Name
	hasParent    bool
	children     map[name.Name]struct{}
}

// Event is a handle into a Flower's event tree: a node labeling genomes
// (leaves) or ancestral splits (internal nodes), including the synthetic
// reference event the builder lays a path down.
type Event struct {
	flower *Flower
	name   name.Name
}

// Name returns the event's identifier.
func (e Event) Name() name.Name { return e.name }

func (f *Flower) eventData(n name.Name) (*eventData, bool) {
	d, ok := f.events[n]
	return d, ok
}

// Header returns the event's label (e.g. a genome's header string).
func (e Event) Header() string {
	d, ok := e.flower.eventData(e.name)
	if !ok {
		return ""
	}
	return d.header
}

// BranchLength returns the event's branch length above its parent.
func (e Event) BranchLength() int32 {
	d, ok := e.flower.eventData(e.name)
	if !ok {
		return 0
	}
	return d.branchLength
}

// Parent returns the event's parent, if any.
func (e Event) Parent() (Event, bool) {
	d, ok := e.flower.eventData(e.name)
	if !ok || !d.hasParent {
		return Event{}, false
	}
	return Event{flower: e.flower, name: d.parent}, true
}

// RootEvent returns the flower's event-tree root.
func (f *Flower) RootEvent() Event {
	return Event{flower: f, name: f.rootEvent}
}

// ConstructEvent adds a new event as a child of parent, with the given header
// and branch length.
func (f *Flower) ConstructEvent(parent Event, header string, branchLength int32) Event {
	f.muTopo.Lock()
	defer f.muTopo.Unlock()

	n := f.source.Next()
	f.events[n] = &eventData{
		name:         n,
		header:       header,
		branchLength: branchLength,
		parent:       parent.name,
		hasParent:    true,
		children:     make(map[name.Name]struct{}),
	}
	if pd, ok := f.events[parent.name]; ok {
		pd.children[n] = struct{}{}
	}
	return Event{flower: f, name: n}
}

// FindEventByHeader looks up an event by its header string anywhere in the
// flower's event tree, per spec §4.3.2's "look up the reference event by
// header."
func (f *Flower) FindEventByHeader(header string) (Event, bool) {
	f.muTopo.RLock()
	defer f.muTopo.RUnlock()
	for n, d := range f.events {
		if d.header == header {
			return Event{flower: f, name: n}, true
		}
	}
	return Event{}, false
}

// ReferenceEvent implements spec §4.3.2: look up the reference event by
// header in the flower's event tree, creating it if absent. parentName,
// when haveParent is true, names the already-established reference event in
// the parent flower — the new event is created under this flower's root with
// that same Name, so Name equality across flowers encodes "same reference
// genome". When haveParent is false (no parent flower), a fresh top-level
// event is created under the root. Either way the new event gets the
// sentinel branch length.
func (f *Flower) ReferenceEvent(header string, parentName name.Name, haveParent bool) Event {
	if ev, ok := f.FindEventByHeader(header); ok {
		return ev
	}

	f.muTopo.Lock()
	defer f.muTopo.Unlock()

	var n name.Name
	if haveParent {
		n = parentName
	} else {
		n = f.source.Next()
	}
	f.events[n] = &eventData{
		name:         n,
		header:       header,
		branchLength: sentinelBranchLength,
		parent:       f.rootEvent,
		hasParent:    true,
		children:     make(map[name.Name]struct{}),
	}
	if rootData, ok := f.events[f.rootEvent]; ok {
		rootData.children[n] = struct{}{}
	}
	return Event{flower: f, name: n}
}
