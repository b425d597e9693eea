package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// Group is a handle to either a link-group (participates in exactly one
// chain Link, representing a child flower with a simple adjacency) or a
// tangle-group (everything else).
type Group struct {
	flower *Flower
	name   name.Name
}

// Name returns the Group's identifier.
func (g Group) Name() name.Name { return g.name }

// IsLink reports whether this is a link-group.
func (g Group) IsLink() bool {
	d, ok := g.flower.groups[g.name]
	return ok && d.isLink
}

// Ends returns every End currently assigned to this group.
func (g Group) Ends() []End {
	d, ok := g.flower.groups[g.name]
	if !ok {
		return nil
	}
	out := make([]End, 0, len(d.ends))
	for n := range d.ends {
		out = append(out, End{flower: g.flower, name: n, orientation: true})
	}
	return out
}

// NestedFlower returns the child Flower this tangle-group decomposes into,
// if one has been assigned.
func (g Group) NestedFlower() (*Flower, bool) {
	d, ok := g.flower.groups[g.name]
	if !ok || !d.hasNested {
		return nil, false
	}
	return d.nestedFlower, true
}

// SetNestedFlower assigns a child Flower to this group.
func (g Group) SetNestedFlower(child *Flower) {
	if d, ok := g.flower.groups[g.name]; ok {
		d.hasNested = true
		d.nestedFlower = child
	}
}

// ConstructTangleGroup creates a new tangle-group containing ends, optionally
// already decomposed into a nested Flower.
func (f *Flower) ConstructTangleGroup(ends []End, nestedFlower *Flower) Group {
	f.muTopo.Lock()
	defer f.muTopo.Unlock()
	return f.constructGroup(ends, false, name.Name(0), 0, nestedFlower)
}

func (f *Flower) constructGroup(ends []End, isLink bool, chain name.Name, linkIdx int, nested *Flower) Group {
	n := f.source.Next()
	set := make(map[name.Name]struct{}, len(ends))
	for _, e := range ends {
		set[e.name] = struct{}{}
	}
	d := &groupData{name: n, ends: set, isLink: isLink, chain: chain, linkIdx: linkIdx}
	if nested != nil {
		d.hasNested = true
		d.nestedFlower = nested
	}
	f.groups[n] = d
	for _, e := range ends {
		e.SetGroup(Group{flower: f, name: n})
	}
	return Group{flower: f, name: n}
}

// GetGroup looks up a Group by Name.
func (f *Flower) GetGroup(n name.Name) (Group, bool) {
	f.muTopo.RLock()
	defer f.muTopo.RUnlock()
	if _, ok := f.groups[n]; !ok {
		return Group{}, false
	}
	return Group{flower: f, name: n}, true
}

// AddEnd assigns an additional End into an already-constructed group (used
// by the reference builder's assignGroups to place newly created ends).
func (g Group) AddEnd(e End) {
	d := g.flower.groups[g.name]
	d.ends[e.name] = struct{}{}
	e.SetGroup(g)
}
