package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// Chain is a handle to an ordered sequence of Links.
type Chain struct {
	flower *Flower
	name   name.Name
}

// Name returns the Chain's identifier.
func (c Chain) Name() name.Name { return c.name }

// Links returns the chain's links in insertion order (spec §5: "chain_getFirst
// through chain_getLast iterate link insertion order").
func (c Chain) Links() []Link {
	d, ok := c.flower.chains[c.name]
	if !ok {
		return nil
	}
	out := make([]Link, len(d.links))
	copy(out, d.links)
	return out
}

// First returns the chain's first Link, if non-empty.
func (c Chain) First() (Link, bool) {
	d := c.flower.chains[c.name]
	if len(d.links) == 0 {
		return Link{}, false
	}
	return d.links[0], true
}

// Last returns the chain's last Link, if non-empty.
func (c Chain) Last() (Link, bool) {
	d := c.flower.chains[c.name]
	if len(d.links) == 0 {
		return Link{}, false
	}
	return d.links[len(d.links)-1], true
}

// ConstructChain adds a new, empty Chain to the flower.
func (f *Flower) ConstructChain() Chain {
	f.muTopo.Lock()
	defer f.muTopo.Unlock()
	n := f.source.Next()
	f.chains[n] = &chainData{name: n}
	return Chain{flower: f, name: n}
}

// AppendLink appends (threeEnd, fiveEnd) as the chain's next Link, placing
// both ends into a freshly constructed link-group that optionally decomposes
// into childFlower (nil if the link's child flower hasn't been built yet).
func (c Chain) AppendLink(threeEnd, fiveEnd End, childFlower *Flower) Group {
	c.flower.muTopo.Lock()
	d := c.flower.chains[c.name]
	idx := len(d.links)
	d.links = append(d.links, Link{ThreeEnd: threeEnd.name, FiveEnd: fiveEnd.name})
	c.flower.muTopo.Unlock()

	return c.flower.constructGroup([]End{threeEnd, fiveEnd}, true, c.name, idx, childFlower)
}

// GetChain looks up a Chain by Name.
func (f *Flower) GetChain(n name.Name) (Chain, bool) {
	f.muTopo.RLock()
	defer f.muTopo.RUnlock()
	if _, ok := f.chains[n]; !ok {
		return Chain{}, false
	}
	return Chain{flower: f, name: n}, true
}
