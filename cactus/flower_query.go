package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// AllEnds returns every End the flower owns, block-owned and stub alike, in
// the positive orientation.
func (f *Flower) AllEnds() []End {
	f.muEntities.RLock()
	defer f.muEntities.RUnlock()
	out := make([]End, 0, len(f.ends))
	for n := range f.ends {
		out = append(out, End{flower: f, name: n, orientation: true})
	}
	return out
}

// AllBlocks returns every Block the flower owns, in the positive orientation.
func (f *Flower) AllBlocks() []Block {
	f.muEntities.RLock()
	defer f.muEntities.RUnlock()
	out := make([]Block, 0, len(f.blocks))
	for n := range f.blocks {
		out = append(out, Block{flower: f, name: n, orientation: true})
	}
	return out
}

// AllChains returns every Chain the flower owns.
func (f *Flower) AllChains() []Chain {
	f.muTopo.RLock()
	defer f.muTopo.RUnlock()
	out := make([]Chain, 0, len(f.chains))
	for n := range f.chains {
		out = append(out, Chain{flower: f, name: n})
	}
	return out
}

// AllGroups returns every Group the flower owns.
func (f *Flower) AllGroups() []Group {
	f.muTopo.RLock()
	defer f.muTopo.RUnlock()
	out := make([]Group, 0, len(f.groups))
	for n := range f.groups {
		out = append(out, Group{flower: f, name: n})
	}
	return out
}

// ImportEnd copies a boundary End identified by n from a parent flower's
// group into this flower as a stub (spec §4.3.3 "Stub import"), reusing the
// same Name so cross-flower Name equality continues to encode "same
// boundary point" the way ReferenceEvent reuses the parent's event Name.
// A no-op, returning (existing handle, false), if n is already present.
func (f *Flower) ImportEnd(n name.Name, attached bool) (End, bool) {
	f.muEntities.Lock()
	defer f.muEntities.Unlock()
	if _, ok := f.ends[n]; ok {
		return End{flower: f, name: n, orientation: true}, false
	}
	f.ends[n] = &endData{
		name:       n,
		isAttached: attached,
		caps:       make(map[name.Name]struct{}),
	}
	return End{flower: f, name: n, orientation: true}, true
}

// AttachedStubCount counts the flower's attached (non-free) stub ends.
func (f *Flower) AttachedStubCount() int {
	f.muEntities.RLock()
	defer f.muEntities.RUnlock()
	count := 0
	for _, d := range f.ends {
		if !d.hasBlock && d.isAttached {
			count++
		}
	}
	return count
}
