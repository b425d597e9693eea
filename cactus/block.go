package cactus

import "github.com/comparative-genomics/cactusgraph/name"

// Block is a handle to a homologous column group: (flower, name,
// orientation). The two orientations share one blockData record and always
// appear together; Reverse flips the view without allocating.
type Block struct {
	flower      *Flower
	name        name.Name
	orientation bool
}

// Name returns the Block's identifier, shared by both orientations.
func (b Block) Name() name.Name { return b.name }

// Orientation reports which of the two companion views this handle presents.
func (b Block) Orientation() bool { return b.orientation }

// Reverse returns the Block's companion view. Reverse is involutive:
// b.Reverse().Reverse() == b (spec §8 invariant 1).
func (b Block) Reverse() Block {
	return Block{flower: b.flower, name: b.name, orientation: !b.orientation}
}

func (f *Flower) blockData(n name.Name) (*blockData, bool) {
	d, ok := f.blocks[n]
	return d, ok
}

// Length returns the block's length in bases. Identical for both
// orientations and immutable post-construction (spec §8 invariant 1).
func (b Block) Length() int32 {
	d, ok := b.flower.blockData(b.name)
	if !ok {
		return 0
	}
	return d.length
}

// ConstructBlock adds a new Block of the given length, along with its two
// Ends (5' and 3'), to the flower.
func (f *Flower) ConstructBlock(length int32) Block {
	f.muEntities.Lock()
	defer f.muEntities.Unlock()
	return f.constructBlock(length)
}

func (f *Flower) constructBlock(length int32) Block {
	n := f.source.Next()
	fiveEnd := f.source.Next()
	threeEnd := f.source.Next()

	f.ends[fiveEnd] = &endData{name: fiveEnd, hasBlock: true, block: n, side: true, caps: make(map[name.Name]struct{})}
	f.ends[threeEnd] = &endData{name: threeEnd, hasBlock: true, block: n, side: false, caps: make(map[name.Name]struct{})}

	f.blocks[n] = &blockData{
		name:     n,
		length:   length,
		segments: make(map[name.Name]struct{}),
		fiveEnd:  fiveEnd,
		threeEnd: threeEnd,
	}
	return Block{flower: f, name: n, orientation: true}
}

// FiveEnd returns the block's 5' End, in a view matching b's orientation:
// for the reverse orientation this is the underlying record's 3' end, which
// is exactly "reverse(3'(b.reverse))" from spec §8 invariant 1.
func (b Block) FiveEnd() End {
	d, _ := b.flower.blockData(b.name)
	if b.orientation {
		return End{flower: b.flower, name: d.fiveEnd, orientation: true}
	}
	return End{flower: b.flower, name: d.threeEnd, orientation: false}
}

// ThreeEnd returns the block's 3' End, orientation-adjusted as FiveEnd does.
func (b Block) ThreeEnd() End {
	d, _ := b.flower.blockData(b.name)
	if b.orientation {
		return End{flower: b.flower, name: d.threeEnd, orientation: true}
	}
	return End{flower: b.flower, name: d.fiveEnd, orientation: false}
}

// Segments returns every Segment instance of this block, in b's orientation.
func (b Block) Segments() []Segment {
	d, ok := b.flower.blockData(b.name)
	if !ok {
		return nil
	}
	out := make([]Segment, 0, len(d.segments))
	for n := range d.segments {
		out = append(out, Segment{flower: b.flower, name: n, orientation: b.orientation})
	}
	return out
}

// RootSegment returns the block's phylogenetic root instance, if one exists.
func (b Block) RootSegment() (Segment, bool) {
	d, ok := b.flower.blockData(b.name)
	if !ok || !d.hasRoot {
		return Segment{}, false
	}
	return Segment{flower: b.flower, name: d.rootSeg, orientation: b.orientation}, true
}

// SetRootSegment records s as the block's phylogenetic root instance.
func (b Block) SetRootSegment(s Segment) {
	if d, ok := b.flower.blocks[b.name]; ok {
		d.hasRoot = true
		d.rootSeg = s.name
	}
}

// Chain returns the block's Chain, if it belongs to one, per spec §4.2:
// a block's chain is found by inspecting both ends' groups' links; if both
// ends are in links, both links must belong to the same chain (§8 invariant
// 6 — a block belongs to at most one chain). Returns ErrMultipleChains if
// the two ends disagree.
func (b Block) Chain() (Chain, bool, error) {
	fiveChain, fiveOK := chainOfEnd(b.FiveEnd())
	threeChain, threeOK := chainOfEnd(b.ThreeEnd())

	switch {
	case fiveOK && threeOK:
		if fiveChain.name != threeChain.name {
			return Chain{}, false, ErrMultipleChains
		}
		return fiveChain, true, nil
	case fiveOK:
		return fiveChain, true, nil
	case threeOK:
		return threeChain, true, nil
	default:
		return Chain{}, false, nil
	}
}

func chainOfEnd(e End) (Chain, bool) {
	g, ok := e.Group()
	if !ok {
		return Chain{}, false
	}
	gd, ok := g.flower.groups[g.name]
	if !ok || !gd.isLink {
		return Chain{}, false
	}
	return Chain{flower: g.flower, name: gd.chain}, true
}
