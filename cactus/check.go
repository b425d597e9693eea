package cactus

import (
	"fmt"

	"github.com/comparative-genomics/cactusgraph/name"
)

// Check validates a Block's structural invariants from spec §8: both ends
// are block-ends bound back to this block, orientation agrees between the
// block and both ends, and the two orientations are mutual reverses.
func (b Block) Check() error {
	fd, ok := b.flower.blockData(b.name)
	if !ok {
		return fmt.Errorf("%w: block %d not in flower arena", ErrMissingEntity, b.name)
	}
	if fd.length <= 0 {
		return fmt.Errorf("%w: block %d has non-positive length", ErrInvariantViolation, b.name)
	}

	five, three := b.FiveEnd(), b.ThreeEnd()
	for _, e := range []End{five, three} {
		blk, ok := e.Block()
		if !ok {
			return fmt.Errorf("%w: end %d of block %d is not a block end", ErrInvariantViolation, e.name, b.name)
		}
		if blk.name != b.name {
			return fmt.Errorf("%w: end %d does not point back to block %d", ErrInvariantViolation, e.name, b.name)
		}
		if e.Orientation() != b.Orientation() {
			return fmt.Errorf("%w: end %d orientation disagrees with block %d", ErrInvariantViolation, e.name, b.name)
		}
	}

	rev := b.Reverse()
	if rev.Reverse().name != b.name || rev.Orientation() == b.Orientation() {
		return fmt.Errorf("%w: block %d reverse companion is not involutive", ErrInvariantViolation, b.name)
	}
	if rev.Length() != b.Length() {
		return fmt.Errorf("%w: block %d and its reverse disagree on length", ErrInvariantViolation, b.name)
	}

	if _, _, err := b.Chain(); err != nil {
		return err
	}
	return nil
}

// Check validates an End's structural invariants: if block-owned,
// block(e) == block(reverse(e)) and orientation(e) == orientation(block(e)).
func (e End) Check() error {
	if _, ok := e.flower.endData(e.name); !ok {
		return fmt.Errorf("%w: end %d not in flower arena", ErrMissingEntity, e.name)
	}
	blk, ok := e.Block()
	if !ok {
		return nil // stub end, nothing block-shaped to check
	}
	revBlk, ok := e.Reverse().Block()
	if !ok || revBlk.name != blk.name {
		return fmt.Errorf("%w: end %d and its reverse disagree on owning block", ErrInvariantViolation, e.name)
	}
	if e.Orientation() != blk.Orientation() {
		return fmt.Errorf("%w: end %d orientation disagrees with its block", ErrInvariantViolation, e.name)
	}
	return nil
}

// Check validates every Block and End in the flower, plus the chain
// invariant (spec §8 invariant 6: a block belongs to at most one chain).
func (f *Flower) Check() error {
	f.muEntities.RLock()
	blockNames := make([]name.Name, 0, len(f.blocks))
	for n := range f.blocks {
		blockNames = append(blockNames, n)
	}
	endNames := make([]name.Name, 0, len(f.ends))
	for n := range f.ends {
		endNames = append(endNames, n)
	}
	f.muEntities.RUnlock()

	for _, n := range blockNames {
		b := Block{flower: f, name: n, orientation: true}
		if err := b.Check(); err != nil {
			return err
		}
	}
	for _, n := range endNames {
		e := End{flower: f, name: n, orientation: true}
		if err := e.Check(); err != nil {
			return err
		}
	}
	return nil
}
