package reference

import (
	"fmt"

	"github.com/comparative-genomics/cactusgraph/cactus"
	"github.com/comparative-genomics/cactusgraph/graphutil"
)

// getOrCreateReferenceCap returns e's existing cap on the reference event, or
// materializes one per spec §4.3.6: a block end gets a new Segment on the
// reference event (hung off the block's root instance, if one exists); a
// stub end copies the parent flower's reference cap's coordinates, if a
// parent flower and cap exist, or else gets a bare fresh cap.
func getOrCreateReferenceCap(f *cactus.Flower, e cactus.End, refHeader string) (cactus.Cap, error) {
	if c, ok := referenceCapOn(e, refHeader); ok {
		return c, nil
	}
	refEvent, ok := f.FindEventByHeader(refHeader)
	if !ok {
		return cactus.Cap{}, fmt.Errorf("%w: reference event %q", ErrMissingEntity, refHeader)
	}

	if block, ok := e.Block(); ok {
		seg := f.ConstructSegment(block, refEvent)
		if root, hasRoot := block.RootSegment(); hasRoot {
			cactus.SetSegmentParent(seg, root)
		}
		if e.Side() {
			return seg.FiveCap(), nil
		}
		return seg.ThreeCap(), nil
	}

	if parentLink, hasParent := f.Parent(); hasParent {
		if parentEnd, ok := parentLink.Flower.GetEnd(e.Name()); ok {
			if parentCap, ok := referenceCapOn(parentEnd, refHeader); ok {
				newCap := f.ConstructCap(e, refEvent)
				if pos, strand, hasSeq := parentCap.SequencePosition(); hasSeq {
					newCap.SetSequencePosition(pos, strand)
				}
				return newCap, nil
			}
		}
	}
	return f.ConstructCap(e, refEvent), nil
}

// addLinkAdjacenciesAndSegments makes each link-group's two ends' reference
// caps mutually adjacent (spec §4.3.6, first bullet).
func addLinkAdjacenciesAndSegments(f *cactus.Flower, refHeader string) error {
	for _, g := range f.AllGroups() {
		if !g.IsLink() {
			continue
		}
		ends := g.Ends()
		if len(ends) != 2 {
			continue
		}
		c1, err := getOrCreateReferenceCap(f, ends[0], refHeader)
		if err != nil {
			return err
		}
		c2, err := getOrCreateReferenceCap(f, ends[1], refHeader)
		if err != nil {
			return err
		}
		if err := cactus.MakeAdjacent(c1, c2); err != nil {
			return err
		}
	}
	return nil
}

// addTangleAdjacenciesAndSegments realizes the chosen matching's edges as
// reference-cap adjacencies, inserting a length-1 bridging block whenever the
// two matched ends don't already share a group (spec §4.3.6, second bullet).
// It returns the set of ends that still lack a group assignment afterward,
// for assignGroups to place.
func addTangleAdjacenciesAndSegments(f *cactus.Flower, nm *NodeMap, matching []graphutil.Edge, refHeader string) ([]cactus.End, error) {
	refEvent, ok := f.FindEventByHeader(refHeader)
	if !ok {
		return nil, fmt.Errorf("%w: reference event %q", ErrMissingEntity, refHeader)
	}

	var newEnds []cactus.End
	for _, edge := range matching {
		e1, ok1 := nm.End(edge.U)
		e2, ok2 := nm.End(edge.V)
		if !ok1 || !ok2 {
			continue
		}
		c1, err := getOrCreateReferenceCap(f, e1, refHeader)
		if err != nil {
			return nil, err
		}
		c2, err := getOrCreateReferenceCap(f, e2, refHeader)
		if err != nil {
			return nil, err
		}

		g1, hasGroup1 := e1.Group()
		g2, hasGroup2 := e2.Group()

		if hasGroup1 && hasGroup2 && g1.Name() == g2.Name() {
			if err := cactus.MakeAdjacent(c1, c2); err != nil {
				return nil, err
			}
			continue
		}

		bridge := f.ConstructBlock(1)
		bseg := f.ConstructSegment(bridge, refEvent)
		if err := cactus.MakeAdjacent(c1, bseg.FiveCap()); err != nil {
			return nil, err
		}
		if err := cactus.MakeAdjacent(c2, bseg.ThreeCap()); err != nil {
			return nil, err
		}

		if hasGroup1 {
			g1.AddEnd(bridge.FiveEnd())
		} else {
			newEnds = append(newEnds, e1, bridge.FiveEnd())
		}
		if hasGroup2 {
			g2.AddEnd(bridge.ThreeEnd())
		} else {
			newEnds = append(newEnds, e2, bridge.ThreeEnd())
		}
	}
	return newEnds, nil
}

// assignGroups places every End in newEnds that still lacks a group into the
// group of its reference-cap adjacency partner, creating an arbitrary tangle
// group from the pair if the partner is new too (spec §4.3.6, final bullet).
func assignGroups(newEnds []cactus.End, f *cactus.Flower, refHeader string) error {
	for _, e := range newEnds {
		if _, has := e.Group(); has {
			continue
		}
		c, ok := referenceCapOn(e, refHeader)
		if !ok {
			continue
		}
		adj, ok := c.Adjacency()
		if !ok {
			continue
		}
		partner := adj.End()
		if g, has := partner.Group(); has {
			g.AddEnd(e)
			continue
		}
		f.ConstructTangleGroup([]cactus.End{e, partner}, nil)
	}
	return nil
}
