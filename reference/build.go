package reference

import (
	"fmt"

	"github.com/comparative-genomics/cactusgraph/cactus"
	"github.com/comparative-genomics/cactusgraph/config"
	"github.com/comparative-genomics/cactusgraph/graphutil"
	"github.com/rs/zerolog"
)

// Options configures one BuildReference call.
type Options struct {
	// Header names the reference genome event, e.g. "reference".
	Header string
	// Config holds the tunables spec.md's Open Questions resolve to.
	Config config.ReferenceConfig
	// Matcher is the external perfect-matching solver. Defaults to
	// graphutil.GreedyMatch when nil.
	Matcher graphutil.Matcher
	Log     zerolog.Logger
}

// BuildReference runs the full top-level loop of spec §4.3.5 against flower
// f: reference-event lookup/creation, stub import, edge-category collection,
// the batched chain-incorporation loop with cyclic-constraint repair, and
// finally reference materialization (link adjacencies, tangle adjacencies
// with bridging blocks, and group assignment for newly created ends).
func BuildReference(f *cactus.Flower, opts Options) error {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = graphutil.GreedyMatch
	}
	cfg := opts.Config

	if _, err := ensureReferenceEvent(f, opts.Header); err != nil {
		return fmt.Errorf("%w: %s", ErrReferenceBuilding, err)
	}

	imported, err := ImportStubs(f)
	if err != nil {
		return fmt.Errorf("%w: stub import: %s", ErrReferenceBuilding, err)
	}

	nm := BuildNodeMap(f)

	chainEdges, err := ChainEdges(f, nm)
	if err != nil {
		return fmt.Errorf("%w: chain edges: %s", ErrReferenceBuilding, err)
	}
	stubEdges, err := StubEdges(f, nm, imported, opts.Header)
	if err != nil {
		return fmt.Errorf("%w: stub edges: %s", ErrReferenceBuilding, err)
	}

	sortedChains := graphutil.TopByWeight(chainEdges, len(chainEdges))
	active := graphutil.NewNodeSet()
	for _, e := range stubEdges {
		active.Add(e.U)
		active.Add(e.V)
	}

	S := stubEdges
	batchSize := cfg.MaxChainsPerRound
	if batchSize <= 0 {
		batchSize = len(sortedChains)
	}

	for len(sortedChains) > 0 {
		n := batchSize
		if n > len(sortedChains) {
			n = len(sortedChains)
		}
		batch := sortedChains[:n]
		sortedChains = sortedChains[n:]

		for _, e := range batch {
			active.Add(e.U)
			active.Add(e.V)
		}

		observed := ObservedAdjacencyEdges(nm, active)
		full := graphutil.NewEdgeSet(observed.Slice()...)
		for _, e := range batch {
			full.Add(e)
		}
		for _, e := range S {
			full.Add(e)
		}
		clique := graphutil.CompleteClique(full, active, 0)

		var raw []graphutil.Edge
		if cfg.RecalculateEachCycle {
			raw, err = matcher(active.Sorted(), clique, cfg.MatchWeighting)
			if err != nil {
				return fmt.Errorf("%w: %w: %s", ErrReferenceBuilding, ErrMatchingInfeasible, err)
			}
		} else {
			forced := append(append([]graphutil.Edge{}, S...), batch...)
			for _, e := range forced {
				if ce, ok := clique.Get(e.U, e.V); ok {
					raw = append(raw, ce)
				}
			}
		}

		forced := append(append([]graphutil.Edge{}, S...), batch...)
		newS, err := resolveCyclicConstraints(active.Sorted(), forced, raw, clique, cfg.MatchWeighting)
		if err != nil {
			return fmt.Errorf("%w: %w: cyclic repair: %s", ErrReferenceBuilding, ErrMatchingInfeasible, err)
		}
		S = newS
	}

	if err := addLinkAdjacenciesAndSegments(f, opts.Header); err != nil {
		return fmt.Errorf("%w: link adjacencies: %s", ErrReferenceBuilding, err)
	}
	newEnds, err := addTangleAdjacenciesAndSegments(f, nm, S, opts.Header)
	if err != nil {
		return fmt.Errorf("%w: tangle adjacencies: %s", ErrReferenceBuilding, err)
	}
	if err := assignGroups(newEnds, f, opts.Header); err != nil {
		return fmt.Errorf("%w: assign groups: %s", ErrReferenceBuilding, err)
	}

	return nil
}

// ensureReferenceEvent implements spec §4.3.2: reuse the parent flower's
// reference event Name if one exists, otherwise create a fresh top-level
// event.
func ensureReferenceEvent(f *cactus.Flower, header string) (cactus.Event, error) {
	parentLink, hasParent := f.Parent()
	if !hasParent {
		return f.ReferenceEvent(header, 0, false), nil
	}
	parentEvent, ok := parentLink.Flower.FindEventByHeader(header)
	if !ok {
		return cactus.Event{}, fmt.Errorf("%w: parent has no reference event %q", ErrMissingEntity, header)
	}
	return f.ReferenceEvent(header, parentEvent.Name(), true), nil
}
