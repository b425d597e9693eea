package graphutil

import "math"

// Weighting selects whether a Matcher should prefer heavier or lighter
// edges when choosing between otherwise-tied partners.
type Weighting int

const (
	// Max prefers the heaviest available edge at each step.
	Max Weighting = iota
	// Min prefers the lightest available edge at each step.
	Min
)

// Matcher produces a perfect matching (one edge per pair) over nodes, using
// edges as the available candidate set. The reference builder exposes this
// as a first-class, swappable parameter rather than hard-coding one
// algorithm, matching the Design Notes' instruction to expose the external
// matching function as a parameter instead of baking in a single choice.
type Matcher func(nodes []int, edges *EdgeSet, weighting Weighting) ([]Edge, error)

// GreedyMatch implements Matcher with a deterministic nearest-remaining-
// partner heuristic: O(k²) in the number of nodes. Grounded on
// tsp/matching.go's greedyMatch, generalized from "nearest by distance" to
// "best by Weighting" and from an adjacency-mutation side effect to a
// pure return value.
//
// nodes must have even cardinality and every pair must be covered by edges
// (callers typically run CompleteClique first) or ErrNoMatching is returned.
func GreedyMatch(nodes []int, edges *EdgeSet, weighting Weighting) ([]Edge, error) {
	if len(nodes)%2 != 0 {
		return nil, ErrOddNodeCount
	}
	if len(nodes) == 0 {
		return nil, nil
	}

	rem := make([]int, len(nodes))
	copy(rem, nodes)

	matching := make([]Edge, 0, len(nodes)/2)
	for len(rem) > 1 {
		last := len(rem) - 1
		u := rem[last]
		rem = rem[:last]

		bestIdx := -1
		var bestW float64
		if weighting == Max {
			bestW = math.Inf(-1)
		} else {
			bestW = math.Inf(1)
		}

		for i, v := range rem {
			e, ok := edges.Get(u, v)
			if !ok {
				continue
			}
			better := (weighting == Max && e.Weight > bestW) ||
				(weighting == Min && e.Weight < bestW) ||
				(e.Weight == bestW && bestIdx >= 0 && v < rem[bestIdx])
			if better {
				bestW = e.Weight
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			return nil, ErrNoMatching
		}

		last = len(rem) - 1
		v := rem[bestIdx]
		rem[bestIdx] = rem[last]
		rem = rem[:last]

		e, _ := edges.Get(u, v)
		matching = append(matching, e)
	}
	return matching, nil
}
