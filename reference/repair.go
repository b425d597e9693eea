package reference

import (
	"sort"

	"github.com/comparative-genomics/cactusgraph/graphutil"
)

// resolveCyclicConstraints builds a perfect matching over nodes that
// contains every forced edge (stub edges plus the current chain batch) and
// otherwise prefers the matcher's raw proposal, falling back to any clique
// edge, while refusing to close a cycle until only the very last pair of
// nodes remains — the single global cycle the reference path is allowed to
// form (spec §4.3.5 "Cyclic-constraint repair").
//
// This is a Kruskal-style construction (graphutil.DSU, grounded on
// prim_kruskal/kruskal.go's union-find) rather than the literal
// detect-two-cycles-and-swap procedure the algorithm narrative describes:
// building the matching greedily by descending weight while deferring any
// edge that would close a premature cycle reaches the same fixed point
// (one connected structure per stub pair, maximum total weight given that
// constraint) without needing to materialize and repair an initial flawed
// matching first.
func resolveCyclicConstraints(nodes []int, forced, raw []graphutil.Edge, clique *graphutil.EdgeSet, weighting graphutil.Weighting) ([]graphutil.Edge, error) {
	dsu := graphutil.NewDSU(nodes)
	matched := make(map[int]bool, len(nodes))
	var chosen []graphutil.Edge

	addEdge := func(e graphutil.Edge) {
		chosen = append(chosen, e)
		matched[e.U] = true
		matched[e.V] = true
		dsu.Union(e.U, e.V)
	}

	for _, e := range forced {
		if matched[e.U] || matched[e.V] {
			continue
		}
		addEdge(e)
	}

	remaining := func() int {
		c := 0
		for _, n := range nodes {
			if !matched[n] {
				c++
			}
		}
		return c
	}

	candidates := make([]graphutil.Edge, 0, len(raw)+clique.Len())
	candidates = append(candidates, raw...)
	candidates = append(candidates, clique.Slice()...)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Weight != candidates[j].Weight {
			if weighting == graphutil.Min {
				return candidates[i].Weight < candidates[j].Weight
			}
			return candidates[i].Weight > candidates[j].Weight
		}
		if candidates[i].U != candidates[j].U {
			return candidates[i].U < candidates[j].U
		}
		return candidates[i].V < candidates[j].V
	})

	for _, e := range candidates {
		if matched[e.U] || matched[e.V] {
			continue
		}
		if dsu.Connected(e.U, e.V) && remaining() > 2 {
			continue
		}
		addEdge(e)
	}

	var leftover []int
	for _, n := range nodes {
		if !matched[n] {
			leftover = append(leftover, n)
		}
	}
	sort.Ints(leftover)
	for len(leftover) > 1 {
		u := leftover[0]
		rest := leftover[1:]
		bestIdx, bestW := -1, 0.0
		for i, v := range rest {
			e, ok := clique.Get(u, v)
			if !ok {
				continue
			}
			better := bestIdx < 0 ||
				(weighting == graphutil.Max && e.Weight > bestW) ||
				(weighting == graphutil.Min && e.Weight < bestW)
			if better {
				bestIdx, bestW = i, e.Weight
			}
		}
		if bestIdx < 0 {
			return nil, graphutil.ErrNoMatching
		}
		v := rest[bestIdx]
		e, _ := clique.Get(u, v)
		addEdge(e)

		leftover = leftover[1:]
		leftover = append(leftover[:bestIdx], leftover[bestIdx+1:]...)
	}
	if len(leftover) == 1 {
		return nil, graphutil.ErrNoMatching
	}
	return chosen, nil
}
