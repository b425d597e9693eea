package graphutil

import "container/heap"

// edgePQ implements heap.Interface for a max-heap of Edges ordered by
// descending Weight, then ascending (U, V) for deterministic tie-breaking —
// the same shape as the teacher's prim_kruskal edgePQ, inverted for max
// instead of min.
type edgePQ []Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight > pq[j].Weight
	}
	if pq[i].U != pq[j].U {
		return pq[i].U < pq[j].U
	}
	return pq[i].V < pq[j].V
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}

// TopByWeight returns up to n edges from the set in descending weight order,
// breaking ties by (U, V). Used by the reference builder's top-level loop to
// batch chains "heaviest first" each round.
func TopByWeight(edges []Edge, n int) []Edge {
	if n > len(edges) {
		n = len(edges)
	}
	pq := make(edgePQ, len(edges))
	copy(pq, edges)
	heap.Init(&pq)

	out := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, heap.Pop(&pq).(Edge))
	}
	return out
}
