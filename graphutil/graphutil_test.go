package graphutil_test

import (
	"testing"

	"github.com/comparative-genomics/cactusgraph/graphutil"
	"github.com/stretchr/testify/require"
)

func TestDSUUnionFindMergesComponents(t *testing.T) {
	d := graphutil.NewDSU([]int{1, 2, 3, 4})
	require.False(t, d.Connected(1, 2))
	require.True(t, d.Union(1, 2))
	require.True(t, d.Connected(1, 2))
	require.False(t, d.Union(1, 2))
	require.True(t, d.Union(3, 4))
	require.False(t, d.Connected(1, 3))
	d.Union(2, 3)
	require.True(t, d.Connected(1, 4))
}

func TestEdgeSetNormalizesEndpointOrder(t *testing.T) {
	s := graphutil.NewEdgeSet(graphutil.NewEdge(3, 1, 2.5))
	e, ok := s.Get(1, 3)
	require.True(t, ok)
	require.Equal(t, 1, e.U)
	require.Equal(t, 3, e.V)
	require.True(t, s.Has(3, 1))
}

func TestNodeSetDifference(t *testing.T) {
	all := graphutil.NewNodeSet(1, 2, 3, 4)
	sub := graphutil.NewNodeSet(2, 4)
	require.Equal(t, []int{1, 3}, all.Difference(sub))
}

func TestEdgeSetNodes(t *testing.T) {
	s := graphutil.NewEdgeSet(
		graphutil.NewEdge(1, 2, 1),
		graphutil.NewEdge(2, 3, 1),
	)
	nodes := s.Nodes()
	require.Equal(t, []int{1, 2, 3}, nodes.Sorted())
}

func TestCompleteCliqueAddsMissingPairsOnly(t *testing.T) {
	edges := graphutil.NewEdgeSet(graphutil.NewEdge(1, 2, 9))
	nodes := graphutil.NewNodeSet(1, 2, 3)

	completed := graphutil.CompleteClique(edges, nodes, 0)
	require.Equal(t, 3, completed.Len())

	e12, _ := completed.Get(1, 2)
	require.Equal(t, float64(9), e12.Weight, "existing edge weight must not be overwritten")

	e13, ok := completed.Get(1, 3)
	require.True(t, ok)
	require.Equal(t, float64(0), e13.Weight)
}

func TestTopByWeightOrdersDescendingWithDeterministicTies(t *testing.T) {
	edges := []graphutil.Edge{
		graphutil.NewEdge(1, 2, 5),
		graphutil.NewEdge(2, 3, 5),
		graphutil.NewEdge(3, 4, 9),
	}
	top := graphutil.TopByWeight(edges, 2)
	require.Len(t, top, 2)
	require.Equal(t, float64(9), top[0].Weight)
	require.Equal(t, float64(5), top[1].Weight)
	require.Equal(t, 1, top[1].U) // (1,2) sorts before (2,3) on tie
}

func TestGreedyMatchProducesPerfectMatchingMaxWeighting(t *testing.T) {
	nodes := []int{1, 2, 3, 4}
	edges := graphutil.NewEdgeSet(
		graphutil.NewEdge(1, 2, 1),
		graphutil.NewEdge(3, 4, 1),
		graphutil.NewEdge(1, 3, 10),
		graphutil.NewEdge(2, 4, 10),
		graphutil.NewEdge(1, 4, 2),
		graphutil.NewEdge(2, 3, 2),
	)
	matching, err := graphutil.GreedyMatch(nodes, edges, graphutil.Max)
	require.NoError(t, err)
	require.Len(t, matching, 2)

	matched := make(map[int]bool)
	for _, e := range matching {
		matched[e.U] = true
		matched[e.V] = true
	}
	require.Len(t, matched, 4)
}

func TestGreedyMatchRejectsOddNodeCount(t *testing.T) {
	_, err := graphutil.GreedyMatch([]int{1, 2, 3}, graphutil.NewEdgeSet(), graphutil.Max)
	require.ErrorIs(t, err, graphutil.ErrOddNodeCount)
}

func TestGreedyMatchFailsWithoutCompleteCoverage(t *testing.T) {
	_, err := graphutil.GreedyMatch([]int{1, 2}, graphutil.NewEdgeSet(), graphutil.Max)
	require.ErrorIs(t, err, graphutil.ErrNoMatching)
}
