package reference

import (
	"testing"

	"github.com/comparative-genomics/cactusgraph/graphutil"
	"github.com/stretchr/testify/require"
)

// TestResolveCyclicConstraintsMergesDisjointTwoCycles covers spec §8
// scenario S5: four active nodes initially proposed as two disjoint
// 2-cycles must be merged into one connected structure, since the repair
// step only permits closing a cycle once just the last pair of nodes
// remains unmatched.
func TestResolveCyclicConstraintsMergesDisjointTwoCycles(t *testing.T) {
	nodes := []int{0, 1, 2, 3}
	clique := graphutil.NewEdgeSet(
		graphutil.NewEdge(0, 1, 10),
		graphutil.NewEdge(2, 3, 10),
		graphutil.NewEdge(0, 2, 5),
		graphutil.NewEdge(0, 3, 5),
		graphutil.NewEdge(1, 2, 5),
		graphutil.NewEdge(1, 3, 5),
	)
	raw := []graphutil.Edge{
		graphutil.NewEdge(0, 1, 10),
		graphutil.NewEdge(2, 3, 10),
	}

	chosen, err := resolveCyclicConstraints(nodes, nil, raw, clique, graphutil.Max)
	require.NoError(t, err)
	require.Len(t, chosen, 2)

	dsu := graphutil.NewDSU(nodes)
	for _, e := range chosen {
		dsu.Union(e.U, e.V)
	}
	root := dsu.Find(nodes[0])
	for _, n := range nodes[1:] {
		require.Equal(t, root, dsu.Find(n), "all four nodes must land in one connected structure")
	}
}

// TestResolveCyclicConstraintsHonorsForcedEdges ensures stub/chain-forced
// edges always survive into the final matching untouched.
func TestResolveCyclicConstraintsHonorsForcedEdges(t *testing.T) {
	nodes := []int{0, 1, 2, 3}
	forced := []graphutil.Edge{graphutil.NewEdge(0, 1, stubEdgeWeight)}
	clique := graphutil.NewEdgeSet(
		graphutil.NewEdge(0, 1, stubEdgeWeight),
		graphutil.NewEdge(2, 3, 1),
		graphutil.NewEdge(0, 2, 1),
		graphutil.NewEdge(1, 3, 1),
	)

	chosen, err := resolveCyclicConstraints(nodes, forced, nil, clique, graphutil.Max)
	require.NoError(t, err)

	found := false
	for _, e := range chosen {
		if (e.U == 0 && e.V == 1) || (e.U == 1 && e.V == 0) {
			found = true
		}
	}
	require.True(t, found, "forced edge must appear in the final matching")
}
