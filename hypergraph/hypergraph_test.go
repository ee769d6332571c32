package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// buildPath constructs the 4-node graph 0—1—2—3 plus the hyperedge {0,2,3}.
func buildPath(opts ...hypergraph.Option) *hypergraph.Graph {
	g := hypergraph.New(opts...)
	g.AddNodes(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddHyperedge([]int{0, 2, 3}, 2)

	return g
}

func TestLifecycle_QueriesRequireFlush(t *testing.T) {
	g := buildPath()

	// Queries before Flush must fail.
	_, err := g.Neighbors(0)
	assert.ErrorIs(t, err, hypergraph.ErrNotFlushed)
	_, err = g.HyperedgeNodes(0)
	assert.ErrorIs(t, err, hypergraph.ErrNotFlushed)

	require.NoError(t, g.Flush())
	assert.True(t, g.Flushed())

	// Flush is idempotent: counts stay put.
	require.NoError(t, g.Flush())
	assert.Equal(t, 4, g.NNodes())
	assert.Equal(t, 4, g.NEdges())
}

func TestNeighbors_HyperedgeReachability(t *testing.T) {
	for name, opts := range map[string][]hypergraph.Option{
		"clique": nil,
		"matrix": {hypergraph.WithMatrixEngine()},
	} {
		t.Run(name, func(t *testing.T) {
			g := buildPath(opts...)
			require.NoError(t, g.Flush())

			// Node 0: edge to 1, hyperedge {0,2,3} reaches 2 and 3. Never self.
			nbr, err := g.Neighbors(0)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, nbr)

			// Node 1 only touches plain edges.
			nbr, err = g.Neighbors(1)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 2}, nbr)

			_, err = g.Neighbors(99)
			assert.ErrorIs(t, err, hypergraph.ErrNodeNotFound)
		})
	}
}

func TestHyperedgeAccessors(t *testing.T) {
	g := buildPath()
	require.NoError(t, g.Flush())

	// Hyperedges keep insertion order; members come back sorted.
	nodes, err := g.HyperedgeNodes(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, nodes)

	w, err := g.HyperedgeWeight(3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	_, err = g.HyperedgeNodes(4)
	assert.ErrorIs(t, err, hypergraph.ErrEdgeNotFound)
}

func TestAddHyperedge_Validation(t *testing.T) {
	g := hypergraph.New()
	g.AddNodes(3)

	// Duplicates collapse; a single distinct member is too small.
	assert.ErrorIs(t, g.AddHyperedge([]int{1, 1}, 1), hypergraph.ErrSmallHyperedge)
	assert.ErrorIs(t, g.AddHyperedge([]int{1}, 1), hypergraph.ErrSmallHyperedge)
	assert.ErrorIs(t, g.AddHyperedge([]int{0, 7}, 1), hypergraph.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(2, 2, 1), hypergraph.ErrSmallHyperedge)

	// {2,1,1,0} dedups and sorts to {0,1,2}.
	require.NoError(t, g.AddHyperedge([]int{2, 1, 1, 0}, 1))
	require.NoError(t, g.Flush())
	nodes, err := g.HyperedgeNodes(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, nodes)
}

func TestParallelEdges_AccumulateWeight(t *testing.T) {
	g := hypergraph.New()
	g.AddNodes(2)
	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.NoError(t, g.AddEdge(0, 1, 2.5))
	require.NoError(t, g.Flush())

	// Two hyperedges recorded, one pairwise adjacency with summed weight.
	assert.Equal(t, 2, g.NEdges())
	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
	assert.Equal(t, 1, g.Engine().NEdges())
}

func TestIncrementalAfterFlush(t *testing.T) {
	g := hypergraph.New()
	g.AddNodes(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.Flush())

	// Growing the committed graph drops it back to the un-flushed state.
	id := g.AddNode(1)
	assert.Equal(t, 2, id)
	require.NoError(t, g.AddEdge(1, 2, 1))
	assert.False(t, g.Flushed())
	_, err := g.Neighbors(1)
	assert.ErrorIs(t, err, hypergraph.ErrNotFlushed)

	require.NoError(t, g.Flush())
	nbr, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbr)
}

func TestPartition_SingleAndMultiLabel(t *testing.T) {
	g := buildPath()
	require.NoError(t, g.Flush())

	// Unset nodes report -1.
	assert.Equal(t, []int{-1, -1, -1, -1}, g.Partition())

	// Last write wins in single-assignment mode.
	require.NoError(t, g.SetPartition(0, 3))
	require.NoError(t, g.SetPartition(0, 1))
	assert.Equal(t, []int{1, -1, -1, -1}, g.Partition())

	// Multi-assignment keeps all distinct labels, sorted.
	require.NoError(t, g.AddPartitionLabel(1, 2))
	require.NoError(t, g.AddPartitionLabel(1, 0))
	require.NoError(t, g.AddPartitionLabel(1, 2)) // duplicate, ignored
	labels, err := g.PartitionLabels(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, labels)

	// SetPartition clears the multi-label set.
	require.NoError(t, g.SetPartition(1, 5))
	labels, err = g.PartitionLabels(1)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, labels)

	assert.ErrorIs(t, g.SetPartition(9, 0), hypergraph.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetPartition(0, -2), hypergraph.ErrBadLabel)
	assert.ErrorIs(t, g.AddPartitionLabel(0, -1), hypergraph.ErrBadLabel)
}

func TestNodeWeight(t *testing.T) {
	g := hypergraph.New()
	g.AddNode(3.5)
	g.AddNodes(2) // weight 1 each
	w, err := g.NodeWeight(0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, w)
	w, err = g.NodeWeight(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	_, err = g.NodeWeight(3)
	assert.ErrorIs(t, err, hypergraph.ErrNodeNotFound)
}
