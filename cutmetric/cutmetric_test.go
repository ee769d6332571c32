package cutmetric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/cutmetric"
	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// labeled builds a flushed graph with n nodes and one label per node.
func labeled(t *testing.T, n int, labels []int, edges func(g *hypergraph.Graph)) *hypergraph.Graph {
	t.Helper()
	g := hypergraph.New()
	g.AddNodes(n)
	edges(g)
	require.NoError(t, g.Flush())
	for node, l := range labels {
		require.NoError(t, g.SetPartition(node, l))
	}

	return g
}

func TestAll_UncutPartition(t *testing.T) {
	g := labeled(t, 3, []int{0, 0, 0}, func(g *hypergraph.Graph) {
		require.NoError(t, g.AddEdge(0, 1, 1))
		require.NoError(t, g.AddHyperedge([]int{0, 1, 2}, 2))
	})

	m, err := cutmetric.All(g)
	require.NoError(t, err)
	assert.Equal(t, cutmetric.Metrics{}, m)
}

func TestAll_SingleCutEdge(t *testing.T) {
	// One unit edge across two parts: (1, 2, 1).
	g := labeled(t, 2, []int{0, 1}, func(g *hypergraph.Graph) {
		require.NoError(t, g.AddEdge(0, 1, 1))
	})

	m, err := cutmetric.All(g)
	require.NoError(t, err)
	assert.Equal(t, cutmetric.Metrics{Mincut: 1, SOED: 2, KMetric: 1}, m)
}

func TestAll_WorkedValues(t *testing.T) {
	// A weight-2 hyperedge across three parts, a weight-4 edge across two,
	// and a weight-1 interior edge: (6, 14, 8).
	g := labeled(t, 7, []int{0, 1, 2, 3, 4, 5, 5}, func(g *hypergraph.Graph) {
		require.NoError(t, g.AddHyperedge([]int{0, 1, 2}, 2))
		require.NoError(t, g.AddEdge(3, 4, 4))
		require.NoError(t, g.AddEdge(5, 6, 1))
	})

	m, err := cutmetric.All(g)
	require.NoError(t, err)
	assert.Equal(t, cutmetric.Metrics{Mincut: 6, SOED: 14, KMetric: 8}, m)

	// Single-label partitions always satisfy SOED = Mincut + KMetric.
	assert.Equal(t, m.SOED, m.Mincut+m.KMetric)
}

func TestAll_Wrappers(t *testing.T) {
	g := labeled(t, 2, []int{0, 1}, func(g *hypergraph.Graph) {
		require.NoError(t, g.AddEdge(0, 1, 3))
	})

	mincut, err := cutmetric.Mincut(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mincut)
	soed, err := cutmetric.SOED(g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, soed)
	k, err := cutmetric.KMetric(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, k)
}

func TestAll_MultiLabelUnion(t *testing.T) {
	// Node 1 carries both labels, so the edge spans {0, 1} even though
	// node 0 sees only label 0.
	g := hypergraph.New()
	g.AddNodes(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.Flush())
	require.NoError(t, g.SetPartition(0, 0))
	require.NoError(t, g.AddPartitionLabel(1, 0))
	require.NoError(t, g.AddPartitionLabel(1, 1))

	m, err := cutmetric.All(g)
	require.NoError(t, err)
	assert.Equal(t, cutmetric.Metrics{Mincut: 1, SOED: 2, KMetric: 1}, m)
}

func TestAll_RefinementMonotone(t *testing.T) {
	edges := func(g *hypergraph.Graph) {
		require.NoError(t, g.AddHyperedge([]int{0, 1, 2, 3}, 2))
		require.NoError(t, g.AddEdge(0, 3, 1))
		require.NoError(t, g.AddEdge(1, 2, 5))
	}
	coarse := labeled(t, 4, []int{0, 0, 1, 1}, edges)
	fine := labeled(t, 4, []int{0, 2, 1, 1}, edges) // split the first part

	mc, err := cutmetric.All(coarse)
	require.NoError(t, err)
	mf, err := cutmetric.All(fine)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, mf.Mincut, mc.Mincut)
	assert.GreaterOrEqual(t, mf.SOED, mc.SOED)
	assert.GreaterOrEqual(t, mf.KMetric, mc.KMetric)
}

func TestAll_EmptyGraph(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.Flush())

	m, err := cutmetric.All(g)
	require.NoError(t, err)
	assert.Equal(t, cutmetric.Metrics{}, m)
}

func TestAll_Errors(t *testing.T) {
	_, err := cutmetric.All(nil)
	assert.ErrorIs(t, err, cutmetric.ErrInvalidGraph)

	unflushed := hypergraph.New()
	unflushed.AddNodes(2)
	_, err = cutmetric.All(unflushed)
	assert.ErrorIs(t, err, cutmetric.ErrInvalidGraph)

	// A labeled node next to an unlabeled one.
	g := hypergraph.New()
	g.AddNodes(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.Flush())
	require.NoError(t, g.SetPartition(0, 0))
	_, err = cutmetric.All(g)
	assert.ErrorIs(t, err, cutmetric.ErrUnpartitioned)
}
