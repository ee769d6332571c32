package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/cluster"
	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// chain builds the flushed path 0-1-2-3 with weights 3, 1, 2.
func chain(t *testing.T) *hypergraph.Graph {
	t.Helper()
	g := hypergraph.New()
	g.AddNodes(4)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.Flush())

	return g
}

func TestMST_Thresholds(t *testing.T) {
	g := chain(t)

	labels, err := cluster.MST(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, labels)

	// Cutting below 2 drops only the middle edge.
	labels, err = cluster.MST(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)

	// A threshold above every weight leaves singletons.
	labels, err = cluster.MST(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, labels)
}

func TestMST_Deterministic(t *testing.T) {
	g := chain(t)

	first, err := cluster.MST(g, 2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, aerr := cluster.MST(g, 2)
		require.NoError(t, aerr)
		assert.Equal(t, first, again)
	}
}

func TestMST_IsolatedNodes(t *testing.T) {
	g := hypergraph.New()
	g.AddNodes(3)
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.Flush())

	labels, err := cluster.MST(g, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, labels)
}

func TestMST_Errors(t *testing.T) {
	_, err := cluster.MST(nil, 1)
	assert.ErrorIs(t, err, cluster.ErrInvalidGraph)

	unflushed := hypergraph.New()
	unflushed.AddNodes(2)
	_, err = cluster.MST(unflushed, 1)
	assert.ErrorIs(t, err, cluster.ErrInvalidGraph)
}
