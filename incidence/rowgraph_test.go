package incidence_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/incidence"
)

func TestRowGraph_Multiplicity(t *testing.T) {
	engines(t, func(t *testing.T, opts ...hypergraph.Option) {
		rg := incidence.NewRowGraph(opts...)
		require.NoError(t, rg.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

		assert.Equal(t, 3, rg.NNodes())
		g := rg.Graph()
		// Shared variables: c1-c2 share v1,v2; c1-c3 share v1; c2-c3
		// share v1,v3. Five parallel hyperedges over three distinct pairs.
		assert.Equal(t, 5, g.NEdges())
		assert.Equal(t, 3, g.Engine().NEdges())

		w, ok := g.EdgeWeight(0, 1)
		require.True(t, ok)
		assert.Equal(t, 2.0, w)
		w, ok = g.EdgeWeight(0, 2)
		require.True(t, ok)
		assert.Equal(t, 1.0, w)
		w, ok = g.EdgeWeight(1, 2)
		require.True(t, ok)
		assert.Equal(t, 2.0, w)
	})
}

func TestRowGraph_WriteTo(t *testing.T) {
	rg := incidence.NewRowGraph()
	require.NoError(t, rg.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

	var buf bytes.Buffer
	require.NoError(t, rg.WriteTo(&buf, false))
	assert.Equal(t, "3 3\n2 3\n1 3\n1 2\n", buf.String())

	buf.Reset()
	require.NoError(t, rg.WriteTo(&buf, true))
	// Node weight first, then (neighbor, multiplicity) pairs.
	assert.Equal(t, "3 3 011\n1 2 2 3 1\n1 1 2 3 2\n1 1 1 2 2\n", buf.String())
}

func TestColumnGraph(t *testing.T) {
	cg := incidence.NewColumnGraph()
	require.NoError(t, cg.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

	assert.Equal(t, 4, cg.NNodes())
	g := cg.Graph()
	// Shared constraints: v1-v2 via c1,c2; v1-v3 via c2,c3; v1-v4 via c1;
	// v2-v3 via c2; v2-v4 via c1. v3 and v4 never meet.
	assert.Equal(t, 5, g.Engine().NEdges())

	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	w, ok = g.EdgeWeight(0, 2)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	w, ok = g.EdgeWeight(0, 3)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
	_, ok = g.EdgeWeight(2, 3)
	assert.False(t, ok)
}

func TestColumnGraph_SubsetDropsPairs(t *testing.T) {
	// Without c1 the only shared rows are c2 (v1,v2,v3) and c3 (v1,v3).
	cg := incidence.NewColumnGraph()
	require.NoError(t, cg.Build(matrixProblem(), []int{1, 2}, nil, incidence.DefaultWeights()))

	assert.Equal(t, 4, cg.NNodes())
	assert.Equal(t, 3, cg.Graph().Engine().NEdges()) // v1-v2, v1-v3, v2-v3

	var buf bytes.Buffer
	require.NoError(t, cg.WriteTo(&buf, false))
	assert.Equal(t, "4 3\n2 3\n1 3\n1 2\n\n", buf.String()) // v4 is isolated
}
