package incidence_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/incidence"
)

func TestHyperrowcol_Counts(t *testing.T) {
	hg := incidence.NewHyperrowcol()
	require.NoError(t, hg.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

	assert.Equal(t, 3, hg.NConsNodes())
	assert.Equal(t, 4, hg.NVarNodes())
	assert.Equal(t, 7, hg.Graph().NNodes())
	// One hyperedge per row and one per column: 3 + 4.
	assert.Equal(t, 7, hg.Graph().NEdges())
}

func TestHyperrowcol_WriteTo_CanonicalOrder(t *testing.T) {
	// Constraint hyperedges in constraint index order, then variable
	// hyperedges in variable index order; members sorted, 1-based.
	// Constraint nodes are 1..3, variable nodes 4..7.
	const want = "7 7\n" +
		"1 4 5 7\n" + // c1 + v1 v2 v4
		"2 4 5 6\n" + // c2 + v1 v2 v3
		"3 4 6\n" + // c3 + v1 v3
		"1 2 3 4\n" + // v1 + c1 c2 c3
		"1 2 5\n" + // v2 + c1 c2
		"2 3 6\n" + // v3 + c2 c3
		"1 7\n" + // v4 + c1
		"4\n4\n3\n4\n3\n3\n2\n" // hyperedge degree per node

	engines(t, func(t *testing.T, opts ...hypergraph.Option) {
		hg := incidence.NewHyperrowcol(opts...)
		require.NoError(t, hg.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

		var buf bytes.Buffer
		require.NoError(t, hg.WriteTo(&buf, false))
		assert.Equal(t, want, buf.String())
	})
}

func TestHyperrowcol_WriteTo_Weighted(t *testing.T) {
	hg := incidence.NewHyperrowcol()
	require.NoError(t, hg.Build(matrixProblem(), nil, nil, incidence.NewWeights(2, 1, 1, 1, 1, 1)))

	var buf bytes.Buffer
	require.NoError(t, hg.WriteTo(&buf, true))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "7 7 1", lines[0])
	assert.Equal(t, "2 1 4 5 7", lines[1]) // constraint hyperedge weight 2
	assert.Equal(t, "1 1 2 3 4", lines[4]) // variable hyperedge weight 1
}

func TestHyperrowcol_PartitionRoundTrip(t *testing.T) {
	hg := incidence.NewHyperrowcol()
	require.NoError(t, hg.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

	labels := "0\n0\n1\n0\n0\n1\n0\n"
	require.NoError(t, hg.ReadPartition(strings.NewReader(labels)))

	var buf bytes.Buffer
	require.NoError(t, hg.Graph().WritePartition(&buf))
	assert.Equal(t, labels, buf.String())
}

func TestHyperrowcol_NotBuilt(t *testing.T) {
	hg := incidence.NewHyperrowcol()
	var buf bytes.Buffer
	assert.ErrorIs(t, hg.WriteTo(&buf, false), incidence.ErrNotBuilt)
}
