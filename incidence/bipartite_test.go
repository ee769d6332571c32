package incidence_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/incidence"
	"github.com/katalvlaran/dwdecomp/problem"
)

// matrixProblem is the worked 4-variable/3-constraint instance used
// throughout the export tests:
//
//	c1: v1 v2 v4
//	c2: v1 v2 v3
//	c3: v1 v3
func matrixProblem() *problem.Problem {
	return &problem.Problem{
		Name: "matrix",
		Vars: []problem.Variable{
			{Name: "v1"}, {Name: "v2"}, {Name: "v3"}, {Name: "v4"},
		},
		Conss: []problem.Constraint{
			{Name: "c1", Vars: []int{0, 1, 3}, Coefs: []float64{1, 1, 1}},
			{Name: "c2", Vars: []int{0, 1, 2}, Coefs: []float64{1, 1, 1}},
			{Name: "c3", Vars: []int{0, 2}, Coefs: []float64{1, 1}},
		},
	}
}

func engines(t *testing.T, build func(t *testing.T, opts ...hypergraph.Option)) {
	t.Helper()
	t.Run("clique", func(t *testing.T) { build(t) })
	t.Run("matrix", func(t *testing.T) { build(t, hypergraph.WithMatrixEngine()) })
}

func TestBipartite_Counts(t *testing.T) {
	p := matrixProblem()
	b := incidence.NewBipartite()
	require.NoError(t, b.Build(p, nil, nil, incidence.DefaultWeights()))

	assert.Equal(t, p.NVars(), b.NVarNodes())
	assert.Equal(t, p.NConss(), b.NConsNodes())
	assert.Equal(t, 7, b.Graph().NNodes())
}

func TestBipartite_WriteTo(t *testing.T) {
	// Variable nodes come first, 1-based; constraint node ids are offset
	// by the variable count.
	const want = "7 8\n5 6 7\n5 6\n6 7\n5\n1 2 4\n1 2 3\n1 3\n"

	engines(t, func(t *testing.T, opts ...hypergraph.Option) {
		b := incidence.NewBipartite(opts...)
		require.NoError(t, b.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

		var buf bytes.Buffer
		require.NoError(t, b.WriteTo(&buf, false))
		assert.Equal(t, want, buf.String())
	})
}

func TestBipartite_WriteTo_NodeWeights(t *testing.T) {
	p := matrixProblem()
	p.Vars[0].Type = problem.Binary
	w := incidence.NewWeights(5, 3, 1, 1, 1, 1) // cons=5, binary=3

	b := incidence.NewBipartite()
	require.NoError(t, b.Build(p, nil, nil, w))

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf, true))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "7 8 010", lines[0])
	assert.Equal(t, "3 5 6 7", lines[1]) // binary v1 carries weight 3
	assert.Equal(t, "5 1 2 4", lines[5]) // constraint nodes carry weight 5
}

func TestBipartite_Subset(t *testing.T) {
	b := incidence.NewBipartite()
	require.NoError(t, b.Build(matrixProblem(), []int{0, 1}, []int{0, 1, 2}, incidence.DefaultWeights()))

	assert.Equal(t, 2, b.NConsNodes())
	assert.Equal(t, 3, b.NVarNodes())
	// v4 is excluded, so c1 keeps nonzeros on v1, v2 only.
	assert.Equal(t, 5, b.Graph().Engine().NEdges())
}

func TestBipartite_ReadPartition(t *testing.T) {
	b := incidence.NewBipartite()
	require.NoError(t, b.Build(matrixProblem(), nil, nil, incidence.DefaultWeights()))

	require.NoError(t, b.ReadPartition(strings.NewReader("0\n0\n1\n1\n0\n0\n1\n")))
	assert.Equal(t, []int{0, 0, 1, 1, 0, 0, 1}, b.Graph().Partition())
}

func TestBipartite_Errors(t *testing.T) {
	b := incidence.NewBipartite()

	var buf bytes.Buffer
	assert.ErrorIs(t, b.WriteTo(&buf, false), incidence.ErrNotBuilt)

	assert.ErrorIs(t, b.Build(nil, nil, nil, incidence.DefaultWeights()), incidence.ErrInvalidInput)

	p := matrixProblem()
	assert.ErrorIs(t, b.Build(p, []int{0, 0}, nil, incidence.DefaultWeights()), incidence.ErrInvalidInput)
	assert.ErrorIs(t, b.Build(p, nil, []int{9}, incidence.DefaultWeights()), incidence.ErrInvalidInput)
}
