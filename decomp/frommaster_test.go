package decomp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/decomp"
	"github.com/katalvlaran/dwdecomp/problem"
)

// buildBinPacking models nBins bins and nItems items:
//
//	vars:  x[i][j] (item i in bin j), then y[j] (bin j used)
//	conss: Capacity_j: Σ_i w_i·x[i][j] − cap·y[j] ≤ 0   (one per bin)
//	       Allocate_i: Σ_j x[i][j] = 1                  (one per item)
//
// The Allocate rows are the natural master constraints: removing them
// leaves one connected component per bin.
func buildBinPacking(nItems, nBins int) (*problem.Problem, []int) {
	p := &problem.Problem{Name: "bpp"}
	xIdx := func(i, j int) int { return i*nBins + j }
	for i := 0; i < nItems; i++ {
		for j := 0; j < nBins; j++ {
			p.Vars = append(p.Vars, problem.Variable{
				Name: fmt.Sprintf("x_%d_%d", i, j), Ub: 1, Type: problem.Binary,
			})
		}
	}
	yBase := nItems * nBins
	for j := 0; j < nBins; j++ {
		p.Vars = append(p.Vars, problem.Variable{
			Name: fmt.Sprintf("y_%d", j), Obj: 1, Ub: 1, Type: problem.Binary,
		})
	}
	for j := 0; j < nBins; j++ {
		c := problem.Constraint{Name: fmt.Sprintf("Capacity_%d", j), Lhs: -1e20, Rhs: 0}
		for i := 0; i < nItems; i++ {
			c.Vars = append(c.Vars, xIdx(i, j))
			c.Coefs = append(c.Coefs, float64(i+1))
		}
		c.Vars = append(c.Vars, yBase+j)
		c.Coefs = append(c.Coefs, -10)
		p.Conss = append(p.Conss, c)
	}
	var master []int
	for i := 0; i < nItems; i++ {
		c := problem.Constraint{Name: fmt.Sprintf("Allocate_%d", i), Lhs: 1, Rhs: 1}
		for j := 0; j < nBins; j++ {
			c.Vars = append(c.Vars, xIdx(i, j))
			c.Coefs = append(c.Coefs, 1)
		}
		master = append(master, len(p.Conss))
		p.Conss = append(p.Conss, c)
	}

	return p, master
}

func TestFromMasterConss_BinPacking(t *testing.T) {
	p, master := buildBinPacking(4, 3)
	require.NoError(t, p.Validate())

	d, err := decomp.FromMasterConss(p, master)
	require.NoError(t, err)

	// One block per bin, each holding its capacity row and 5 exclusive
	// variables (4 assignment columns plus the bin-used indicator).
	assert.Equal(t, 3, d.NBlocks())
	assert.Equal(t, 4, d.NLinkingConss())
	assert.Equal(t, master, d.LinkingConss())
	assert.Zero(t, d.NLinkingVars())
	assert.Equal(t, decomp.Bordered, d.Type())
	assert.Equal(t, "", d.Detector())

	for b := 0; b < 3; b++ {
		conss, cerr := d.BlockConss(b)
		require.NoError(t, cerr)
		assert.Len(t, conss, 1)
		vars, verr := d.BlockVars(b)
		require.NoError(t, verr)
		assert.Len(t, vars, 5)
	}

	// Capacity rows map to their blocks; Allocate rows to the sentinel.
	b, ok := d.ConsBlock(0)
	require.True(t, ok)
	assert.Equal(t, 0, b)
	b, ok = d.ConsBlock(master[0])
	require.True(t, ok)
	assert.Equal(t, decomp.Linking, b)
}

func TestFromMasterConss_EmptyMaster_Diagonal(t *testing.T) {
	// Two independent rows over disjoint variables: with no master set the
	// components are the blocks and the result is purely diagonal.
	p := &problem.Problem{
		Vars: []problem.Variable{{Name: "a"}, {Name: "b"}},
		Conss: []problem.Constraint{
			{Name: "c0", Vars: []int{0}, Coefs: []float64{1}},
			{Name: "c1", Vars: []int{1}, Coefs: []float64{1}},
		},
	}
	d, err := decomp.FromMasterConss(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, d.NBlocks())
	assert.Equal(t, decomp.Diagonal, d.Type())
}

func TestFromMasterConss_SharedVariableMergesBlocks(t *testing.T) {
	// Variable z appears in both non-master rows, so they fall into one
	// connected component and z is a plain block variable.
	p := &problem.Problem{
		Vars: []problem.Variable{{Name: "x"}, {Name: "y"}, {Name: "z"}},
		Conss: []problem.Constraint{
			{Name: "c0", Vars: []int{0, 2}, Coefs: []float64{1, 1}},
			{Name: "c1", Vars: []int{1, 2}, Coefs: []float64{1, 1}},
			{Name: "m", Vars: []int{0, 1}, Coefs: []float64{1, 1}},
		},
	}
	d, err := decomp.FromMasterConss(p, []int{2})
	require.NoError(t, err)

	assert.Equal(t, 1, d.NBlocks())
	assert.Zero(t, d.NLinkingVars())
	assert.Equal(t, decomp.Bordered, d.Type())
}

func TestFromMasterConss_MasterOnlyVariable(t *testing.T) {
	// Variable m appears in master rows only and must become linking.
	p := &problem.Problem{
		Vars: []problem.Variable{{Name: "x"}, {Name: "y"}, {Name: "m"}},
		Conss: []problem.Constraint{
			{Name: "c0", Vars: []int{0}, Coefs: []float64{1}},
			{Name: "c1", Vars: []int{1}, Coefs: []float64{1}},
			{Name: "link", Vars: []int{0, 1, 2}, Coefs: []float64{1, 1, 1}},
		},
	}
	d, err := decomp.FromMasterConss(p, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 2, d.NBlocks())
	assert.Equal(t, []int{2}, d.LinkingVars())
	assert.Equal(t, decomp.Arrowhead, d.Type())
}

func TestFromMasterConss_Validation(t *testing.T) {
	p, _ := buildBinPacking(2, 2)
	_, err := decomp.FromMasterConss(nil, nil)
	assert.ErrorIs(t, err, decomp.ErrInvalidData)
	_, err = decomp.FromMasterConss(p, []int{99})
	assert.ErrorIs(t, err, decomp.ErrInvalidData)
}

func TestAssignStairlinking_Chain(t *testing.T) {
	// Three stages chained by shared state variables s0, s1:
	//   vars: 0:x0 1:s0 2:x1 3:s1 4:x2
	p := &problem.Problem{
		Vars: []problem.Variable{
			{Name: "x0"}, {Name: "s0"}, {Name: "x1"}, {Name: "s1"}, {Name: "x2"},
		},
		Conss: []problem.Constraint{
			{Name: "c0", Vars: []int{0, 1}, Coefs: []float64{1, 1}},
			{Name: "c1", Vars: []int{1, 2, 3}, Coefs: []float64{1, 1, 1}},
			{Name: "c2", Vars: []int{3, 4}, Coefs: []float64{1, 1}},
		},
	}
	d := decomp.New()
	require.NoError(t, d.SetBlocks([][]int{{0}, {1}, {2}}, [][]int{{0}, {2}, {4}}))
	require.NoError(t, d.SetLinkingVars([]int{1, 3}))

	moved, err := d.AssignStairlinking(p)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)
	assert.Zero(t, d.NLinkingVars())

	stair, err := d.StairlinkingVars(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, stair) // s0 couples blocks 0 and 1
	stair, err = d.StairlinkingVars(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, stair) // s1 couples blocks 1 and 2
}

func TestAssignStairlinking_NonConsecutiveStaysLinking(t *testing.T) {
	// Variable u touches blocks 0 and 2: not consecutive, stays linking.
	p := &problem.Problem{
		Vars: []problem.Variable{{Name: "x0"}, {Name: "x1"}, {Name: "x2"}, {Name: "u"}},
		Conss: []problem.Constraint{
			{Name: "c0", Vars: []int{0, 3}, Coefs: []float64{1, 1}},
			{Name: "c1", Vars: []int{1}, Coefs: []float64{1}},
			{Name: "c2", Vars: []int{2, 3}, Coefs: []float64{1, 1}},
		},
	}
	d := decomp.New()
	require.NoError(t, d.SetBlocks([][]int{{0}, {1}, {2}}, [][]int{{0}, {1}, {2}}))
	require.NoError(t, d.SetLinkingVars([]int{3}))

	moved, err := d.AssignStairlinking(p)
	require.NoError(t, err)
	assert.Zero(t, moved)
	assert.Equal(t, []int{3}, d.LinkingVars())
}
