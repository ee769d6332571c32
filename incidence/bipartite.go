package incidence

import (
	"io"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/problem"
)

// Bipartite is the two-class structure-detection graph: variable nodes
// first (ids 0..nVars-1), constraint nodes after (ids nVars..), and one
// edge per structural nonzero of the constraint matrix.
type Bipartite struct {
	g     *hypergraph.Graph
	conss []int // arena constraint indices in node order
	vars  []int // arena variable indices in node order
}

// NewBipartite creates an empty bipartite builder; opts select the
// underlying hypergraph engine.
func NewBipartite(opts ...hypergraph.Option) *Bipartite {
	return &Bipartite{g: hypergraph.New(opts...)}
}

// Build populates the graph from the incidence of the given constraint and
// variable subsets (nil selects all). Node weights come from w; every
// nonzero (cons,var) entry contributes one edge. The graph is flushed and
// queryable on return.
//
// Fails with ErrInvalidInput on a nil/invalid problem or inconsistent
// subsets. Complexity: O(V + C + E) over the selected submatrix.
func (b *Bipartite) Build(p *problem.Problem, conss, vars []int, w Weights) error {
	if err := checkProblem(p); err != nil {
		return err
	}
	var err error
	if b.conss, err = resolveSubset(p.NConss(), conss); err != nil {
		return err
	}
	if b.vars, err = resolveSubset(p.NVars(), vars); err != nil {
		return err
	}

	// Variable nodes first, then constraint nodes; the export relies on
	// this order.
	for _, vi := range b.vars {
		b.g.AddNode(float64(w.Variable(p.Vars[vi].Type)))
	}
	for range b.conss {
		b.g.AddNode(float64(w.Constraint()))
	}

	varPos := positionMap(b.vars)
	nVarNodes := len(b.vars)
	for cPos, ci := range b.conss {
		for _, vi := range p.Conss[ci].Vars {
			vPos, in := varPos[vi]
			if !in {
				continue // variable outside the selected subset
			}
			if err = b.g.AddEdge(vPos, nVarNodes+cPos, 1); err != nil {
				return err
			}
		}
	}

	return b.g.Flush()
}

// Graph exposes the wrapped hypergraph (nil-safe only after Build).
func (b *Bipartite) Graph() *hypergraph.Graph { return b.g }

// NVarNodes returns the number of variable nodes.
func (b *Bipartite) NVarNodes() int { return len(b.vars) }

// NConsNodes returns the number of constraint nodes.
func (b *Bipartite) NConsNodes() int { return len(b.conss) }

// ReadPartition imports one label per node in node order (variables first).
func (b *Bipartite) ReadPartition(r io.Reader) error {
	return b.g.ReadPartition(r)
}

// WriteTo exports the partitioning-tool adjacency format: first line
// "<nNodes> <nEdges>", then one 1-based adjacency line per node in node
// order (variable nodes list constraint-node ids offset by the variable
// count, constraint nodes list variable-node ids). With includeWeights the
// header carries the vertex-weight format code and each line is prefixed
// by the node's weight.
//
// The output is deterministic for a given input matrix.
func (b *Bipartite) WriteTo(w io.Writer, includeWeights bool) error {
	if !b.g.Flushed() {
		return ErrNotBuilt
	}

	return writeAdjacency(w, b.g, includeWeights, false)
}
