package incidence

import (
	"io"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/problem"
)

// ColumnGraph is the transpose of RowGraph: one node per variable and one
// edge per constraint two variables share.
type ColumnGraph struct {
	g    *hypergraph.Graph
	vars []int
}

// NewColumnGraph creates an empty column-graph builder.
func NewColumnGraph(opts ...hypergraph.Option) *ColumnGraph {
	return &ColumnGraph{g: hypergraph.New(opts...)}
}

// Build populates the graph: for every selected constraint, each pair of
// its selected variables gets an edge. Flushed and queryable on return.
// Complexity: O(V + Σ_c k_c²) over the selected submatrix.
func (cg *ColumnGraph) Build(p *problem.Problem, conss, vars []int, w Weights) error {
	if err := checkProblem(p); err != nil {
		return err
	}
	var err error
	if cg.vars, err = resolveSubset(p.NVars(), vars); err != nil {
		return err
	}
	consSubset, err := resolveSubset(p.NConss(), conss)
	if err != nil {
		return err
	}

	for _, vi := range cg.vars {
		cg.g.AddNode(float64(w.Variable(p.Vars[vi].Type)))
	}

	varPos := positionMap(cg.vars)
	for _, ci := range consSubset {
		// Node positions of this row's selected variables.
		members := make([]int, 0, len(p.Conss[ci].Vars))
		for _, vi := range p.Conss[ci].Vars {
			if vPos, in := varPos[vi]; in {
				members = append(members, vPos)
			}
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				if err = cg.g.AddEdge(members[i], members[j], 1); err != nil {
					return err
				}
			}
		}
	}

	return cg.g.Flush()
}

// Graph exposes the wrapped hypergraph.
func (cg *ColumnGraph) Graph() *hypergraph.Graph { return cg.g }

// NNodes returns the variable-node count.
func (cg *ColumnGraph) NNodes() int { return len(cg.vars) }

// ReadPartition imports one label per variable node in node order.
func (cg *ColumnGraph) ReadPartition(r io.Reader) error {
	return cg.g.ReadPartition(r)
}

// WriteTo exports the adjacency format; includeWeights adds node-weight
// and edge-weight (shared-constraint multiplicity) columns.
func (cg *ColumnGraph) WriteTo(w io.Writer, includeWeights bool) error {
	if !cg.g.Flushed() {
		return ErrNotBuilt
	}

	return writeAdjacency(w, cg.g, includeWeights, includeWeights)
}
