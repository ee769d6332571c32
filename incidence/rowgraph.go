package incidence

import (
	"io"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/problem"
)

// RowGraph has one node per constraint and one edge per shared variable:
// a variable appearing in k constraints contributes an edge for each of
// the k(k-1)/2 pairs. Multiplicity is preserved as parallel hyperedges;
// the engine accumulates it into the pairwise adjacency weight.
type RowGraph struct {
	g     *hypergraph.Graph
	conss []int
}

// NewRowGraph creates an empty row-graph builder.
func NewRowGraph(opts ...hypergraph.Option) *RowGraph {
	return &RowGraph{g: hypergraph.New(opts...)}
}

// Build populates the graph from the constraint subset's shared variables
// (nil subsets select all). Flushed and queryable on return.
// Complexity: O(C + Σ_v k_v²) over the selected submatrix.
func (rg *RowGraph) Build(p *problem.Problem, conss, vars []int, w Weights) error {
	if err := checkProblem(p); err != nil {
		return err
	}
	var err error
	if rg.conss, err = resolveSubset(p.NConss(), conss); err != nil {
		return err
	}
	varSubset, err := resolveSubset(p.NVars(), vars)
	if err != nil {
		return err
	}

	for range rg.conss {
		rg.g.AddNode(float64(w.Constraint()))
	}

	for _, sharing := range sharedConss(p, rg.conss, varSubset) {
		for i := 0; i < len(sharing); i++ {
			for j := i + 1; j < len(sharing); j++ {
				if err = rg.g.AddEdge(sharing[i], sharing[j], 1); err != nil {
					return err
				}
			}
		}
	}

	return rg.g.Flush()
}

// Graph exposes the wrapped hypergraph.
func (rg *RowGraph) Graph() *hypergraph.Graph { return rg.g }

// NNodes returns the constraint-node count.
func (rg *RowGraph) NNodes() int { return len(rg.conss) }

// ReadPartition imports one label per constraint node in node order.
func (rg *RowGraph) ReadPartition(r io.Reader) error {
	return rg.g.ReadPartition(r)
}

// WriteTo exports the adjacency format; includeWeights adds node-weight
// and edge-weight (shared-variable multiplicity) columns.
func (rg *RowGraph) WriteTo(w io.Writer, includeWeights bool) error {
	if !rg.g.Flushed() {
		return ErrNotBuilt
	}

	return writeAdjacency(w, rg.g, includeWeights, includeWeights)
}

// sharedConss returns, per selected variable (in subset order), the node
// positions of the selected constraints containing it.
func sharedConss(p *problem.Problem, conss, vars []int) [][]int {
	consPos := positionMap(conss)
	varPos := positionMap(vars)

	sharing := make([][]int, len(vars))
	for _, ci := range conss {
		cPos := consPos[ci]
		for _, vi := range p.Conss[ci].Vars {
			if vPos, in := varPos[vi]; in {
				sharing[vPos] = append(sharing[vPos], cPos)
			}
		}
	}

	return sharing
}
