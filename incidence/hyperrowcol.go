package incidence

import (
	"io"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/problem"
)

// Hyperrowcol joins constraints and variables into a single node space:
// constraint nodes first (ids 0..nConss-1), variable nodes after. Every
// constraint row and every variable column becomes a first-class
// hyperedge over that space, so a partition of the nodes cuts rows and
// columns symmetrically.
type Hyperrowcol struct {
	g     *hypergraph.Graph
	conss []int
	vars  []int
}

// NewHyperrowcol creates an empty hyper-row-column builder.
func NewHyperrowcol(opts ...hypergraph.Option) *Hyperrowcol {
	return &Hyperrowcol{g: hypergraph.New(opts...)}
}

// Build populates the graph. Hyperedges are committed in canonical order:
// one per constraint in constraint index order (the constraint's node plus
// its variables' nodes), then one per variable in variable index order
// (the variable's node plus its constraints' nodes); the file export
// preserves this order, so equal inputs yield byte-identical files.
// Rows/columns with no selected counterpart contribute no hyperedge.
//
// Complexity: O(C + V + E) nodes/edges plus the clique expansion cost of
// the engine.
func (hg *Hyperrowcol) Build(p *problem.Problem, conss, vars []int, w Weights) error {
	if err := checkProblem(p); err != nil {
		return err
	}
	var err error
	if hg.conss, err = resolveSubset(p.NConss(), conss); err != nil {
		return err
	}
	if hg.vars, err = resolveSubset(p.NVars(), vars); err != nil {
		return err
	}

	for range hg.conss {
		hg.g.AddNode(float64(w.Constraint()))
	}
	for _, vi := range hg.vars {
		hg.g.AddNode(float64(w.Variable(p.Vars[vi].Type)))
	}

	consPos := positionMap(hg.conss)
	varPos := positionMap(hg.vars)
	nConsNodes := len(hg.conss)

	// Constraint hyperedges, constraint index order.
	for cPos, ci := range hg.conss {
		members := []int{cPos}
		for _, vi := range p.Conss[ci].Vars {
			if vPos, in := varPos[vi]; in {
				members = append(members, nConsNodes+vPos)
			}
		}
		if len(members) < 2 {
			continue
		}
		if err = hg.g.AddHyperedge(members, float64(w.Constraint())); err != nil {
			return err
		}
	}

	// Variable hyperedges, variable index order.
	incidenceOf := p.VarIncidence()
	for vPos, vi := range hg.vars {
		members := []int{nConsNodes + vPos}
		for _, ci := range incidenceOf[vi] {
			if cPos, in := consPos[ci]; in {
				members = append(members, cPos)
			}
		}
		if len(members) < 2 {
			continue
		}
		if err = hg.g.AddHyperedge(members, float64(w.Variable(p.Vars[vi].Type))); err != nil {
			return err
		}
	}

	return hg.g.Flush()
}

// Graph exposes the wrapped hypergraph.
func (hg *Hyperrowcol) Graph() *hypergraph.Graph { return hg.g }

// NConsNodes returns the number of constraint nodes.
func (hg *Hyperrowcol) NConsNodes() int { return len(hg.conss) }

// NVarNodes returns the number of variable nodes.
func (hg *Hyperrowcol) NVarNodes() int { return len(hg.vars) }

// ReadPartition imports one label per node (constraints first, then
// variables) in node order.
func (hg *Hyperrowcol) ReadPartition(r io.Reader) error {
	return hg.g.ReadPartition(r)
}

// WriteTo exports the two-section hypergraph format: header
// "<nNodes> <nEdges>", membership lines in the canonical Build order
// (1-based ids, weight-prefixed when includeWeights is set), then one
// hyperedge-degree line per node.
func (hg *Hyperrowcol) WriteTo(w io.Writer, includeWeights bool) error {
	if !hg.g.Flushed() {
		return ErrNotBuilt
	}

	return writeHypergraph(w, hg.g, includeWeights)
}
