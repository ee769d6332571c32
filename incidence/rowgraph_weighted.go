package incidence

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/dwdecomp/cluster"
	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/problem"
)

// RowGraphWeighted is a RowGraph whose edges carry a similarity score
// between the two constraints' variable-index sets instead of a bare
// multiplicity. The weighted adjacency feeds single-linkage (MST) and
// Markov clustering, whose per-constraint cluster labels seed block
// detection.
type RowGraphWeighted struct {
	g       *hypergraph.Graph
	conss   []int
	measure DistanceMeasure
	wtype   WeightType
}

// NewRowGraphWeighted creates an empty weighted row-graph builder for the
// given similarity measure and weight type.
func NewRowGraphWeighted(measure DistanceMeasure, wtype WeightType, opts ...hypergraph.Option) *RowGraphWeighted {
	return &RowGraphWeighted{
		g:       hypergraph.New(opts...),
		measure: measure,
		wtype:   wtype,
	}
}

// Build populates the graph: every constraint pair with at least one
// shared selected variable gets a single edge weighted by the configured
// measure. Fails with ErrBadMeasure for unknown enum values and
// ErrInvalidInput for inconsistent inputs. Flushed on return.
//
// Complexity: O(C + Σ_v k_v²) for the pair counts plus O(P) scoring over
// the P sharing pairs.
func (rg *RowGraphWeighted) Build(p *problem.Problem, conss, vars []int, w Weights) error {
	switch rg.measure {
	case MeasureIntersection, MeasureJaccard, MeasureCosine:
	default:
		return fmt.Errorf("%w: measure %d", ErrBadMeasure, rg.measure)
	}
	switch rg.wtype {
	case WeightRaw, WeightNormalized:
	default:
		return fmt.Errorf("%w: weight type %d", ErrBadMeasure, rg.wtype)
	}
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

	// Count shared variables per constraint pair and the per-constraint
	// selected-variable set sizes.
	size := make([]int, len(rg.conss))
	inter := make(map[[2]int]int)
	for _, sharing := range sharedConss(p, rg.conss, varSubset) {
		for _, cPos := range sharing {
			size[cPos]++
		}
		for i := 0; i < len(sharing); i++ {
			for j := i + 1; j < len(sharing); j++ {
				inter[[2]int{sharing[i], sharing[j]}]++
			}
		}
	}

	// Deterministic edge order: sort the sharing pairs before scoring.
	pairs := make([][2]int, 0, len(inter))
	for pair := range inter {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})
	for _, pair := range pairs {
		sim := rg.similarity(inter[pair], size[pair[0]], size[pair[1]])
		if err = rg.g.AddEdge(pair[0], pair[1], sim); err != nil {
			return err
		}
	}

	return rg.g.Flush()
}

// similarity scores a pair from the intersection cardinality n and the two
// set sizes a, b.
func (rg *RowGraphWeighted) similarity(n, a, b int) float64 {
	switch rg.measure {
	case MeasureIntersection:
		if rg.wtype == WeightNormalized {
			return float64(n) / float64(a+b-n)
		}

		return float64(n)
	case MeasureJaccard:
		return float64(n) / float64(a+b-n)
	default: // MeasureCosine
		return float64(n) / math.Sqrt(float64(a)*float64(b))
	}
}

// Graph exposes the wrapped hypergraph.
func (rg *RowGraphWeighted) Graph() *hypergraph.Graph { return rg.g }

// NNodes returns the constraint-node count.
func (rg *RowGraphWeighted) NNodes() int { return len(rg.conss) }

// ReadPartition imports one label per constraint node in node order.
func (rg *RowGraphWeighted) ReadPartition(r io.Reader) error {
	return rg.g.ReadPartition(r)
}

// WriteTo exports the adjacency format with similarity edge weights;
// includeWeights additionally emits node weights.
func (rg *RowGraphWeighted) WriteTo(w io.Writer, includeWeights bool) error {
	if !rg.g.Flushed() {
		return ErrNotBuilt
	}

	return writeAdjacency(w, rg.g, includeWeights, true)
}

// ClustersMST runs single-linkage clustering over the similarity
// adjacency: edges with similarity below threshold are cut, connected
// components become clusters. Returns one label per constraint node.
func (rg *RowGraphWeighted) ClustersMST(threshold float64) ([]int, error) {
	if !rg.g.Flushed() {
		return nil, ErrNotBuilt
	}

	return cluster.MST(rg.g, threshold)
}

// ClustersMCL runs Markov clustering over the similarity adjacency.
// Returns one label per constraint node.
func (rg *RowGraphWeighted) ClustersMCL(inflation float64, opts ...cluster.Option) ([]int, error) {
	if !rg.g.Flushed() {
		return nil, ErrNotBuilt
	}

	return cluster.MCL(rg.g, inflation, opts...)
}
