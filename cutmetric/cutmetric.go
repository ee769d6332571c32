package cutmetric

import (
	"errors"

	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// Sentinel errors for metric evaluation.
var (
	// ErrInvalidGraph indicates a nil or un-flushed input graph.
	ErrInvalidGraph = errors.New("cutmetric: graph must be non-nil and flushed")

	// ErrUnpartitioned indicates a hyperedge touching a node without any
	// partition label.
	ErrUnpartitioned = errors.New("cutmetric: node without partition label")
)

// Metrics bundles the three cut-quality scores of one partition.
type Metrics struct {
	// Mincut is the total weight of hyperedges spanning ≥2 labels.
	Mincut float64

	// SOED is the sum of external degrees: weight × label count over cut
	// hyperedges.
	SOED float64

	// KMetric is weight × (label count − 1) summed over all hyperedges.
	KMetric float64
}

// All evaluates the three metrics in a single pass over the hyperedges.
// Complexity: O(Σ_e |e|).
func All(g *hypergraph.Graph) (Metrics, error) {
	var m Metrics
	if g == nil || !g.Flushed() {
		return m, ErrInvalidGraph
	}

	seen := make(map[int]struct{}, 8)
	for e := 0; e < g.NEdges(); e++ {
		nodes, err := g.HyperedgeNodes(e)
		if err != nil {
			return Metrics{}, err
		}
		weight, err := g.HyperedgeWeight(e)
		if err != nil {
			return Metrics{}, err
		}

		// k = distinct labels across the edge (union of multi-labels).
		clear(seen)
		for _, node := range nodes {
			labels, lerr := g.PartitionLabels(node)
			if lerr != nil {
				return Metrics{}, lerr
			}
			if len(labels) == 0 {
				return Metrics{}, ErrUnpartitioned
			}
			for _, l := range labels {
				seen[l] = struct{}{}
			}
		}
		k := len(seen)

		if k >= 2 {
			m.Mincut += weight
			m.SOED += weight * float64(k)
		}
		m.KMetric += weight * float64(k-1)
	}

	return m, nil
}

// Mincut returns the total weight of hyperedges spanning more than one
// partition label; 0 on an empty graph.
func Mincut(g *hypergraph.Graph) (float64, error) {
	m, err := All(g)

	return m.Mincut, err
}

// SOED returns the sum of external degrees; 0 on an empty graph.
func SOED(g *hypergraph.Graph) (float64, error) {
	m, err := All(g)

	return m.SOED, err
}

// KMetric returns the connectivity metric Σ w(e)·(k(e)−1); 0 on an empty
// graph.
func KMetric(g *hypergraph.Graph) (float64, error) {
	m, err := All(g)

	return m.KMetric, err
}
