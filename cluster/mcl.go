package cluster

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// MCL performs Markov clustering over the graph's pairwise adjacency and
// returns one cluster label per node.
//
// Steps:
//  1. Build the adjacency matrix with unit self-loops and normalize its
//     columns into a column-stochastic flow matrix.
//  2. Iterate: expansion (raise the matrix to the configured power), then
//     inflation (raise every entry to the inflation factor and renormalize
//     columns), until the largest entry change drops below epsilon or the
//     iteration cap is reached.
//  3. Read clusters off the converged support: attractor rows (nonzero
//     diagonal) collect every column with flow into them; overlapping
//     memberships resolve to the lowest attractor; untouched nodes become
//     singletons.
//  4. Normalize labels by first appearance over node ids.
//
// inflation must exceed 1 (2.0 is the usual choice; larger values yield
// finer clusters). The iteration cap is a fixed budget, not a cancellation
// token. Complexity: O(iterations · V³) with the dense backend.
func MCL(g *hypergraph.Graph, inflation float64, opts ...Option) ([]int, error) {
	// 1. Validate inputs.
	if g == nil || !g.Flushed() {
		return nil, ErrInvalidGraph
	}
	if inflation <= 1 {
		return nil, ErrBadInflation
	}
	cfg := defaultMclConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NNodes()
	if n == 0 {
		return []int{}, nil
	}

	// 2. Column-stochastic flow matrix with unit self-loops.
	m := mat.NewDense(n, n, nil)
	for u := 0; u < n; u++ {
		m.Set(u, u, 1)
		nbr, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbr {
			if w, ok := g.EdgeWeight(u, v); ok {
				m.Set(v, u, w)
			}
		}
	}
	normalizeColumns(m)

	// 3. Expand / inflate until converged or out of budget.
	prev := mat.NewDense(n, n, nil)
	for iter := 0; iter < cfg.maxIter; iter++ {
		prev.Copy(m)

		// Expansion: m = m^expansion.
		powered := mat.NewDense(n, n, nil)
		powered.Copy(m)
		for e := 1; e < cfg.expansion; e++ {
			var next mat.Dense
			next.Mul(powered, m)
			powered.Copy(&next)
		}
		m.Copy(powered)

		// Inflation: entrywise power, then renormalize columns.
		m.Apply(func(_, _ int, v float64) float64 {
			if v == 0 {
				return 0
			}

			return math.Pow(v, inflation)
		}, m)
		normalizeColumns(m)

		if maxDelta(m, prev) < cfg.epsilon {
			break
		}
	}

	// 4. Clusters from the converged support.
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for i := 0; i < n; i++ {
		if m.At(i, i) <= supportTol {
			continue // not an attractor
		}
		for j := 0; j < n; j++ {
			if m.At(i, j) > supportTol && labels[j] == -1 {
				labels[j] = i // lowest attractor wins
			}
		}
	}
	for j := 0; j < n; j++ {
		if labels[j] == -1 {
			labels[j] = j // no inbound flow anywhere: singleton
		}
	}

	// 5. Normalize attractor ids into labels by first appearance.
	next := 0
	byAttractor := make(map[int]int, n)
	out := make([]int, n)
	for j := 0; j < n; j++ {
		label, seen := byAttractor[labels[j]]
		if !seen {
			label = next
			byAttractor[labels[j]] = label
			next++
		}
		out[j] = label
	}

	return out, nil
}

// normalizeColumns scales every column to sum 1 (zero columns stay zero).
func normalizeColumns(m *mat.Dense) {
	r, c := m.Dims()
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += m.At(i, j)
		}
		if sum == 0 {
			continue
		}
		for i := 0; i < r; i++ {
			m.Set(i, j, m.At(i, j)/sum)
		}
	}
}

// maxDelta returns the largest absolute entrywise difference.
func maxDelta(a, b *mat.Dense) float64 {
	r, c := a.Dims()
	var max float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d := math.Abs(a.At(i, j) - b.At(i, j)); d > max {
				max = d
			}
		}
	}

	return max
}
