package hypergraph

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// MatrixEngine is the dense adjacency backend, storing committed edges in a
// symmetric gonum matrix. It trades memory (O(V²)) for constant-time weight
// lookup and direct reuse of the adjacency by linear-algebra consumers
// (Markov clustering operates on the same representation).
type MatrixEngine struct {
	weights []float64
	pending []pendingEdge
	adj     *mat.Dense
	nEdges  int
	flushed bool
}

// NewMatrixEngine returns an empty dense-matrix backend.
func NewMatrixEngine() *MatrixEngine {
	return &MatrixEngine{}
}

// AddNode registers a node and returns its dense id.
func (e *MatrixEngine) AddNode(weight float64) int {
	e.weights = append(e.weights, weight)
	e.flushed = false

	return len(e.weights) - 1
}

// AddEdge queues an undirected edge for the next Flush.
func (e *MatrixEngine) AddEdge(u, v int, weight float64) error {
	if u < 0 || u >= len(e.weights) || v < 0 || v >= len(e.weights) {
		return ErrNodeNotFound
	}
	if u == v {
		return ErrSelfLoop
	}
	e.pending = append(e.pending, pendingEdge{u: u, v: v, weight: weight})
	e.flushed = false

	return nil
}

// Flush commits pending edges into the dense matrix, growing it if nodes
// were added since the previous Flush. Idempotent.
// Complexity: O(V² + pending) on growth, O(pending) otherwise.
func (e *MatrixEngine) Flush() error {
	n := len(e.weights)
	if e.adj == nil {
		if n > 0 {
			e.adj = mat.NewDense(n, n, nil)
		}
	} else if r, _ := e.adj.Dims(); r < n {
		grown := mat.NewDense(n, n, nil)
		grown.Slice(0, r, 0, r).(*mat.Dense).Copy(e.adj)
		e.adj = grown
	}
	for _, pe := range e.pending {
		if e.adj.At(pe.u, pe.v) == 0 {
			e.nEdges++
		}
		e.adj.Set(pe.u, pe.v, e.adj.At(pe.u, pe.v)+pe.weight)
		e.adj.Set(pe.v, pe.u, e.adj.At(pe.v, pe.u)+pe.weight)
	}
	e.pending = e.pending[:0]
	e.flushed = true

	return nil
}

// NNodes returns the number of registered nodes.
func (e *MatrixEngine) NNodes() int { return len(e.weights) }

// NEdges returns the number of distinct committed pairs.
func (e *MatrixEngine) NEdges() int { return e.nEdges }

// Neighbors returns the sorted ids with nonzero adjacency to id.
func (e *MatrixEngine) Neighbors(id int) ([]int, error) {
	if !e.flushed {
		return nil, ErrNotFlushed
	}
	if id < 0 || id >= len(e.weights) {
		return nil, ErrNodeNotFound
	}
	var out []int
	if e.adj != nil {
		row := e.adj.RawRowView(id)
		for j, w := range row {
			if w != 0 && j != id {
				out = append(out, j)
			}
		}
	}
	sort.Ints(out)

	return out, nil
}

// EdgeWeight returns the accumulated weight of pair (u,v).
func (e *MatrixEngine) EdgeWeight(u, v int) (float64, bool) {
	if e.adj == nil || u < 0 || v < 0 {
		return 0, false
	}
	if r, _ := e.adj.Dims(); u >= r || v >= r {
		return 0, false
	}
	w := e.adj.At(u, v)

	return w, w != 0
}

// NodeWeight returns the registration weight of a node.
func (e *MatrixEngine) NodeWeight(id int) (float64, error) {
	if id < 0 || id >= len(e.weights) {
		return 0, ErrNodeNotFound
	}

	return e.weights[id], nil
}

// Adjacency exposes the committed dense matrix (nil before the first Flush
// of a non-empty graph). Consumers must treat it as read-only.
func (e *MatrixEngine) Adjacency() *mat.Dense { return e.adj }
