package hypergraph

import "sort"

// Engine is the pluggable low-level adjacency backend behind a Graph.
//
// Implementations store pairwise adjacency only; hyperedge membership is
// kept by the Graph itself (hyperedges reach the engine as cliques).
// AddNode/AddEdge are incremental; Flush commits pending work and must be
// idempotent. Neighbors is only valid after Flush.
type Engine interface {
	// AddNode registers a node with the given weight and returns its id.
	// Ids are dense and 0-based in insertion order.
	AddNode(weight float64) int

	// AddEdge registers an undirected edge. Parallel registrations of the
	// same pair accumulate weight but count as one adjacency. Fails with
	// ErrNodeNotFound for unknown ids and ErrSelfLoop for u == v.
	AddEdge(u, v int, weight float64) error

	// Flush commits pending edges into the queryable adjacency structure.
	Flush() error

	// NNodes returns the number of registered nodes.
	NNodes() int

	// NEdges returns the number of distinct committed adjacencies.
	NEdges() int

	// Neighbors returns the sorted distinct neighbor ids of a node,
	// excluding the node itself. Fails with ErrNotFlushed before Flush.
	Neighbors(id int) ([]int, error)

	// EdgeWeight returns the accumulated weight of the (u,v) adjacency
	// and whether it exists. Only valid after Flush.
	EdgeWeight(u, v int) (float64, bool)

	// NodeWeight returns the weight a node was registered with.
	NodeWeight(id int) (float64, error)
}

// pendingEdge is an edge recorded before Flush.
type pendingEdge struct {
	u, v   int
	weight float64
}

// CliqueEngine is the default adjacency backend: per-node neighbor sets
// with accumulated pair weights. Hyperedges handed down as cliques make
// Neighbors return every node reachable through a shared hyperedge.
type CliqueEngine struct {
	weights []float64
	pending []pendingEdge
	adj     []map[int]float64 // committed adjacency, symmetric
	nEdges  int               // distinct pairs
	flushed bool
}

// NewCliqueEngine returns an empty clique-expansion backend.
func NewCliqueEngine() *CliqueEngine {
	return &CliqueEngine{}
}

// AddNode registers a node and returns its dense id.
func (e *CliqueEngine) AddNode(weight float64) int {
	e.weights = append(e.weights, weight)
	e.flushed = false

	return len(e.weights) - 1
}

// AddEdge queues an undirected edge for the next Flush.
func (e *CliqueEngine) AddEdge(u, v int, weight float64) error {
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

// Flush commits pending edges into the adjacency sets. Idempotent.
// Complexity: O(pending) amortized.
func (e *CliqueEngine) Flush() error {
	// Grow adjacency to cover nodes added since the last Flush.
	for len(e.adj) < len(e.weights) {
		e.adj = append(e.adj, make(map[int]float64))
	}
	for _, pe := range e.pending {
		if _, dup := e.adj[pe.u][pe.v]; !dup {
			e.nEdges++
		}
		e.adj[pe.u][pe.v] += pe.weight
		e.adj[pe.v][pe.u] += pe.weight
	}
	e.pending = e.pending[:0]
	e.flushed = true

	return nil
}

// NNodes returns the number of registered nodes.
func (e *CliqueEngine) NNodes() int { return len(e.weights) }

// NEdges returns the number of distinct committed pairs.
func (e *CliqueEngine) NEdges() int { return e.nEdges }

// Neighbors returns the sorted distinct neighbors of id.
func (e *CliqueEngine) Neighbors(id int) ([]int, error) {
	if !e.flushed {
		return nil, ErrNotFlushed
	}
	if id < 0 || id >= len(e.adj) {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(e.adj[id]))
	for n := range e.adj[id] {
		out = append(out, n)
	}
	sort.Ints(out)

	return out, nil
}

// EdgeWeight returns the accumulated weight of pair (u,v).
func (e *CliqueEngine) EdgeWeight(u, v int) (float64, bool) {
	if u < 0 || u >= len(e.adj) {
		return 0, false
	}
	w, ok := e.adj[u][v]

	return w, ok
}

// NodeWeight returns the registration weight of a node.
func (e *CliqueEngine) NodeWeight(id int) (float64, error) {
	if id < 0 || id >= len(e.weights) {
		return 0, ErrNodeNotFound
	}

	return e.weights[id], nil
}
