// Package hypergraph: sentinel errors, construction options and the
// Hyperedge value type. The container itself lives in hypergraph.go and
// the adjacency backends in engine.go / engine_matrix.go.
package hypergraph

import "errors"

// Sentinel errors for container operations.
var (
	// ErrNotFlushed indicates a query or export ran before Flush.
	ErrNotFlushed = errors.New("hypergraph: graph not flushed")

	// ErrNodeNotFound indicates a node id outside [0, NNodes).
	ErrNodeNotFound = errors.New("hypergraph: node id out of range")

	// ErrEdgeNotFound indicates a hyperedge index outside [0, NEdges).
	ErrEdgeNotFound = errors.New("hypergraph: hyperedge index out of range")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("hypergraph: self-loop not allowed")

	// ErrSmallHyperedge indicates a hyperedge with fewer than two distinct nodes.
	ErrSmallHyperedge = errors.New("hypergraph: hyperedge needs at least two distinct nodes")

	// ErrBadLabel indicates a negative partition label.
	ErrBadLabel = errors.New("hypergraph: partition label must be non-negative")

	// ErrRead indicates a missing, truncated, or malformed partition file.
	ErrRead = errors.New("hypergraph: partition read failed")
)

// Hyperedge is an unordered set of ≥2 distinct node ids with a weight.
// Nodes is kept sorted ascending after Flush for deterministic export.
type Hyperedge struct {
	// Nodes lists the member node ids.
	Nodes []int

	// Weight is the edge weight used by cut metrics and file export.
	Weight float64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithEngine installs a caller-supplied adjacency backend.
func WithEngine(e Engine) Option {
	return func(g *Graph) { g.eng = e }
}

// WithMatrixEngine selects the dense gonum-backed adjacency backend.
// The default is the clique-expansion backend (NewCliqueEngine).
func WithMatrixEngine() Option {
	return func(g *Graph) { g.eng = NewMatrixEngine() }
}
