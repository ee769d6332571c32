package hypergraph

import "sort"

// Graph is the incremental graph/hypergraph container.
//
// Nodes carry weights and dense 0-based ids. Plain edges are stored as
// 2-node hyperedges so cut metrics and export see one uniform edge list;
// pairwise adjacency (for Neighbors) is delegated to the Engine, with
// hyperedges expanded into cliques.
type Graph struct {
	eng Engine

	hyperedges []Hyperedge // committed, Nodes sorted
	pending    []Hyperedge // recorded since last Flush

	labels  [][]int // partition labels per node; nil = unset
	flushed bool
}

// New creates an empty Graph. The default backend is NewCliqueEngine;
// use WithMatrixEngine or WithEngine to swap it.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.eng == nil {
		g.eng = NewCliqueEngine()
	}

	return g
}

// AddNode registers a node with the given weight and returns its id.
func (g *Graph) AddNode(weight float64) int {
	g.flushed = false
	g.labels = append(g.labels, nil)

	return g.eng.AddNode(weight)
}

// AddNodes registers k nodes of weight 1 and returns the first new id.
func (g *Graph) AddNodes(k int) int {
	first := g.NNodes()
	for i := 0; i < k; i++ {
		g.AddNode(1)
	}

	return first
}

// AddEdge records a plain undirected edge as a 2-node hyperedge.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	return g.AddHyperedge([]int{u, v}, weight)
}

// AddHyperedge records a hyperedge over the given node set.
//
// The set is copied, sorted, and deduplicated; fewer than two distinct
// members fail with ErrSmallHyperedge, unknown ids with ErrNodeNotFound.
// The member clique is forwarded to the engine for neighbor queries.
func (g *Graph) AddHyperedge(nodes []int, weight float64) error {
	members := make([]int, len(nodes))
	copy(members, nodes)
	sort.Ints(members)
	members = dedupSorted(members)

	if len(members) < 2 {
		return ErrSmallHyperedge
	}
	for _, id := range members {
		if id < 0 || id >= g.NNodes() {
			return ErrNodeNotFound
		}
	}

	// Clique expansion keeps the engine's pairwise adjacency in sync with
	// hyperedge reachability.
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if err := g.eng.AddEdge(members[i], members[j], weight); err != nil {
				return err
			}
		}
	}
	g.pending = append(g.pending, Hyperedge{Nodes: members, Weight: weight})
	g.flushed = false

	return nil
}

// Flush commits all pending nodes and edges. Idempotent; must run before
// any query, metric, or export. Complexity: O(pending work).
func (g *Graph) Flush() error {
	if g.flushed {
		return nil
	}
	if err := g.eng.Flush(); err != nil {
		return err
	}
	g.hyperedges = append(g.hyperedges, g.pending...)
	g.pending = g.pending[:0]
	g.flushed = true

	return nil
}

// Flushed reports whether the graph is committed and queryable.
func (g *Graph) Flushed() bool { return g.flushed }

// NNodes returns the number of registered nodes.
func (g *Graph) NNodes() int { return g.eng.NNodes() }

// NEdges returns the number of committed hyperedges (plain edges included).
func (g *Graph) NEdges() int { return len(g.hyperedges) }

// Neighbors returns the sorted distinct ids reachable from id through any
// shared edge or hyperedge, excluding id itself.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.flushed {
		return nil, ErrNotFlushed
	}

	return g.eng.Neighbors(id)
}

// HyperedgeNodes returns the sorted member ids of hyperedge e.
func (g *Graph) HyperedgeNodes(e int) ([]int, error) {
	if !g.flushed {
		return nil, ErrNotFlushed
	}
	if e < 0 || e >= len(g.hyperedges) {
		return nil, ErrEdgeNotFound
	}

	return g.hyperedges[e].Nodes, nil
}

// HyperedgeWeight returns the weight of hyperedge e.
func (g *Graph) HyperedgeWeight(e int) (float64, error) {
	if !g.flushed {
		return 0, ErrNotFlushed
	}
	if e < 0 || e >= len(g.hyperedges) {
		return 0, ErrEdgeNotFound
	}

	return g.hyperedges[e].Weight, nil
}

// EdgeWeight returns the accumulated pairwise adjacency weight of (u,v).
func (g *Graph) EdgeWeight(u, v int) (float64, bool) {
	if !g.flushed {
		return 0, false
	}

	return g.eng.EdgeWeight(u, v)
}

// NodeWeight returns the weight node id was registered with.
func (g *Graph) NodeWeight(id int) (float64, error) {
	return g.eng.NodeWeight(id)
}

// Engine exposes the underlying adjacency backend (read-only by convention).
func (g *Graph) Engine() Engine { return g.eng }

// SetPartition assigns the single partition label of a node, replacing any
// labels set before (last write wins).
func (g *Graph) SetPartition(node, label int) error {
	if node < 0 || node >= g.NNodes() {
		return ErrNodeNotFound
	}
	if label < 0 {
		return ErrBadLabel
	}
	g.labels[node] = []int{label}

	return nil
}

// AddPartitionLabel adds a label to a node's label set without clearing
// earlier ones. Used by graph kinds where one row/column participates in
// several blocks after relaxation.
func (g *Graph) AddPartitionLabel(node, label int) error {
	if node < 0 || node >= g.NNodes() {
		return ErrNodeNotFound
	}
	if label < 0 {
		return ErrBadLabel
	}
	for _, l := range g.labels[node] {
		if l == label {
			return nil
		}
	}
	g.labels[node] = append(g.labels[node], label)
	sort.Ints(g.labels[node])

	return nil
}

// Partition returns the single-label view: one label per node in id order,
// -1 for unset nodes. Nodes with several labels report the smallest.
func (g *Graph) Partition() []int {
	out := make([]int, g.NNodes())
	for i := range out {
		if len(g.labels[i]) == 0 {
			out[i] = -1
		} else {
			out[i] = g.labels[i][0]
		}
	}

	return out
}

// PartitionLabels returns all labels of a node, sorted ascending
// (nil when unset).
func (g *Graph) PartitionLabels(node int) ([]int, error) {
	if node < 0 || node >= g.NNodes() {
		return nil, ErrNodeNotFound
	}

	return g.labels[node], nil
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, x := range s[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
