// Package cutmetric evaluates partition quality over a flushed,
// partition-labeled hypergraph.
//
// For a hyperedge e with weight w(e), let k(e) be the number of distinct
// partition labels across e's nodes (the union of all labels when nodes
// carry several). The metrics are:
//
//	Mincut  = Σ_{k(e)≥2} w(e)          — weight of cut hyperedges.
//	SOED    = Σ_{k(e)≥2} w(e)·k(e)     — sum of external degrees.
//	KMetric = Σ          w(e)·(k(e)−1) — connectivity metric.
//
// Uncut hyperedges (k = 1) contribute nothing to any metric, so an empty
// or fully-interior partition scores (0, 0, 0), and for single-label
// partitions SOED = Mincut + KMetric always holds. Splitting one part into
// two can only increase every k(e), so each metric is monotonically
// non-decreasing under partition refinement.
//
// Errors:
//
//   - ErrInvalidGraph: nil or un-flushed graph.
//   - ErrUnpartitioned: a hyperedge touches a node with no label.
package cutmetric
