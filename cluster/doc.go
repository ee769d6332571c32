// Package cluster provides the clustering primitives used to turn a
// weighted similarity graph into candidate block assignments.
//
// What:
//
//   - MST: single-linkage clustering — a maximum spanning tree over the
//     pairwise adjacency (Kruskal with union-find), then removal of tree
//     edges whose weight falls below a cut threshold; the surviving
//     connected components are the clusters.
//   - MCL: Markov clustering — repeated expansion (matrix power) and
//     inflation (entrywise power + column renormalization) of the
//     column-stochastic adjacency matrix until convergence, with clusters
//     read off the converged support. Built on gonum/mat.
//
// Both return one non-negative cluster label per node, normalized by first
// appearance (node 0's cluster is 0, the next new cluster 1, and so on),
// so equal inputs yield identical label sequences.
//
// Weights are treated as similarities: heavier edges bind nodes more
// strongly, and MST's threshold cuts edges strictly below it.
//
// Errors:
//
//   - ErrInvalidGraph: nil or un-flushed input graph.
//   - ErrBadInflation: MCL inflation factor not greater than 1.
package cluster
