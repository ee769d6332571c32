// Package incidence builds structure-detection graphs from the sparse
// incidence of a constraint matrix.
//
// What:
//
//   - Weights: the pure scoring function mapping constraint/variable kinds
//     to integer node weights used by every builder.
//   - Bipartite: variables and constraints as two node classes, one edge
//     per structural nonzero.
//   - RowGraph: constraints as nodes, one edge per shared variable.
//   - RowGraphWeighted: RowGraph with edge weight given by a similarity
//     measure between the two constraints' variable-index sets, plus
//     clustering entry points (single-linkage MST, Markov clustering).
//   - ColumnGraph: variables as nodes, edges from shared constraints.
//   - Hyperrowcol: constraints and variables in one node space, with one
//     hyperedge per constraint row and one per variable column.
//
// Each builder wraps a hypergraph.Graph: Build creates and flushes it from
// a problem.Problem (or a constraint/variable subset), WriteTo exports the
// partitioning-tool file format, and ReadPartition imports the resulting
// labels. Coefficient values are ignored — only the sparsity pattern
// matters — except in RowGraphWeighted, where the variable-index sets feed
// the similarity measure.
//
// Export formats (consumed by external graph partitioners):
//
//   - Simple graphs: first line "<nNodes> <nEdges>" (plus a format code
//     when weights are included), then one 1-based adjacency line per node.
//   - Hypergraphs: first line "<nNodes> <nEdges>", then one membership
//     line per hyperedge in canonical order, then one degree line per node.
//
// Errors:
//
//   - ErrInvalidInput: nil problem, out-of-range subset index, or a
//     duplicate subset entry.
//   - ErrNotBuilt: export or query before Build.
//   - ErrBadMeasure: unknown similarity measure or weight type.
package incidence
