// Package hypergraph provides the generic incremental graph/hypergraph
// container used by every structure-detection graph in dwdecomp.
//
// What:
//
//   - Graph: dense 0-based node ids with weights, plain edges and
//     hyperedges (≥2 nodes), built incrementally and committed by Flush().
//   - Engine: the pluggable low-level adjacency backend. CliqueEngine
//     expands hyperedges into cliques over sorted adjacency sets;
//     MatrixEngine keeps a dense gonum adjacency matrix.
//   - Partition labels per node (single- or multi-assignment) with
//     plain-text read/write in node order.
//
// Why:
//
//   - Structure detection builds several graph views of one constraint
//     matrix (bipartite, row, column, hyper-row-column) and hands them to
//     external partitioners; all views share this one container.
//
// Lifecycle:
//
//	New → AddNode/AddEdge/AddHyperedge (incremental) → Flush (commit,
//	idempotent) → read-only queries / partition import-export.
//
// Queries before Flush fail with ErrNotFlushed. Adding after Flush is
// permitted and simply requires another Flush before querying.
//
// Errors:
//
//   - ErrNotFlushed: a query or export ran before Flush committed the graph.
//   - ErrNodeNotFound: an edge or query referenced a node id never added.
//   - ErrEdgeNotFound: a hyperedge index is out of range.
//   - ErrSelfLoop: AddEdge with identical endpoints.
//   - ErrSmallHyperedge: a hyperedge with fewer than two distinct nodes.
//   - ErrBadLabel: a negative partition label.
//   - ErrRead: a partition file is missing, truncated, or malformed.
//
// Instances carry no internal locking; callers must serialize access.
package hypergraph
