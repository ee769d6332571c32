// Package dwdecomp is a toolkit for detecting, representing, and scoring
// Dantzig-Wolfe decompositions of mixed-integer programs.
//
// 🚀 What is dwdecomp?
//
//	A library (plus the dwdec CLI) that brings together:
//		• Problem arena: variables, constraints, and their sparse incidence
//		• Decomposition model: blocks, linking sets, staircase structure
//		• Structure graphs: bipartite, row, column, hyper-row-column
//		• Partitioner exchange: METIS/hMETIS-style file formats
//		• Cut metrics: mincut, SOED, k-metric over labeled hypergraphs
//		• Clustering: single-linkage (MST) and Markov clustering (MCL)
//		• Block aggregation: pricing-problem symmetry detection
//		• File formats: MPS instances, .dec/.blk decompositions
//
// Under the hood, everything is organized per concern:
//
//	problem/     — the constraint/variable arena all indices point into
//	hypergraph/  — incremental hypergraph with pluggable pairwise engines
//	incidence/   — graph builders over the constraint matrix + exports
//	cutmetric/   — partition quality scores
//	cluster/     — MST and MCL clustering over similarity graphs
//	decomp/      — the decomposition record and its invariants
//	aggregation/ — identical-block detection and deduplication
//	decfile/     — .dec and .blk readers/writer
//	mpsfile/     — MPS instance reader
//	cmd/dwdec/   — the command-line front end
//
// The typical flow: read an instance (mpsfile), build a structure graph
// (incidence), hand it to an external partitioner and read the labels
// back, score the cut (cutmetric) or cluster directly (cluster), then
// turn the grouping into a decomposition (decomp) and collapse identical
// pricing blocks (aggregation).
//
//	go get github.com/katalvlaran/dwdecomp
package dwdecomp
