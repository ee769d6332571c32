// Package aggregation detects structurally identical pricing blocks of a
// decomposition and deduplicates whole decompositions.
//
// Why:
//
// Blocks that are identical up to a renaming of their variables and
// constraints produce the same pricing problem. Solving one representative
// and accounting for the rest with a multiplicity factor is dramatically
// cheaper than solving every copy.
//
// What:
//
//   - Aggregate: groups blocks into identity classes. Two blocks are
//     identical when a bijection between their variables and between
//     their constraints preserves objective coefficients, variable types
//     and bounds, constraint sides, all intra-block coefficients, and the
//     coefficients each variable carries in the shared master
//     constraints. Candidate bijections come from iterated signature
//     refinement and are then verified exactly.
//   - Equal: whole-decomposition equality — same constraint partition up
//     to block renumbering and same linking-constraint set.
//   - FilterSimilar: stable in-place deduplication of a candidate list.
//
// The match search is exact in one direction only: a reported match is
// always a verified bijection, while an identical pair may go undetected
// when refinement cannot split a symmetry class unambiguously. Missing a
// match costs performance, never correctness.
//
// Errors:
//
//   - ErrInvalidInput: nil problem/decomposition, a problem that fails
//     validation, or block index sets out of the problem's range.
package aggregation
