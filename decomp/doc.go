// Package decomp models a Dantzig-Wolfe block structure over a
// problem.Problem arena: the per-block constraint/variable sets, the
// linking (master) constraints and variables, staircase-linking variables,
// and the structural classification of the whole decomposition.
//
// A Decomposition never owns variables or constraints — all fields are
// integer indices into the arena of the Problem it was built against.
//
// Construction:
//
//   - New: empty decomposition, type Unknown.
//   - FromMasterConss: given a designated master-constraint set, the
//     remaining constraints partition into connected components (joined by
//     shared variables, union-find with path compression); each component
//     becomes one block with its exclusively-owned variables, and every
//     variable spanning several blocks (or appearing only in master
//     constraints) becomes a linking variable.
//   - SetBlocks / SetLinkingConss / SetLinkingVars: direct population for
//     detectors and file readers.
//
// Classification invariants (enforced by SetType, which never partially
// mutates on failure):
//
//   - Diagonal: no linking constraints and no linking variables.
//   - Bordered: linking constraints allowed, linking variables forbidden.
//   - Arrowhead: anything goes (superset case).
//   - Unknown: valid only as the initial state, never an explicit target.
//
// Errors:
//
//   - ErrInvalidType: a SetType target whose invariant fails, or Unknown.
//   - ErrInvalidData: malformed block input (bad index, duplicate
//     assignment, block out of range).
//
// Instances carry no internal locking; callers must serialize access.
package decomp
