// Package problem holds the solver-owned arena of variables and constraints
// that every other dwdecomp package references by integer index.
//
// What:
//
//   - Variable: name, objective coefficient, bounds, and kind (binary,
//     integer, implicit-integer, continuous).
//   - Constraint: name, left/right hand sides, and a sparse row of
//     (variable index, coefficient) pairs.
//   - Problem: the two parallel catalogs plus derived lookups — name
//     resolution and the variable→constraint incidence used by
//     decomposition construction and aggregation.
//
// Why:
//
//   - Decompositions, graph builders and aggregation never own variables or
//     constraints; they carry integer handles into one Problem. This mirrors
//     how a surrounding branch-and-price solver owns the model while the
//     structure-detection layer merely annotates it.
//
// Errors:
//
//   - ErrBadIndex: a constraint references a variable index out of range.
//   - ErrRaggedRow: a constraint's Vars and Coefs slices differ in length.
//   - ErrDuplicateName: two variables or two constraints share a name.
//
// All types are plain value containers without internal locking; callers
// must serialize concurrent mutation.
package problem
