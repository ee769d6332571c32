// Package mpsfile reads linear programs in MPS format into a
// problem.Problem.
//
// The supported subset covers what decomposition instances actually use:
// NAME, ROWS (N/L/G/E), COLUMNS with INTORG/INTEND integrality markers,
// RHS, RANGES, BOUNDS (UP, LO, FX, BV, MI, PL, LI, UI), and ENDATA.
// Both fixed- and free-form files parse, with one structural assumption:
// section headers start in the first column, data lines are indented.
// Comment lines start with "*".
//
// The first N row is the objective; its coefficients land on
// Variable.Obj and it is not stored as a constraint. Further N rows are
// skipped. Row senses and RANGES entries translate into [Lhs, Rhs]
// intervals with ±Infinity for open sides. An integer variable whose
// final bounds are [0, 1] is normalized to Binary.
//
// Watch out for data values that collide with keywords: an RHS set named
// "RHS" is a classic way to confuse any MPS reader, this one included.
//
// Errors wrap the ErrRead/ErrSyntax causes (github.com/pkg/errors) with
// line context.
package mpsfile
