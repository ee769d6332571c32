// Package problem defines the variable/constraint arena types and the
// sentinel errors raised by Problem validation.
package problem

import "errors"

// Sentinel errors for arena validation.
var (
	// ErrBadIndex indicates a constraint references a variable index outside [0, len(Vars)).
	ErrBadIndex = errors.New("problem: variable index out of range")

	// ErrRaggedRow indicates a constraint whose Vars and Coefs slices differ in length.
	ErrRaggedRow = errors.New("problem: constraint Vars/Coefs length mismatch")

	// ErrDuplicateName indicates two variables or two constraints carry the same name.
	ErrDuplicateName = errors.New("problem: duplicate name")

	// ErrUnknownName indicates a name lookup found no matching variable or constraint.
	ErrUnknownName = errors.New("problem: unknown name")
)

// VarType classifies a variable's domain kind.
type VarType int

const (
	// Binary marks a {0,1} variable.
	Binary VarType = iota

	// Integer marks a general integer variable.
	Integer

	// Implicit marks an implicit-integer variable (continuous in the
	// relaxation, integral in every optimal solution).
	Implicit

	// Continuous marks a continuous variable.
	Continuous
)

// String returns the lowercase kind name, or "unknown" for out-of-range values.
func (t VarType) String() string {
	switch t {
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	case Implicit:
		return "implicit"
	case Continuous:
		return "continuous"
	}

	return "unknown"
}

// Variable is one column of the model.
//
// Obj is the objective coefficient; Lb/Ub the domain bounds. The zero value
// is a continuous variable fixed at 0 — callers building models by hand
// should set bounds explicitly.
type Variable struct {
	// Name uniquely identifies the variable within its Problem.
	Name string

	// Obj is the objective-function coefficient.
	Obj float64

	// Lb is the lower bound.
	Lb float64

	// Ub is the upper bound.
	Ub float64

	// Type is the domain kind.
	Type VarType
}

// Constraint is one row of the model, stored sparsely.
//
// Vars and Coefs are parallel: Coefs[i] is the coefficient of variable
// Vars[i]. Lhs/Rhs encode the row activity range (Lhs == Rhs for an
// equation; -inf / +inf for one-sided rows).
type Constraint struct {
	// Name uniquely identifies the constraint within its Problem.
	Name string

	// Lhs is the lower activity bound (left-hand side).
	Lhs float64

	// Rhs is the upper activity bound (right-hand side).
	Rhs float64

	// Vars lists the indices of variables with nonzero coefficients.
	Vars []int

	// Coefs lists the coefficients, parallel to Vars.
	Coefs []float64
}
