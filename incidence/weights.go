package incidence

import "github.com/katalvlaran/dwdecomp/problem"

// Weights maps constraint and variable kinds to the integer node weights
// used by every graph builder. Immutable once constructed; Variable and
// Constraint are pure selections with no failure modes.
type Weights struct {
	cons       int
	binary     int
	continuous int
	integer    int
	implicit   int
	base       int
}

// NewWeights constructs a weighting scheme. Negative parameters are
// clamped to zero — weights are non-negative by contract.
func NewWeights(cons, binary, continuous, integer, implicit, base int) Weights {
	clamp := func(w int) int {
		if w < 0 {
			return 0
		}

		return w
	}

	return Weights{
		cons:       clamp(cons),
		binary:     clamp(binary),
		continuous: clamp(continuous),
		integer:    clamp(integer),
		implicit:   clamp(implicit),
		base:       clamp(base),
	}
}

// DefaultWeights returns the uniform scheme (every weight 1).
func DefaultWeights() Weights {
	return NewWeights(1, 1, 1, 1, 1, 1)
}

// Variable returns the weight configured for the variable's kind, or the
// base weight for kinds outside the known enum.
func (w Weights) Variable(t problem.VarType) int {
	switch t {
	case problem.Binary:
		return w.binary
	case problem.Integer:
		return w.integer
	case problem.Implicit:
		return w.implicit
	case problem.Continuous:
		return w.continuous
	}

	return w.base
}

// Constraint returns the fixed constraint weight.
func (w Weights) Constraint() int { return w.cons }
