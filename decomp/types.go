// Package decomp: the Type enum, sentinel errors, and shared constants.
package decomp

import "errors"

// Sentinel errors for decomposition operations.
var (
	// ErrInvalidType indicates a SetType target whose structural invariant
	// does not hold, or the Unknown target.
	ErrInvalidType = errors.New("decomp: invalid decomposition type for current linking sets")

	// ErrInvalidData indicates malformed or inconsistent block input.
	ErrInvalidData = errors.New("decomp: inconsistent decomposition data")
)

// Linking is the sentinel block index of linking constraints/variables.
const Linking = -1

// Type classifies the border structure of a decomposition.
type Type int

const (
	// Unknown is the initial, unclassified state.
	Unknown Type = iota

	// Arrowhead allows both linking constraints and linking variables.
	Arrowhead

	// Bordered allows linking constraints but no linking variables.
	Bordered

	// Diagonal allows neither linking constraints nor linking variables.
	Diagonal
)

// String returns the lowercase type name.
func (t Type) String() string {
	switch t {
	case Arrowhead:
		return "arrowhead"
	case Bordered:
		return "bordered"
	case Diagonal:
		return "diagonal"
	case Unknown:
		return "unknown"
	}

	return "invalid"
}
