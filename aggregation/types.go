// Package aggregation: sentinel errors and the aggregation result record.
package aggregation

import "errors"

// ErrInvalidInput indicates a nil or inconsistent problem/decomposition.
var ErrInvalidInput = errors.New("aggregation: invalid input")

// Info records the outcome of Aggregate for every block of one
// decomposition. Blocks with the same representative form one identity
// class; only the representative's pricing problem needs to be solved.
type Info struct {
	representative []int // per block, the class representative (lowest index)
	nIdentical     []int // class size on representatives, 0 elsewhere
}

// NBlocks returns the number of blocks the info covers.
func (in *Info) NBlocks() int { return len(in.representative) }

// Representative returns the identity-class representative of block b.
// A block that matched nothing is its own representative.
func (in *Info) Representative(b int) int { return in.representative[b] }

// NIdentical returns the size of block b's identity class when b is the
// representative, and 0 when b was aggregated into an earlier block.
func (in *Info) NIdentical(b int) int { return in.nIdentical[b] }

// IsPricingRelevant reports whether block b's pricing problem must be
// solved independently: true exactly for class representatives.
func (in *Info) IsPricingRelevant(b int) bool { return in.representative[b] == b }
