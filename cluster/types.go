// Package cluster: sentinel errors and MCL tuning options.
package cluster

import "errors"

// Sentinel errors for clustering operations.
var (
	// ErrInvalidGraph indicates a nil or un-flushed input graph.
	ErrInvalidGraph = errors.New("cluster: graph must be non-nil and flushed")

	// ErrBadInflation indicates an MCL inflation factor ≤ 1.
	ErrBadInflation = errors.New("cluster: inflation factor must exceed 1")
)

// Defaults for the MCL iteration.
const (
	// DefaultExpansion is the matrix power applied per MCL round.
	DefaultExpansion = 2

	// DefaultMaxIterations caps the MCL rounds; the iteration budget is a
	// fixed cap, not a cancellation token.
	DefaultMaxIterations = 100

	// DefaultEpsilon is the max-entry-change convergence tolerance.
	DefaultEpsilon = 1e-6

	// supportTol is the cutoff below which a converged entry counts as zero
	// when reading clusters off the support.
	supportTol = 1e-6
)

// mclConfig collects the MCL knobs.
type mclConfig struct {
	expansion int
	maxIter   int
	epsilon   float64
}

// Option tunes the MCL iteration.
type Option func(*mclConfig)

// WithExpansion sets the matrix power per round (values < 2 are ignored).
func WithExpansion(e int) Option {
	return func(c *mclConfig) {
		if e >= 2 {
			c.expansion = e
		}
	}
}

// WithMaxIterations caps the number of rounds (values < 1 are ignored).
func WithMaxIterations(n int) Option {
	return func(c *mclConfig) {
		if n >= 1 {
			c.maxIter = n
		}
	}
}

// WithEpsilon sets the convergence tolerance (non-positive values ignored).
func WithEpsilon(eps float64) Option {
	return func(c *mclConfig) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

func defaultMclConfig() mclConfig {
	return mclConfig{
		expansion: DefaultExpansion,
		maxIter:   DefaultMaxIterations,
		epsilon:   DefaultEpsilon,
	}
}
