package incidence

import (
	"fmt"

	"github.com/katalvlaran/dwdecomp/problem"
)

// resolveSubset validates a constraint/variable subset against a catalog
// size and returns an owned copy. A nil subset selects the full range
// 0..limit-1. Out-of-range or duplicate indices fail with ErrInvalidInput.
func resolveSubset(limit int, idx []int) ([]int, error) {
	if idx == nil {
		out := make([]int, limit)
		for i := range out {
			out[i] = i
		}

		return out, nil
	}

	seen := make(map[int]struct{}, len(idx))
	out := make([]int, len(idx))
	for i, x := range idx {
		if x < 0 || x >= limit {
			return nil, fmt.Errorf("%w: index %d outside [0,%d)", ErrInvalidInput, x, limit)
		}
		if _, dup := seen[x]; dup {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrInvalidInput, x)
		}
		seen[x] = struct{}{}
		out[i] = x
	}

	return out, nil
}

// checkProblem rejects a nil or structurally invalid arena.
func checkProblem(p *problem.Problem) error {
	if p == nil {
		return fmt.Errorf("%w: nil problem", ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// positionMap inverts a subset slice: arena index → position in the subset.
func positionMap(subset []int) map[int]int {
	m := make(map[int]int, len(subset))
	for pos, x := range subset {
		m[x] = pos
	}

	return m
}
