package problem

import (
	"fmt"
	"sort"
)

// Problem is the arena every dwdecomp package indexes into.
//
// Vars and Conss are owned by the caller that builds the Problem (typically
// a file reader or the surrounding solver); decomposition and graph
// structures hold integer indices only and never copy the catalogs.
type Problem struct {
	// Name labels the model (file stem or caller-chosen).
	Name string

	// Vars is the variable catalog; index = variable handle.
	Vars []Variable

	// Conss is the constraint catalog; index = constraint handle.
	Conss []Constraint
}

// NVars returns the number of variables.
func (p *Problem) NVars() int { return len(p.Vars) }

// NConss returns the number of constraints.
func (p *Problem) NConss() int { return len(p.Conss) }

// Validate checks structural consistency of the arena:
// parallel-slice lengths, variable index ranges, and name uniqueness.
//
// Returns the first violation found, wrapped with the offending constraint
// or name. Complexity: O(V + E) where E is the total nonzero count.
func (p *Problem) Validate() error {
	// 1. Every constraint row must be rectangular and in range.
	for ci := range p.Conss {
		c := &p.Conss[ci]
		if len(c.Vars) != len(c.Coefs) {
			return fmt.Errorf("constraint %q (index %d): %w", c.Name, ci, ErrRaggedRow)
		}
		for _, vi := range c.Vars {
			if vi < 0 || vi >= len(p.Vars) {
				return fmt.Errorf("constraint %q (index %d) references variable %d: %w", c.Name, ci, vi, ErrBadIndex)
			}
		}
	}

	// 2. Names must be unique within each catalog.
	seen := make(map[string]struct{}, len(p.Vars))
	for _, v := range p.Vars {
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("variable %q: %w", v.Name, ErrDuplicateName)
		}
		seen[v.Name] = struct{}{}
	}
	seen = make(map[string]struct{}, len(p.Conss))
	for _, c := range p.Conss {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("constraint %q: %w", c.Name, ErrDuplicateName)
		}
		seen[c.Name] = struct{}{}
	}

	return nil
}

// VarByName resolves a variable name to its index.
// Complexity: O(V) per call; use VarIndexer for repeated lookups.
func (p *Problem) VarByName(name string) (int, error) {
	for i := range p.Vars {
		if p.Vars[i].Name == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("variable %q: %w", name, ErrUnknownName)
}

// ConsByName resolves a constraint name to its index.
// Complexity: O(C) per call; use ConsIndexer for repeated lookups.
func (p *Problem) ConsByName(name string) (int, error) {
	for i := range p.Conss {
		if p.Conss[i].Name == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("constraint %q: %w", name, ErrUnknownName)
}

// VarIndexer returns a name→index map over the variable catalog.
func (p *Problem) VarIndexer() map[string]int {
	m := make(map[string]int, len(p.Vars))
	for i := range p.Vars {
		m[p.Vars[i].Name] = i
	}

	return m
}

// ConsIndexer returns a name→index map over the constraint catalog.
func (p *Problem) ConsIndexer() map[string]int {
	m := make(map[string]int, len(p.Conss))
	for i := range p.Conss {
		m[p.Conss[i].Name] = i
	}

	return m
}

// VarIncidence builds, for every variable, the sorted list of constraint
// indices whose rows contain it. The result is freshly allocated on each
// call; callers that need it repeatedly should cache it.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func (p *Problem) VarIncidence() [][]int {
	inc := make([][]int, len(p.Vars))
	for ci := range p.Conss {
		for _, vi := range p.Conss[ci].Vars {
			inc[vi] = append(inc[vi], ci)
		}
	}
	// Sort and deduplicate each list so downstream union-find and signature
	// code can rely on deterministic order.
	for vi := range inc {
		sort.Ints(inc[vi])
		inc[vi] = dedupSorted(inc[vi])
	}

	return inc
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, x := range s[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
