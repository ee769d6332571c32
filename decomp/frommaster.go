package decomp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dwdecomp/problem"
)

// FromMasterConss builds a decomposition purely from a designated set of
// master constraints.
//
// Steps:
//  1. Remove the designated constraints from consideration.
//  2. Union-find (path compression, union by rank) over the remaining
//     constraints, joining two whenever they share a variable.
//  3. Each connected component becomes one block, holding its constraints
//     and their exclusively-owned variables; blocks are numbered by their
//     smallest constraint index.
//  4. Variables touched by several blocks — or appearing only in master
//     constraints — become linking variables.
//  5. linkingConss = the input set; the most specific valid type is
//     assigned automatically.
//
// The caller is responsible for a duplicate-free master set; indices are
// range-checked (ErrInvalidData). Complexity: O(C + V + E·α(C)).
func FromMasterConss(p *problem.Problem, master []int) (*Decomposition, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrInvalidData)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	isMaster := make(map[int]struct{}, len(master))
	for _, ci := range master {
		if ci < 0 || ci >= p.NConss() {
			return nil, fmt.Errorf("%w: master constraint %d outside [0,%d)", ErrInvalidData, ci, p.NConss())
		}
		isMaster[ci] = struct{}{}
	}

	// 2. Union-find over non-master constraints sharing a variable.
	parent := make([]int, p.NConss())
	rank := make([]int, p.NConss())
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	incidence := p.VarIncidence()
	for vi := range incidence {
		first := -1
		for _, ci := range incidence[vi] {
			if _, skip := isMaster[ci]; skip {
				continue
			}
			if first < 0 {
				first = ci
			} else {
				union(first, ci)
			}
		}
	}

	// 3. Components → blocks, numbered by smallest constraint index.
	blockOf := make(map[int]int) // component root → block
	var blockConss [][]int
	for ci := 0; ci < p.NConss(); ci++ {
		if _, skip := isMaster[ci]; skip {
			continue
		}
		root := find(ci)
		b, seen := blockOf[root]
		if !seen {
			b = len(blockConss)
			blockOf[root] = b
			blockConss = append(blockConss, nil)
		}
		blockConss[b] = append(blockConss[b], ci)
	}

	// 4. Classify variables: exactly one touched block → block variable;
	//    several blocks, or master-only, → linking variable.
	blockVars := make([][]int, len(blockConss))
	var linkingVars []int
	for vi := range incidence {
		if len(incidence[vi]) == 0 {
			continue // not in any constraint: leave unassigned
		}
		owner := -1
		multi := false
		for _, ci := range incidence[vi] {
			if _, skip := isMaster[ci]; skip {
				continue
			}
			b := blockOf[find(ci)]
			if owner < 0 {
				owner = b
			} else if owner != b {
				multi = true

				break
			}
		}
		switch {
		case multi, owner < 0:
			linkingVars = append(linkingVars, vi)
		default:
			blockVars[owner] = append(blockVars[owner], vi)
		}
	}

	d := New()
	if err := d.SetBlocks(blockConss, blockVars); err != nil {
		return nil, err
	}
	masterCopy := append([]int(nil), master...)
	if err := d.SetLinkingConss(masterCopy); err != nil {
		return nil, err
	}
	if err := d.SetLinkingVars(linkingVars); err != nil {
		return nil, err
	}
	d.typ = d.classify()

	return d, nil
}

// AssignStairlinking reclassifies every linking variable whose touched
// blocks are exactly {b, b+1} into the staircase set of block b. Linking
// variables touching non-consecutive or more than two blocks, or master
// constraints only, stay linking.
//
// Returns the number of variables moved. Complexity: O(V + E).
func (d *Decomposition) AssignStairlinking(p *problem.Problem) (int, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: nil problem", ErrInvalidData)
	}
	if d.NBlocks() < 2 || len(d.linkingVars) == 0 {
		return 0, nil
	}

	incidence := p.VarIncidence()
	moved := 0
	remaining := d.linkingVars[:0]
	for _, vi := range d.linkingVars {
		if vi < 0 || vi >= len(incidence) {
			return moved, fmt.Errorf("%w: linking variable %d outside [0,%d)", ErrInvalidData, vi, len(incidence))
		}
		blocks := map[int]struct{}{}
		for _, ci := range incidence[vi] {
			if b, ok := d.consToBlock[ci]; ok && b != Linking {
				blocks[b] = struct{}{}
			}
		}
		if len(blocks) == 2 {
			lo, hi := -1, -1
			for b := range blocks {
				if lo < 0 || b < lo {
					lo = b
				}
				if b > hi {
					hi = b
				}
			}
			if hi == lo+1 {
				d.stairlinking[lo] = append(d.stairlinking[lo], vi)
				moved++

				continue
			}
		}
		remaining = append(remaining, vi)
	}
	d.linkingVars = remaining
	for b := range d.stairlinking {
		sort.Ints(d.stairlinking[b])
	}

	return moved, nil
}
