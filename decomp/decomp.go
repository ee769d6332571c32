package decomp

import (
	"fmt"
	"sort"
)

// Decomposition records one Dantzig-Wolfe block structure. All constraint
// and variable references are indices into the problem.Problem the
// decomposition was built against.
type Decomposition struct {
	presolved bool
	typ       Type
	detector  string

	blockConss   [][]int // per block, sorted constraint indices
	blockVars    [][]int // per block, sorted variable indices
	linkingConss []int
	linkingVars  []int
	stairlinking [][]int // per block b, variables shared only by b and b+1

	consToBlock map[int]int // constraint → block or Linking
	varToBlock  map[int]int // variable → block or Linking

	consIndex []int // stable ordering map for printing/export
	varIndex  []int
}

// New returns an empty decomposition: no blocks, no linking sets, type
// Unknown, presolved false.
func New() *Decomposition {
	return &Decomposition{
		consToBlock: make(map[int]int),
		varToBlock:  make(map[int]int),
	}
}

// NBlocks returns the number of pricing blocks.
func (d *Decomposition) NBlocks() int { return len(d.blockConss) }

// Type returns the current classification.
func (d *Decomposition) Type() Type { return d.typ }

// SetType validates the structural invariant of t against the current
// linking sets and commits it on success. On failure the decomposition is
// left unmodified — no partial mutation.
func (d *Decomposition) SetType(t Type) error {
	switch t {
	case Diagonal:
		if len(d.linkingConss) > 0 || len(d.linkingVars) > 0 {
			return fmt.Errorf("%w: diagonal with %d linking conss, %d linking vars",
				ErrInvalidType, len(d.linkingConss), len(d.linkingVars))
		}
	case Bordered:
		if len(d.linkingVars) > 0 {
			return fmt.Errorf("%w: bordered with %d linking vars", ErrInvalidType, len(d.linkingVars))
		}
	case Arrowhead:
		// Superset case: always valid.
	default:
		// Unknown (or out-of-range) is never a valid explicit target.
		return fmt.Errorf("%w: %v is not an assignable type", ErrInvalidType, t)
	}
	d.typ = t

	return nil
}

// classify picks the most specific type valid for the current linking sets.
func (d *Decomposition) classify() Type {
	switch {
	case len(d.linkingConss) == 0 && len(d.linkingVars) == 0:
		return Diagonal
	case len(d.linkingVars) == 0:
		return Bordered
	}

	return Arrowhead
}

// SetBlocks installs the per-block constraint and variable sets, replacing
// any previous block structure and rebuilding the index→block maps.
// Both slices must have equal length; indices must be non-negative and
// assigned to at most one block (ErrInvalidData otherwise, with the
// decomposition unmodified). Input sets are copied and sorted.
func (d *Decomposition) SetBlocks(blockConss, blockVars [][]int) error {
	if len(blockConss) != len(blockVars) {
		return fmt.Errorf("%w: %d constraint blocks vs %d variable blocks",
			ErrInvalidData, len(blockConss), len(blockVars))
	}

	conss, consMap, err := copyBlocks(blockConss)
	if err != nil {
		return err
	}
	vars, varMap, err := copyBlocks(blockVars)
	if err != nil {
		return err
	}

	d.blockConss = conss
	d.blockVars = vars
	d.consToBlock = consMap
	d.varToBlock = varMap
	d.stairlinking = make([][]int, len(conss))

	return nil
}

// copyBlocks deep-copies and sorts block index sets, building the
// index→block map and rejecting negative or doubly-assigned indices.
func copyBlocks(blocks [][]int) ([][]int, map[int]int, error) {
	out := make([][]int, len(blocks))
	owner := make(map[int]int)
	for b, set := range blocks {
		out[b] = make([]int, len(set))
		copy(out[b], set)
		sort.Ints(out[b])
		for _, idx := range out[b] {
			if idx < 0 {
				return nil, nil, fmt.Errorf("%w: negative index %d in block %d", ErrInvalidData, idx, b)
			}
			if prev, dup := owner[idx]; dup {
				return nil, nil, fmt.Errorf("%w: index %d in blocks %d and %d", ErrInvalidData, idx, prev, b)
			}
			owner[idx] = b
		}
	}

	return out, owner, nil
}

// SetLinkingConss installs the linking (master) constraint set. Indices
// already owned by a block are rejected with ErrInvalidData.
func (d *Decomposition) SetLinkingConss(conss []int) error {
	for _, ci := range conss {
		if b, owned := d.consToBlock[ci]; owned && b != Linking {
			return fmt.Errorf("%w: constraint %d already in block %d", ErrInvalidData, ci, b)
		}
	}
	d.linkingConss = append([]int(nil), conss...)
	for _, ci := range d.linkingConss {
		d.consToBlock[ci] = Linking
	}

	return nil
}

// SetLinkingVars installs the linking variable set. Indices already owned
// by a block are rejected with ErrInvalidData.
func (d *Decomposition) SetLinkingVars(vars []int) error {
	for _, vi := range vars {
		if b, owned := d.varToBlock[vi]; owned && b != Linking {
			return fmt.Errorf("%w: variable %d already in block %d", ErrInvalidData, vi, b)
		}
	}
	d.linkingVars = append([]int(nil), vars...)
	for _, vi := range d.linkingVars {
		d.varToBlock[vi] = Linking
	}

	return nil
}

// SetStairlinkingVars records the variables shared only by blocks b and
// b+1. Fails with ErrInvalidData when b is not a valid leading block.
func (d *Decomposition) SetStairlinkingVars(b int, vars []int) error {
	if b < 0 || b >= d.NBlocks()-1 {
		return fmt.Errorf("%w: stairlinking block %d of %d", ErrInvalidData, b, d.NBlocks())
	}
	d.stairlinking[b] = append([]int(nil), vars...)
	sort.Ints(d.stairlinking[b])

	return nil
}

// BlockConss returns the sorted constraint indices of block b
// (read-only by convention).
func (d *Decomposition) BlockConss(b int) ([]int, error) {
	if b < 0 || b >= d.NBlocks() {
		return nil, fmt.Errorf("%w: block %d of %d", ErrInvalidData, b, d.NBlocks())
	}

	return d.blockConss[b], nil
}

// BlockVars returns the sorted variable indices of block b.
func (d *Decomposition) BlockVars(b int) ([]int, error) {
	if b < 0 || b >= d.NBlocks() {
		return nil, fmt.Errorf("%w: block %d of %d", ErrInvalidData, b, d.NBlocks())
	}

	return d.blockVars[b], nil
}

// StairlinkingVars returns the variables shared only by blocks b and b+1.
func (d *Decomposition) StairlinkingVars(b int) ([]int, error) {
	if b < 0 || b >= d.NBlocks() {
		return nil, fmt.Errorf("%w: block %d of %d", ErrInvalidData, b, d.NBlocks())
	}
	if b == d.NBlocks()-1 {
		return nil, nil // the last block has no successor
	}

	return d.stairlinking[b], nil
}

// LinkingConss returns the linking (master) constraint indices.
func (d *Decomposition) LinkingConss() []int { return d.linkingConss }

// NLinkingConss returns the number of linking constraints.
func (d *Decomposition) NLinkingConss() int { return len(d.linkingConss) }

// LinkingVars returns the linking variable indices.
func (d *Decomposition) LinkingVars() []int { return d.linkingVars }

// NLinkingVars returns the number of linking variables.
func (d *Decomposition) NLinkingVars() int { return len(d.linkingVars) }

// ConsBlock returns the owning block of a constraint (Linking for master
// constraints); ok is false for unassigned constraints.
func (d *Decomposition) ConsBlock(ci int) (block int, ok bool) {
	block, ok = d.consToBlock[ci]

	return block, ok
}

// VarBlock returns the owning block of a variable (Linking for linking
// variables); ok is false for unassigned variables.
func (d *Decomposition) VarBlock(vi int) (block int, ok bool) {
	block, ok = d.varToBlock[vi]

	return block, ok
}

// Presolved reports whether this decomposition applies to the presolved
// problem.
func (d *Decomposition) Presolved() bool { return d.presolved }

// SetPresolved marks the decomposition as built against the presolved (or
// original) problem.
func (d *Decomposition) SetPresolved(presolved bool) { d.presolved = presolved }

// Detector names the originating detection algorithm ("" when constructed
// directly, e.g. from a user-specified master-constraint set).
func (d *Decomposition) Detector() string { return d.detector }

// SetDetector records the originating detector name.
func (d *Decomposition) SetDetector(name string) { d.detector = name }

// ConsIndex returns the stable constraint-ordering map (nil when unset).
func (d *Decomposition) ConsIndex() []int { return d.consIndex }

// SetConsIndex installs the stable constraint-ordering map.
func (d *Decomposition) SetConsIndex(index []int) {
	d.consIndex = append([]int(nil), index...)
}

// VarIndex returns the stable variable-ordering map (nil when unset).
func (d *Decomposition) VarIndex() []int { return d.varIndex }

// SetVarIndex installs the stable variable-ordering map.
func (d *Decomposition) SetVarIndex(index []int) {
	d.varIndex = append([]int(nil), index...)
}
