package decfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dwdecomp/decomp"
	"github.com/katalvlaran/dwdecomp/problem"
)

// ReadDec parses a .dec stream into its sections without resolving names.
func ReadDec(r io.Reader) (*DecFile, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	f := &DecFile{NBlocks: -1}
	const (
		stNone = iota
		stPresolved
		stNBlocks
		stBlock
		stMaster
	)
	state, curBlock := stNone, -1

	for _, ln := range lines {
		if kw, ok := keyword(ln); ok {
			switch kw {
			case kwPresolved:
				state = stPresolved
			case kwNBlocks:
				state = stNBlocks
			case kwBlock:
				if len(ln.fields) < 2 {
					return nil, errors.Wrapf(ErrSyntax, "line %d: BLOCK without index", ln.no)
				}
				b, perr := strconv.Atoi(ln.fields[1])
				if perr != nil || b < 1 {
					return nil, errors.Wrapf(ErrSyntax, "line %d: bad block index %q", ln.no, ln.fields[1])
				}
				if f.NBlocks >= 0 && b > f.NBlocks {
					return nil, errors.Wrapf(ErrSyntax, "line %d: block %d exceeds NBLOCKS %d", ln.no, b, f.NBlocks)
				}
				for len(f.BlockConss) < b {
					f.BlockConss = append(f.BlockConss, nil)
				}
				curBlock = b - 1
				state = stBlock
			case kwMasterConss:
				state = stMaster
			}

			continue
		}

		switch state {
		case stPresolved:
			switch ln.fields[0] {
			case "0":
				f.Presolved = false
			case "1":
				f.Presolved = true
			default:
				return nil, errors.Wrapf(ErrSyntax, "line %d: PRESOLVED wants 0 or 1, got %q", ln.no, ln.fields[0])
			}
		case stNBlocks:
			n, perr := strconv.Atoi(ln.fields[0])
			if perr != nil || n < 0 {
				return nil, errors.Wrapf(ErrSyntax, "line %d: bad block count %q", ln.no, ln.fields[0])
			}
			if len(f.BlockConss) > n {
				return nil, errors.Wrapf(ErrSyntax, "line %d: NBLOCKS %d below already-seen block %d", ln.no, n, len(f.BlockConss))
			}
			f.NBlocks = n
		case stBlock:
			f.BlockConss[curBlock] = append(f.BlockConss[curBlock], ln.fields...)
		case stMaster:
			f.MasterConss = append(f.MasterConss, ln.fields...)
		default:
			return nil, errors.Wrapf(ErrSyntax, "line %d: %q outside any section", ln.no, ln.fields[0])
		}
	}

	if f.NBlocks < 0 {
		return nil, errors.Wrap(ErrSyntax, "missing NBLOCKS section")
	}
	for len(f.BlockConss) < f.NBlocks {
		f.BlockConss = append(f.BlockConss, nil)
	}

	return f, nil
}

// ReadDecFile opens and parses path.
func ReadDecFile(path string) (*DecFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrRead, "open %s: %v", path, err)
	}
	defer fh.Close()

	f, err := ReadDec(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}

	return f, nil
}

// Apply resolves the file's constraint names against p and builds the
// decomposition: listed blocks keep their numbering, the MASTERCONSS
// section plus every unmentioned constraint form the master, and
// variables are classified from the resulting constraint assignment.
func (f *DecFile) Apply(p *problem.Problem) (*decomp.Decomposition, error) {
	if p == nil {
		return nil, errors.Wrap(ErrApply, "nil problem")
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(ErrApply, "problem: %v", err)
	}

	consBlock := make([]int, p.NConss()) // block index or decomp.Linking
	for ci := range consBlock {
		consBlock[ci] = decomp.Linking
	}
	assign := func(name string, b int) error {
		ci, err := p.ConsByName(name)
		if err != nil {
			return errors.Wrapf(ErrApply, "constraint %q: %v", name, err)
		}
		if prev := consBlock[ci]; prev != decomp.Linking {
			return errors.Wrapf(ErrApply, "constraint %q in blocks %d and %d", name, prev+1, b+1)
		}
		consBlock[ci] = b

		return nil
	}
	for b, names := range f.BlockConss {
		for _, name := range names {
			if err := assign(name, b); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range f.MasterConss {
		// Explicit master entries must exist and must not be block-owned.
		ci, err := p.ConsByName(name)
		if err != nil {
			return nil, errors.Wrapf(ErrApply, "master constraint %q: %v", name, err)
		}
		if consBlock[ci] != decomp.Linking {
			return nil, errors.Wrapf(ErrApply, "constraint %q is both master and in block %d", name, consBlock[ci]+1)
		}
	}

	blockConss := make([][]int, f.NBlocks)
	var master []int
	for ci, b := range consBlock {
		if b == decomp.Linking {
			master = append(master, ci)
		} else {
			blockConss[b] = append(blockConss[b], ci)
		}
	}

	d, err := assemble(p, blockConss, master)
	if err != nil {
		return nil, err
	}
	d.SetPresolved(f.Presolved)

	return d, nil
}

// assemble classifies variables from a fixed constraint assignment and
// builds the typed decomposition: a variable touched by exactly one block
// belongs to it, anything else that appears in a constraint is linking.
func assemble(p *problem.Problem, blockConss [][]int, master []int) (*decomp.Decomposition, error) {
	consBlock := make(map[int]int, p.NConss())
	for b, conss := range blockConss {
		for _, ci := range conss {
			consBlock[ci] = b
		}
	}

	blockVars := make([][]int, len(blockConss))
	var linkingVars []int
	for vi, conss := range p.VarIncidence() {
		if len(conss) == 0 {
			continue
		}
		owner, multi := -1, false
		for _, ci := range conss {
			b, inBlock := consBlock[ci]
			if !inBlock {
				continue
			}
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

	d := decomp.New()
	if err := d.SetBlocks(blockConss, blockVars); err != nil {
		return nil, errors.Wrapf(ErrApply, "blocks: %v", err)
	}
	if err := d.SetLinkingConss(master); err != nil {
		return nil, errors.Wrapf(ErrApply, "master: %v", err)
	}
	if err := d.SetLinkingVars(linkingVars); err != nil {
		return nil, errors.Wrapf(ErrApply, "linking variables: %v", err)
	}
	if err := setMostSpecificType(d); err != nil {
		return nil, err
	}

	return d, nil
}

// setMostSpecificType commits the tightest type the linking sets allow.
func setMostSpecificType(d *decomp.Decomposition) error {
	t := decomp.Arrowhead
	switch {
	case d.NLinkingConss() == 0 && d.NLinkingVars() == 0:
		t = decomp.Diagonal
	case d.NLinkingVars() == 0:
		t = decomp.Bordered
	}
	if err := d.SetType(t); err != nil {
		return errors.Wrapf(ErrApply, "type: %v", err)
	}

	return nil
}

// WriteDec emits p's decomposition d in canonical .dec section order:
// PRESOLVED, NBLOCKS, BLOCK 1..n, MASTERCONSS. A file written here reads
// back into an Equal decomposition.
func WriteDec(w io.Writer, p *problem.Problem, d *decomp.Decomposition) error {
	if p == nil || d == nil {
		return errors.Wrap(ErrApply, "nil problem or decomposition")
	}

	bw := bufio.NewWriter(w)
	presolved := 0
	if d.Presolved() {
		presolved = 1
	}
	fmt.Fprintf(bw, "%s\n%d\n", kwPresolved, presolved)
	fmt.Fprintf(bw, "%s\n%d\n", kwNBlocks, d.NBlocks())
	for b := 0; b < d.NBlocks(); b++ {
		conss, err := d.BlockConss(b)
		if err != nil {
			return errors.Wrapf(ErrApply, "block %d: %v", b+1, err)
		}
		fmt.Fprintf(bw, "%s %d\n", kwBlock, b+1)
		for _, ci := range conss {
			if ci >= p.NConss() {
				return errors.Wrapf(ErrApply, "block %d: constraint %d outside [0,%d)", b+1, ci, p.NConss())
			}
			fmt.Fprintln(bw, p.Conss[ci].Name)
		}
	}
	fmt.Fprintln(bw, kwMasterConss)
	for _, ci := range d.LinkingConss() {
		if ci < 0 || ci >= p.NConss() {
			return errors.Wrapf(ErrApply, "master: constraint %d outside [0,%d)", ci, p.NConss())
		}
		fmt.Fprintln(bw, p.Conss[ci].Name)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(ErrRead, "write: %v", err)
	}

	return nil
}
