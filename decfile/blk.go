package decfile

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dwdecomp/decomp"
	"github.com/katalvlaran/dwdecomp/problem"
)

// ReadBlk parses a .blk stream: NBLOCKS, then one BLOCK section per block
// listing variable names.
func ReadBlk(r io.Reader) (*BlkFile, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	f := &BlkFile{NBlocks: -1}
	const (
		stNone = iota
		stNBlocks
		stBlock
	)
	state, curBlock := stNone, -1

	for _, ln := range lines {
		if kw, ok := keyword(ln); ok {
			switch kw {
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
				for len(f.BlockVars) < b {
					f.BlockVars = append(f.BlockVars, nil)
				}
				curBlock = b - 1
				state = stBlock
			default:
				return nil, errors.Wrapf(ErrSyntax, "line %d: unexpected section %s", ln.no, kw)
			}

			continue
		}

		switch state {
		case stNBlocks:
			n, perr := strconv.Atoi(ln.fields[0])
			if perr != nil || n < 0 {
				return nil, errors.Wrapf(ErrSyntax, "line %d: bad block count %q", ln.no, ln.fields[0])
			}
			if len(f.BlockVars) > n {
				return nil, errors.Wrapf(ErrSyntax, "line %d: NBLOCKS %d below already-seen block %d", ln.no, n, len(f.BlockVars))
			}
			f.NBlocks = n
		case stBlock:
			f.BlockVars[curBlock] = append(f.BlockVars[curBlock], ln.fields...)
		default:
			return nil, errors.Wrapf(ErrSyntax, "line %d: %q outside any section", ln.no, ln.fields[0])
		}
	}

	if f.NBlocks < 0 {
		return nil, errors.Wrap(ErrSyntax, "missing NBLOCKS section")
	}
	for len(f.BlockVars) < f.NBlocks {
		f.BlockVars = append(f.BlockVars, nil)
	}

	return f, nil
}

// ReadBlkFile opens and parses path.
func ReadBlkFile(path string) (*BlkFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrRead, "open %s: %v", path, err)
	}
	defer fh.Close()

	f, err := ReadBlk(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}

	return f, nil
}

// Apply resolves the file's variable names against p and derives the
// constraint assignment: a constraint joins block b when every one of its
// variables is assigned to b; every other constraint becomes master.
// Variables the file leaves unassigned end up linking when they appear in
// any constraint.
func (f *BlkFile) Apply(p *problem.Problem) (*decomp.Decomposition, error) {
	if p == nil {
		return nil, errors.Wrap(ErrApply, "nil problem")
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(ErrApply, "problem: %v", err)
	}

	varBlock := make([]int, p.NVars()) // block index or decomp.Linking
	for vi := range varBlock {
		varBlock[vi] = decomp.Linking
	}
	for b, names := range f.BlockVars {
		for _, name := range names {
			vi, err := p.VarByName(name)
			if err != nil {
				return nil, errors.Wrapf(ErrApply, "variable %q: %v", name, err)
			}
			if prev := varBlock[vi]; prev != decomp.Linking {
				return nil, errors.Wrapf(ErrApply, "variable %q in blocks %d and %d", name, prev+1, b+1)
			}
			varBlock[vi] = b
		}
	}

	blockConss := make([][]int, f.NBlocks)
	var master []int
	for ci := range p.Conss {
		owner, uniform := -1, true
		for _, vi := range p.Conss[ci].Vars {
			b := varBlock[vi]
			if b == decomp.Linking {
				uniform = false

				break
			}
			if owner < 0 {
				owner = b
			} else if owner != b {
				uniform = false

				break
			}
		}
		if uniform && owner >= 0 {
			blockConss[owner] = append(blockConss[owner], ci)
		} else {
			master = append(master, ci)
		}
	}

	return assemble(p, blockConss, master)
}
