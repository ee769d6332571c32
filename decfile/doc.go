// Package decfile reads and writes decomposition files in the .dec and
// .blk text formats.
//
// What:
//
//   - .dec assigns CONSTRAINTS to blocks by name, section by section:
//     PRESOLVED (0 or 1), NBLOCKS, one BLOCK <i> section per block
//     (1-based) listing constraint names, and MASTERCONSS listing the
//     linking constraints. Constraints mentioned nowhere default to the
//     master. Lines starting with "\" or "#" are comments; keywords are
//     case-insensitive.
//   - .blk assigns VARIABLES to blocks: NBLOCKS, then one BLOCK <i>
//     section per block listing variable names. A constraint joins a
//     block when every one of its variables lives there; all other
//     constraints become master.
//
// Reading yields a DecFile/BlkFile holding names only; Apply resolves the
// names against a problem.Problem and produces a classified
// decomp.Decomposition. WriteDec emits the canonical section order so a
// written file reads back into an equal decomposition.
//
// Errors are built with github.com/pkg/errors: sentinel causes
// (ErrSyntax, ErrRead, ErrApply) wrapped with line and name context, so
// callers can test with errors.Is while logs keep the detail.
package decfile
