// Package decfile: sentinel errors and the parsed file records.
package decfile

import "github.com/pkg/errors"

// Sentinel causes for decomposition-file handling.
var (
	// ErrRead indicates the file could not be opened or scanned.
	ErrRead = errors.New("decfile: read failed")

	// ErrSyntax indicates a malformed section, keyword, or value.
	ErrSyntax = errors.New("decfile: malformed decomposition file")

	// ErrApply indicates the file does not fit the problem: an unknown
	// constraint/variable name or one assigned to two blocks.
	ErrApply = errors.New("decfile: file does not match problem")
)

// DecFile is a parsed .dec file: constraint names grouped per block plus
// the explicit master section. Names are unresolved until Apply.
type DecFile struct {
	Presolved   bool
	NBlocks     int
	BlockConss  [][]string
	MasterConss []string
}

// BlkFile is a parsed .blk file: variable names grouped per block.
type BlkFile struct {
	NBlocks   int
	BlockVars [][]string
}
