package decfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// section keywords shared by both formats.
const (
	kwPresolved   = "PRESOLVED"
	kwNBlocks     = "NBLOCKS"
	kwBlock       = "BLOCK"
	kwMasterConss = "MASTERCONSS"
)

// line is one meaningful input line: comment and blank lines are already
// dropped, the rest split into whitespace-separated fields.
type line struct {
	no     int
	fields []string
}

// scanLines reads r into meaningful lines. Comments start with "\" or "#".
func scanLines(r io.Reader) ([]line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []line
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, `\`) || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, line{no: no, fields: strings.Fields(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(ErrRead, "scanning input: %v", err)
	}

	return out, nil
}

// keyword reports whether the line opens a section, normalizing case.
func keyword(ln line) (string, bool) {
	switch up := strings.ToUpper(ln.fields[0]); up {
	case kwPresolved, kwNBlocks, kwBlock, kwMasterConss:
		return up, true
	}

	return "", false
}
