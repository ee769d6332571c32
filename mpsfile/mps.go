package mpsfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dwdecomp/problem"
)

// Sentinel causes for MPS handling.
var (
	// ErrRead indicates the file could not be opened or scanned.
	ErrRead = errors.New("mpsfile: read failed")

	// ErrSyntax indicates a malformed section, row, or value.
	ErrSyntax = errors.New("mpsfile: malformed MPS input")
)

// Infinity is the bound magnitude treated as unbounded, matching the
// customary LP-solver convention.
const Infinity = 1e20

// MPS section states.
const (
	secNone = iota
	secRows
	secColumns
	secRHS
	secRanges
	secBounds
	secDone
)

type rowInfo struct {
	sense byte // 'N', 'L', 'G', 'E'
	cons  int  // constraint index, -1 for the objective and free rows
}

// reader accumulates one file's worth of parse state.
type reader struct {
	p       *problem.Problem
	rows    map[string]*rowInfo
	cols    map[string]int
	objRow  string
	rhsSet  string // first RHS/RANGES/BOUNDS set wins, as usual
	rngSet  string
	bndSet  string
	inIntrg bool
}

// Read parses an MPS stream into a problem.
func Read(r io.Reader) (*problem.Problem, error) {
	rd := &reader{
		p:    &problem.Problem{},
		rows: make(map[string]*rowInfo),
		cols: make(map[string]int),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := secNone
	no := 0
	for sc.Scan() {
		no++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "*") {
			continue
		}

		// Section headers start in column one; data lines are indented.
		if raw[0] != ' ' && raw[0] != '\t' {
			var err error
			if section, err = rd.header(trimmed, no); err != nil {
				return nil, err
			}
			if section == secDone {
				break
			}

			continue
		}

		fields := strings.Fields(trimmed)
		var err error
		switch section {
		case secRows:
			err = rd.rowLine(fields, no)
		case secColumns:
			err = rd.columnLine(fields, no)
		case secRHS:
			err = rd.rhsLine(fields, no)
		case secRanges:
			err = rd.rangeLine(fields, no)
		case secBounds:
			err = rd.boundLine(fields, no)
		default:
			err = errors.Wrapf(ErrSyntax, "line %d: data outside any section", no)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(ErrRead, "scanning input: %v", err)
	}
	if len(rd.rows) == 0 {
		return nil, errors.Wrap(ErrSyntax, "no ROWS section")
	}

	rd.normalizeBinaries()

	return rd.p, nil
}

// ReadFile opens and parses path.
func ReadFile(path string) (*problem.Problem, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrRead, "open %s: %v", path, err)
	}
	defer fh.Close()

	p, err := Read(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}

	return p, nil
}

func (rd *reader) header(line string, no int) (int, error) {
	fields := strings.Fields(line)
	switch strings.ToUpper(fields[0]) {
	case "NAME":
		if len(fields) > 1 {
			rd.p.Name = fields[1]
		}

		return secNone, nil
	case "ROWS":
		return secRows, nil
	case "COLUMNS":
		return secColumns, nil
	case "RHS":
		return secRHS, nil
	case "RANGES":
		return secRanges, nil
	case "BOUNDS":
		return secBounds, nil
	case "ENDATA":
		return secDone, nil
	case "OBJSENSE", "OBJSENSE:": // tolerated, sense itself is ignored
		return secNone, nil
	}

	return secNone, errors.Wrapf(ErrSyntax, "line %d: unknown section %q", no, fields[0])
}

func (rd *reader) rowLine(fields []string, no int) error {
	if len(fields) != 2 {
		return errors.Wrapf(ErrSyntax, "line %d: ROWS wants <sense> <name>", no)
	}
	sense := strings.ToUpper(fields[0])
	name := fields[1]
	if _, dup := rd.rows[name]; dup {
		return errors.Wrapf(ErrSyntax, "line %d: duplicate row %q", no, name)
	}

	info := &rowInfo{cons: -1}
	switch sense {
	case "N":
		info.sense = 'N'
		if rd.objRow == "" {
			rd.objRow = name
		}
	case "L", "G", "E":
		info.sense = sense[0]
		info.cons = len(rd.p.Conss)
		c := problem.Constraint{Name: name}
		// Default RHS is 0 until the RHS section says otherwise.
		switch info.sense {
		case 'L':
			c.Lhs, c.Rhs = -Infinity, 0
		case 'G':
			c.Lhs, c.Rhs = 0, Infinity
		case 'E':
			c.Lhs, c.Rhs = 0, 0
		}
		rd.p.Conss = append(rd.p.Conss, c)
	default:
		return errors.Wrapf(ErrSyntax, "line %d: unknown row sense %q", no, fields[0])
	}
	rd.rows[name] = info

	return nil
}

func (rd *reader) columnLine(fields []string, no int) error {
	// Integrality markers: NAME 'MARKER' 'INTORG'/'INTEND'.
	if len(fields) >= 3 && strings.Trim(fields[1], "'\"") == "MARKER" {
		switch strings.Trim(fields[len(fields)-1], "'\"") {
		case "INTORG":
			rd.inIntrg = true
		case "INTEND":
			rd.inIntrg = false
		default:
			return errors.Wrapf(ErrSyntax, "line %d: unknown marker", no)
		}

		return nil
	}
	if len(fields) < 3 || len(fields)%2 == 0 {
		return errors.Wrapf(ErrSyntax, "line %d: COLUMNS wants <col> (<row> <value>)+", no)
	}

	vi, seen := rd.cols[fields[0]]
	if !seen {
		vi = len(rd.p.Vars)
		rd.cols[fields[0]] = vi
		v := problem.Variable{Name: fields[0], Lb: 0, Ub: Infinity, Type: problem.Continuous}
		if rd.inIntrg {
			v.Type = problem.Integer
		}
		rd.p.Vars = append(rd.p.Vars, v)
	}

	for t := 1; t < len(fields); t += 2 {
		rowName := fields[t]
		val, err := parseValue(fields[t+1], no)
		if err != nil {
			return err
		}
		info, ok := rd.rows[rowName]
		if !ok {
			return errors.Wrapf(ErrSyntax, "line %d: unknown row %q", no, rowName)
		}
		switch {
		case rowName == rd.objRow:
			rd.p.Vars[vi].Obj = val
		case info.cons >= 0:
			c := &rd.p.Conss[info.cons]
			c.Vars = append(c.Vars, vi)
			c.Coefs = append(c.Coefs, val)
		default:
			// Extra free rows: coefficients are read and dropped.
		}
	}

	return nil
}

func (rd *reader) rhsLine(fields []string, no int) error {
	if len(fields) < 3 || len(fields)%2 == 0 {
		return errors.Wrapf(ErrSyntax, "line %d: RHS wants <set> (<row> <value>)+", no)
	}
	if rd.rhsSet == "" {
		rd.rhsSet = fields[0]
	}
	if fields[0] != rd.rhsSet {
		return nil // only the first RHS set applies
	}

	for t := 1; t < len(fields); t += 2 {
		info, ok := rd.rows[fields[t]]
		if !ok {
			return errors.Wrapf(ErrSyntax, "line %d: unknown row %q", no, fields[t])
		}
		val, err := parseValue(fields[t+1], no)
		if err != nil {
			return err
		}
		if info.cons < 0 {
			continue // objective offset, ignored
		}
		c := &rd.p.Conss[info.cons]
		switch info.sense {
		case 'L':
			c.Rhs = val
		case 'G':
			c.Lhs = val
		case 'E':
			c.Lhs, c.Rhs = val, val
		}
	}

	return nil
}

func (rd *reader) rangeLine(fields []string, no int) error {
	if len(fields) < 3 || len(fields)%2 == 0 {
		return errors.Wrapf(ErrSyntax, "line %d: RANGES wants <set> (<row> <value>)+", no)
	}
	if rd.rngSet == "" {
		rd.rngSet = fields[0]
	}
	if fields[0] != rd.rngSet {
		return nil
	}

	for t := 1; t < len(fields); t += 2 {
		info, ok := rd.rows[fields[t]]
		if !ok || info.cons < 0 {
			return errors.Wrapf(ErrSyntax, "line %d: RANGES on non-constraint row %q", no, fields[t])
		}
		val, err := parseValue(fields[t+1], no)
		if err != nil {
			return err
		}
		c := &rd.p.Conss[info.cons]
		switch info.sense {
		case 'L':
			c.Lhs = c.Rhs - abs(val)
		case 'G':
			c.Rhs = c.Lhs + abs(val)
		case 'E':
			if val >= 0 {
				c.Rhs = c.Lhs + val
			} else {
				c.Lhs = c.Rhs + val
			}
		}
	}

	return nil
}

func (rd *reader) boundLine(fields []string, no int) error {
	if len(fields) < 3 {
		return errors.Wrapf(ErrSyntax, "line %d: BOUNDS wants <type> <set> <col> [value]", no)
	}
	if rd.bndSet == "" {
		rd.bndSet = fields[1]
	}
	if fields[1] != rd.bndSet {
		return nil
	}
	vi, ok := rd.cols[fields[2]]
	if !ok {
		return errors.Wrapf(ErrSyntax, "line %d: unknown column %q", no, fields[2])
	}
	v := &rd.p.Vars[vi]

	typ := strings.ToUpper(fields[0])
	needsValue := typ != "BV" && typ != "MI" && typ != "PL"
	var val float64
	if needsValue {
		if len(fields) < 4 {
			return errors.Wrapf(ErrSyntax, "line %d: bound %s wants a value", no, typ)
		}
		var err error
		if val, err = parseValue(fields[3], no); err != nil {
			return err
		}
	}

	switch typ {
	case "UP":
		v.Ub = val
	case "LO":
		v.Lb = val
	case "FX":
		v.Lb, v.Ub = val, val
	case "BV":
		v.Lb, v.Ub = 0, 1
		v.Type = problem.Binary
	case "MI":
		v.Lb = -Infinity
	case "PL":
		v.Ub = Infinity
	case "LI":
		v.Lb = val
		v.Type = problem.Integer
	case "UI":
		v.Ub = val
		v.Type = problem.Integer
	default:
		return errors.Wrapf(ErrSyntax, "line %d: unknown bound type %q", no, fields[0])
	}

	return nil
}

// normalizeBinaries downgrades integer variables with final bounds [0, 1]
// to Binary, so downstream symmetry detection sees them uniformly.
func (rd *reader) normalizeBinaries() {
	for i := range rd.p.Vars {
		v := &rd.p.Vars[i]
		if v.Type == problem.Integer && v.Lb == 0 && v.Ub == 1 {
			v.Type = problem.Binary
		}
	}
}

func parseValue(s string, no int) (float64, error) {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "line %d: bad value %q", no, s)
	}

	return val, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}
