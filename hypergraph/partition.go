package hypergraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadPartition reads one integer partition label per line, in node order,
// and assigns it via SetPartition. Exactly NNodes labels are expected;
// blank trailing lines are tolerated. A short file, surplus labels, or a
// non-integer token fail with ErrRead and leave already-assigned labels in
// place (callers treating the partition as atomic should re-read).
func (g *Graph) ReadPartition(r io.Reader) error {
	if !g.flushed {
		return ErrNotFlushed
	}

	scanner := bufio.NewScanner(r)
	node := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if node >= g.NNodes() {
			return fmt.Errorf("%w: more labels than nodes (%d)", ErrRead, g.NNodes())
		}
		label, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: non-integer token %q", ErrRead, node+1, line)
		}
		if err = g.SetPartition(node, label); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrRead, node+1, err)
		}
		node++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}
	if node != g.NNodes() {
		return fmt.Errorf("%w: got %d labels, want %d", ErrRead, node, g.NNodes())
	}

	return nil
}

// ReadPartitionFile opens path and delegates to ReadPartition.
// A missing or unreadable file fails with ErrRead.
func (g *Graph) ReadPartitionFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return g.ReadPartition(f)
}

// WritePartition emits the single-label view, one label per line in node
// order (-1 for unset nodes), the inverse of ReadPartition.
func (g *Graph) WritePartition(w io.Writer) error {
	if !g.flushed {
		return ErrNotFlushed
	}
	bw := bufio.NewWriter(w)
	for _, label := range g.Partition() {
		if _, err := fmt.Fprintln(bw, label); err != nil {
			return err
		}
	}

	return bw.Flush()
}
