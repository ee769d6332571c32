package incidence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// formatWeight prints integral weights without a decimal point and
// everything else in shortest-round-trip form, keeping exports stable.
func formatWeight(w float64) string {
	if w == float64(int64(w)) {
		return strconv.FormatInt(int64(w), 10)
	}

	return strconv.FormatFloat(w, 'g', -1, 64)
}

// writeAdjacency emits the simple-graph partitioning format: header
// "<nNodes> <nEdges>" (with a format code when weights are included), then
// one line per node listing its 1-based neighbors in ascending order.
// nodeWeights prefixes each line with the node weight; edgeWeights turns
// every neighbor entry into a (neighbor, weight) pair.
func writeAdjacency(w io.Writer, g *hypergraph.Graph, nodeWeights, edgeWeights bool) error {
	bw := bufio.NewWriter(w)

	header := fmt.Sprintf("%d %d", g.NNodes(), g.Engine().NEdges())
	if nodeWeights || edgeWeights {
		header += " 0"
		if nodeWeights {
			header += "1"
		} else {
			header += "0"
		}
		if edgeWeights {
			header += "1"
		} else {
			header += "0"
		}
	}
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return err
	}

	for id := 0; id < g.NNodes(); id++ {
		nbr, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		line := make([]byte, 0, 16)
		if nodeWeights {
			nw, werr := g.NodeWeight(id)
			if werr != nil {
				return werr
			}
			line = append(line, formatWeight(nw)...)
		}
		for _, n := range nbr {
			if len(line) > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(n+1), 10)
			if edgeWeights {
				ew, _ := g.EdgeWeight(id, n)
				line = append(line, ' ')
				line = append(line, formatWeight(ew)...)
			}
		}
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeHypergraph emits the two-section hypergraph format: header
// "<nNodes> <nEdges>", one membership line per hyperedge in committed
// order (1-based node ids, prefixed by the edge weight when includeWeights
// is set), then one line per node carrying its hyperedge degree.
func writeHypergraph(w io.Writer, g *hypergraph.Graph, includeWeights bool) error {
	bw := bufio.NewWriter(w)

	header := fmt.Sprintf("%d %d", g.NNodes(), g.NEdges())
	if includeWeights {
		header += " 1"
	}
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return err
	}

	degree := make([]int, g.NNodes())
	for e := 0; e < g.NEdges(); e++ {
		nodes, err := g.HyperedgeNodes(e)
		if err != nil {
			return err
		}
		line := make([]byte, 0, 16)
		if includeWeights {
			ew, werr := g.HyperedgeWeight(e)
			if werr != nil {
				return werr
			}
			line = append(line, formatWeight(ew)...)
		}
		for _, n := range nodes {
			degree[n]++
			if len(line) > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(n+1), 10)
		}
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return err
		}
	}

	for _, d := range degree {
		if _, err := fmt.Fprintln(bw, d); err != nil {
			return err
		}
	}

	return bw.Flush()
}
