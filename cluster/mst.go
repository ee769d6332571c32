package cluster

import (
	"sort"

	"github.com/katalvlaran/dwdecomp/hypergraph"
)

// weightedPair is one distinct adjacency with its accumulated weight.
type weightedPair struct {
	u, v   int
	weight float64
}

// MST performs single-linkage clustering over the graph's pairwise
// adjacency and returns one cluster label per node.
//
// Steps:
//  1. Collect the distinct weighted pairs from the flushed adjacency.
//  2. Sort by descending weight (stable (u,v) tie-break) and build a
//     maximum spanning forest with union-find (path compression, union by
//     rank).
//  3. Drop forest edges with weight strictly below threshold; the
//     remaining connected components are the clusters.
//  4. Normalize labels by first appearance over node ids.
//
// Nodes without any surviving link form singleton clusters. An empty graph
// yields an empty label slice.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func MST(g *hypergraph.Graph, threshold float64) ([]int, error) {
	// 1. Validate input: clustering needs a committed adjacency.
	if g == nil || !g.Flushed() {
		return nil, ErrInvalidGraph
	}
	n := g.NNodes()
	if n == 0 {
		return []int{}, nil
	}

	// 2. Collect distinct pairs (u < v) with their accumulated weights.
	pairs := make([]weightedPair, 0, g.Engine().NEdges())
	for u := 0; u < n; u++ {
		nbr, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbr {
			if v <= u {
				continue
			}
			w, ok := g.EdgeWeight(u, v)
			if !ok {
				continue
			}
			pairs = append(pairs, weightedPair{u: u, v: v, weight: w})
		}
	}

	// 3. Sort by descending weight; stable order on (u,v) keeps the forest
	//    deterministic for equal weights.
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].weight > pairs[j].weight
	})

	// 4. Kruskal with union-find over the heaviest edges first.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}

		return true
	}

	forest := make([]weightedPair, 0, n-1)
	for _, e := range pairs {
		if union(e.u, e.v) {
			forest = append(forest, e)
			if len(forest) == n-1 {
				break
			}
		}
	}

	// 5. Re-run union-find keeping only forest edges at or above the cut
	//    threshold; components of the thresholded forest are the clusters.
	for i := range parent {
		parent[i] = i
		rank[i] = 0
	}
	for _, e := range forest {
		if e.weight >= threshold {
			union(e.u, e.v)
		}
	}

	// 6. Normalize component roots into labels by first appearance.
	labels := make([]int, n)
	next := 0
	byRoot := make(map[int]int, n)
	for i := 0; i < n; i++ {
		root := find(i)
		label, seen := byRoot[root]
		if !seen {
			label = next
			byRoot[root] = label
			next++
		}
		labels[i] = label
	}

	return labels, nil
}
