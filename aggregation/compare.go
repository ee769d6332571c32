package aggregation

import (
	"sort"

	"github.com/katalvlaran/dwdecomp/decomp"
)

// Equal reports whether d1 and d2 induce the same partition of
// constraints into blocks — block numbering is irrelevant — and carry the
// same linking-constraint set. Linking variables and type play no role:
// two decompositions that cut the constraint matrix identically are the
// same candidate.
func Equal(d1, d2 *decomp.Decomposition) bool {
	if d1 == d2 {
		return true
	}
	if d1 == nil || d2 == nil {
		return false
	}
	if d1.NBlocks() != d2.NBlocks() || d1.NLinkingConss() != d2.NLinkingConss() {
		return false
	}
	if !sameIntSet(d1.LinkingConss(), d2.LinkingConss()) {
		return false
	}

	return sameConsPartition(d1, d2)
}

// FilterSimilar removes, in place, every decomposition equal to an
// earlier entry, compacts the survivors to the front in their original
// order, and returns the surviving count. The tail is nilled out.
func FilterSimilar(ds []*decomp.Decomposition) int {
	m := 0
	for _, d := range ds {
		dup := false
		for i := 0; i < m; i++ {
			if Equal(ds[i], d) {
				dup = true

				break
			}
		}
		if !dup {
			ds[m] = d
			m++
		}
	}
	for i := m; i < len(ds); i++ {
		ds[i] = nil
	}

	return m
}

// sameIntSet compares two index slices as sets.
func sameIntSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}

// sameConsPartition compares the block partitions up to relabeling by
// canonicalizing each: blocks hold sorted constraint indices, so sorting
// the blocks by their leading element yields a unique normal form.
func sameConsPartition(d1, d2 *decomp.Decomposition) bool {
	c1, c2 := canonicalBlocks(d1), canonicalBlocks(d2)
	if len(c1) != len(c2) {
		return false
	}
	for b := range c1 {
		if len(c1[b]) != len(c2[b]) {
			return false
		}
		for k := range c1[b] {
			if c1[b][k] != c2[b][k] {
				return false
			}
		}
	}

	return true
}

func canonicalBlocks(d *decomp.Decomposition) [][]int {
	out := make([][]int, 0, d.NBlocks())
	for b := 0; b < d.NBlocks(); b++ {
		conss, err := d.BlockConss(b)
		if err != nil {
			continue // unreachable: b ranges over NBlocks
		}
		out = append(out, conss)
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) == 0 || len(out[b]) == 0 {
			return len(out[a]) < len(out[b])
		}

		return out[a][0] < out[b][0]
	})

	return out
}
