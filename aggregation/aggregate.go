package aggregation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/dwdecomp/decomp"
	"github.com/katalvlaran/dwdecomp/problem"
)

// Aggregate groups the blocks of d into identity classes.
//
// Steps:
//  1. Precompute, per variable, its coefficient pattern in the linking
//     (master) constraints — master rows are shared objects, so their
//     identity must be preserved, not abstracted away.
//  2. For every block b2 and every earlier representative b1 with equal
//     variable and constraint counts, derive a candidate bijection by
//     iterated signature refinement and verify it coefficient by
//     coefficient.
//  3. On success b2 joins b1's class: Representative(b2) = b1,
//     NIdentical(b1) grows by one, NIdentical(b2) drops to 0 and b2 is no
//     longer pricing-relevant.
//
// A failed or ambiguous match leaves both blocks independent — false
// negatives are safe, false positives are not.
func Aggregate(p *problem.Problem, d *decomp.Decomposition) (*Info, error) {
	if p == nil || d == nil {
		return nil, fmt.Errorf("%w: nil problem or decomposition", ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	n := d.NBlocks()
	if n == 0 {
		return nil, fmt.Errorf("%w: decomposition has no blocks", ErrInvalidInput)
	}

	master, err := masterPatterns(p, d)
	if err != nil {
		return nil, err
	}

	views := make([]*blockView, n)
	for b := 0; b < n; b++ {
		if views[b], err = newBlockView(p, d, b); err != nil {
			return nil, err
		}
	}

	info := &Info{
		representative: make([]int, n),
		nIdentical:     make([]int, n),
	}
	for b := range info.representative {
		info.representative[b] = b
		info.nIdentical[b] = 1
	}

	for b2 := 1; b2 < n; b2++ {
		for b1 := 0; b1 < b2; b1++ {
			if info.representative[b1] != b1 {
				continue // only representatives absorb further blocks
			}
			if !identical(p, views[b1], views[b2], master) {
				continue
			}
			info.representative[b2] = b1
			info.nIdentical[b1]++
			info.nIdentical[b2] = 0

			break
		}
	}

	return info, nil
}

// fmtF renders a float exactly and compactly for signature strings.
func fmtF(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// masterPatterns returns, per variable, the sorted "consIndex:coef" list
// over the linking constraints — "" for variables the master never touches.
func masterPatterns(p *problem.Problem, d *decomp.Decomposition) (map[int]string, error) {
	perVar := make(map[int][]string)
	for _, ci := range d.LinkingConss() {
		if ci < 0 || ci >= p.NConss() {
			return nil, fmt.Errorf("%w: linking constraint %d outside [0,%d)", ErrInvalidInput, ci, p.NConss())
		}
		c := &p.Conss[ci]
		for t, vi := range c.Vars {
			perVar[vi] = append(perVar[vi], strconv.Itoa(ci)+":"+fmtF(c.Coefs[t]))
		}
	}

	out := make(map[int]string, len(perVar))
	for vi, pat := range perVar {
		sort.Strings(pat)
		out[vi] = strings.Join(pat, ",")
	}

	return out, nil
}

// blockView is one block's variables, constraints, and the incidence
// structure restricted to the block.
type blockView struct {
	vars  []int // global variable indices, sorted
	conss []int // global constraint indices, sorted

	// varInc[i] lists (local constraint, coefficient) pairs of local
	// variable i; consTerms[j] lists local constraint j's terms, with
	// local == -1 for variables outside the block (linking or foreign).
	varInc    [][]incTerm
	consTerms [][]consTerm
}

type incTerm struct {
	cons int
	coef float64
}

type consTerm struct {
	local  int // local variable index, -1 when outside the block
	global int
	coef   float64
}

func newBlockView(p *problem.Problem, d *decomp.Decomposition, b int) (*blockView, error) {
	vars, err := d.BlockVars(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	conss, err := d.BlockConss(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	v := &blockView{
		vars:      vars,
		conss:     conss,
		varInc:    make([][]incTerm, len(vars)),
		consTerms: make([][]consTerm, len(conss)),
	}
	local := make(map[int]int, len(vars))
	for i, vi := range vars {
		if vi >= p.NVars() {
			return nil, fmt.Errorf("%w: block %d variable %d outside [0,%d)", ErrInvalidInput, b, vi, p.NVars())
		}
		local[vi] = i
	}
	for j, ci := range conss {
		if ci >= p.NConss() {
			return nil, fmt.Errorf("%w: block %d constraint %d outside [0,%d)", ErrInvalidInput, b, ci, p.NConss())
		}
		c := &p.Conss[ci]
		for t, vi := range c.Vars {
			li, inBlock := local[vi]
			if !inBlock {
				li = -1
			}
			v.consTerms[j] = append(v.consTerms[j], consTerm{local: li, global: vi, coef: c.Coefs[t]})
			if inBlock {
				v.varInc[li] = append(v.varInc[li], incTerm{cons: j, coef: c.Coefs[t]})
			}
		}
	}

	return v, nil
}

// identical reports whether v2 matches v1 under some verified bijection.
func identical(p *problem.Problem, v1, v2 *blockView, master map[int]string) bool {
	if len(v1.vars) != len(v2.vars) || len(v1.conss) != len(v2.conss) {
		return false
	}

	varSig1, consSig1 := initialLabels(p, v1, master)
	varSig2, consSig2 := initialLabels(p, v2, master)

	canon := newCanonizer()
	varLab1, varLab2 := canon.relabel(varSig1), canon.relabel(varSig2)
	canon = newCanonizer()
	consLab1, consLab2 := canon.relabel(consSig1), canon.relabel(consSig2)

	// Refine until the joint partition stabilizes. Each effective round
	// strictly increases the number of distinct labels, so the loop is
	// bounded by |vars| + |conss|.
	for round := 0; round <= len(v1.vars)+len(v1.conss); round++ {
		if !sameMultiset(varLab1, varLab2) || !sameMultiset(consLab1, consLab2) {
			return false
		}

		nextVar1 := refineVars(v1, varLab1, consLab1)
		nextVar2 := refineVars(v2, varLab2, consLab2)
		nextCons1 := refineConss(v1, varLab1, consLab1)
		nextCons2 := refineConss(v2, varLab2, consLab2)

		canon = newCanonizer()
		newVar1, newVar2 := canon.relabel(nextVar1), canon.relabel(nextVar2)
		canon = newCanonizer()
		newCons1, newCons2 := canon.relabel(nextCons1), canon.relabel(nextCons2)

		if countDistinct(newVar1, newVar2) == countDistinct(varLab1, varLab2) &&
			countDistinct(newCons1, newCons2) == countDistinct(consLab1, consLab2) {
			break
		}
		varLab1, varLab2, consLab1, consLab2 = newVar1, newVar2, newCons1, newCons2
	}
	if !sameMultiset(varLab1, varLab2) || !sameMultiset(consLab1, consLab2) {
		return false
	}

	varMap := pairByLabel(varLab1, varLab2)
	consMap := pairByLabel(consLab1, consLab2)

	return verify(p, v1, v2, varMap, consMap, master)
}

// initialLabels seeds the refinement: variables by type, objective,
// bounds, and master-coefficient pattern; constraints by their sides.
func initialLabels(p *problem.Problem, v *blockView, master map[int]string) (varLab, consLab []string) {
	varLab = make([]string, len(v.vars))
	for i, vi := range v.vars {
		pv := &p.Vars[vi]
		varLab[i] = strings.Join([]string{
			"v", strconv.Itoa(int(pv.Type)), fmtF(pv.Obj), fmtF(pv.Lb), fmtF(pv.Ub), master[vi],
		}, ";")
	}
	consLab = make([]string, len(v.conss))
	for j, ci := range v.conss {
		pc := &p.Conss[ci]
		consLab[j] = "c;" + fmtF(pc.Lhs) + ";" + fmtF(pc.Rhs)
	}

	return varLab, consLab
}

// refineVars extends each variable label with the sorted multiset of
// (incident constraint label, coefficient) pairs.
func refineVars(v *blockView, varLab, consLab []int) []string {
	out := make([]string, len(varLab))
	for i, inc := range v.varInc {
		parts := make([]string, len(inc))
		for t, term := range inc {
			parts[t] = strconv.Itoa(consLab[term.cons]) + "*" + fmtF(term.coef)
		}
		sort.Strings(parts)
		out[i] = strconv.Itoa(varLab[i]) + "|" + strings.Join(parts, ",")
	}

	return out
}

// refineConss extends each constraint label with the sorted multiset of
// (term label, coefficient) pairs; out-of-block variables keep their
// global identity since they are shared between blocks.
func refineConss(v *blockView, varLab, consLab []int) []string {
	out := make([]string, len(consLab))
	for j, terms := range v.consTerms {
		parts := make([]string, len(terms))
		for t, term := range terms {
			if term.local >= 0 {
				parts[t] = strconv.Itoa(varLab[term.local]) + "*" + fmtF(term.coef)
			} else {
				parts[t] = "x" + strconv.Itoa(term.global) + "*" + fmtF(term.coef)
			}
		}
		sort.Strings(parts)
		out[j] = strconv.Itoa(consLab[j]) + "|" + strings.Join(parts, ",")
	}

	return out
}

// canonizer maps signature strings to small dense ints so labels stay
// comparable across the two blocks without unbounded string growth.
type canonizer struct{ ids map[string]int }

func newCanonizer() *canonizer { return &canonizer{ids: make(map[string]int)} }

func (c *canonizer) relabel(sigs []string) []int {
	out := make([]int, len(sigs))
	for i, s := range sigs {
		id, ok := c.ids[s]
		if !ok {
			id = len(c.ids)
			c.ids[s] = id
		}
		out[i] = id
	}

	return out
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[int]int, len(a))
	for _, x := range a {
		count[x]++
	}
	for _, x := range b {
		count[x]--
		if count[x] < 0 {
			return false
		}
	}

	return true
}

func countDistinct(a, b []int) int {
	seen := make(map[int]struct{}, len(a)+len(b))
	for _, x := range a {
		seen[x] = struct{}{}
	}
	for _, x := range b {
		seen[x] = struct{}{}
	}

	return len(seen)
}

// pairByLabel zips the two index sets in (label, position) order. Label
// multisets are already known to match, so positions with equal rank get
// equal labels; ties inside a label class pair up in index order and are
// caught by verification if the guess is wrong.
func pairByLabel(lab1, lab2 []int) []int {
	order := func(lab []int) []int {
		idx := make([]int, len(lab))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return lab[idx[a]] < lab[idx[b]] })

		return idx
	}
	o1, o2 := order(lab1), order(lab2)
	m := make([]int, len(lab1))
	for k := range o1 {
		m[o1[k]] = o2[k]
	}

	return m
}

// verify checks the candidate bijection exactly, term by term.
func verify(p *problem.Problem, v1, v2 *blockView, varMap, consMap []int, master map[int]string) bool {
	// Variable pairs: objective, type, bounds, master pattern.
	for i1, i2 := range varMap {
		a, b := &p.Vars[v1.vars[i1]], &p.Vars[v2.vars[i2]]
		if a.Type != b.Type || a.Obj != b.Obj || a.Lb != b.Lb || a.Ub != b.Ub {
			return false
		}
		if master[v1.vars[i1]] != master[v2.vars[i2]] {
			return false
		}
	}

	// Constraint pairs: sides, then the full coefficient rows under the
	// variable bijection (out-of-block variables must agree literally).
	for j1, j2 := range consMap {
		a, b := &p.Conss[v1.conss[j1]], &p.Conss[v2.conss[j2]]
		if a.Lhs != b.Lhs || a.Rhs != b.Rhs {
			return false
		}

		row1 := make(map[int]float64, len(v1.consTerms[j1]))
		for _, term := range v1.consTerms[j1] {
			key := term.global
			if term.local >= 0 {
				key = v2.vars[varMap[term.local]]
			}
			row1[key] += term.coef
		}
		row2 := make(map[int]float64, len(v2.consTerms[j2]))
		for _, term := range v2.consTerms[j2] {
			row2[term.global] += term.coef
		}
		if len(row1) != len(row2) {
			return false
		}
		for vi, coef := range row1 {
			if other, ok := row2[vi]; !ok || other != coef {
				return false
			}
		}
	}

	return true
}
