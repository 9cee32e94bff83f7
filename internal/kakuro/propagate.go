package kakuro

import (
	"fmt"
	"math"
	"time"

	"github.com/jellos/pykakuro/internal/kakuro/combo"
	"github.com/jellos/pykakuro/pkg/constants"
)

// propagateStatus is the outcome of one call to propagator.propagate.
type propagateStatus int

const (
	statusStalled propagateStatus = iota
	statusSolved
	statusTimedOut
)

// propagator runs the two constraint-propagation rules of component C4
// to a fixed point: Rule R1 (sum-combination filtering) and Rule R2
// (exclusivity-by-subset-count, "naked subsets"). It operates directly
// on the Puzzle's cell arena and run list.
type propagator struct {
	cells     []Cell
	runs      []Run
	minVal    int
	maxVal    int
	exclusive bool
	deadline  time.Time // zero value means no deadline
}

// initDomains performs Rule R1's initial pass (spec.md invariant I1):
// every cell starts at the full configured digit range (or, if the
// board supplied a known digit for that Entry, a singleton domain
// holding just that digit), then each run intersects its member cells'
// domains with combo.Union(sum, k) — the set of digits that appear in
// at least one valid combination for that run in isolation. known[i]
// == 0 means the cell's starting digit is unspecified; any other value
// pins the cell before propagation even begins.
func (p *propagator) initDomains(known []int) {
	full := FullDomain(p.minVal, p.maxVal)
	for i := range p.cells {
		if known != nil && known[i] != 0 {
			p.cells[i].domain = Domain(0).Set(known[i])
		} else {
			p.cells[i].domain = full
		}
	}
	for _, r := range p.runs {
		u := FromMask(combo.Union(r.Sum, len(r.Cells)))
		for _, ci := range r.Cells {
			p.cells[ci].domain = p.cells[ci].domain.Intersect(u)
		}
	}
}

func (p *propagator) deadlineExpired() bool {
	return !p.deadline.IsZero() && time.Now().After(p.deadline)
}

func (p *propagator) allSingleton() bool {
	for i := range p.cells {
		if p.cells[i].domain.Count() != 1 {
			return false
		}
	}
	return true
}

// propagate iterates Rule R1 then (when exclusive) Rule R2 across every
// run until either the board is fully solved, no rule changed anything
// (a stall, handed off to the searcher), or the deadline expires. pass
// is owned by the caller; it is advanced once per pass and sets each
// pass's propagation budget, so a later call would continue from the
// caller's count.
func (p *propagator) propagate(pass *int) (propagateStatus, error) {
	for {
		if p.deadlineExpired() {
			return statusTimedOut, nil
		}

		changed := false
		for i := range p.runs {
			c, err := p.applyRule1(i, *pass)
			if err != nil {
				return statusStalled, err
			}
			changed = changed || c
		}
		if p.exclusive {
			for i := range p.runs {
				c, err := p.applyRule2(i)
				if err != nil {
					return statusStalled, err
				}
				changed = changed || c
			}
		}
		*pass++

		if p.allSingleton() {
			return statusSolved, nil
		}
		if !changed {
			return statusStalled, nil
		}
	}
}

// applyRule1 re-derives each member cell's domain from the set of
// currently-feasible assignments for the run: a Cartesian enumeration of
// the member domains (ascending digit order, pruned as soon as a
// partial sum exceeds the target), bounded by a pass-dependent budget
// B(i) = PropagationBudgetGrowth^i + PropagationBudgetBase on the
// product of domain sizes (spec.md C4). A run whose domains are too
// large this pass is skipped and retried once other runs have narrowed
// it further.
func (p *propagator) applyRule1(runIdx, passNumber int) (bool, error) {
	run := &p.runs[runIdx]
	k := len(run.Cells)

	choices := make([][]int, k)
	cost := 1
	for i, ci := range run.Cells {
		choices[i] = p.cells[ci].domain.ToSlice()
		cost *= len(choices[i])
	}
	if cost == 0 {
		return false, fmt.Errorf("%w: a cell in a run has no candidates left", ErrUnsolvable)
	}

	budget := int(math.Pow(constants.PropagationBudgetGrowth, float64(passNumber))) + constants.PropagationBudgetBase
	if cost > budget {
		return false, nil
	}

	allowed := make([]Domain, k)
	cur := make([]int, k)
	found := false

	var rec func(pos, sum int, used Domain)
	rec = func(pos, sum int, used Domain) {
		if pos == k {
			if sum == run.Sum {
				found = true
				for i, d := range cur {
					allowed[i] = allowed[i].Set(d)
				}
			}
			return
		}
		for _, d := range choices[pos] {
			if sum+d > run.Sum {
				break
			}
			if p.exclusive && used.Has(d) {
				continue
			}
			cur[pos] = d
			rec(pos+1, sum+d, used.Set(d))
		}
	}
	rec(0, 0, 0)

	if !found {
		return false, fmt.Errorf("%w: run with sum %d has no feasible assignment", ErrUnsolvable, run.Sum)
	}

	changed := false
	for i, ci := range run.Cells {
		nd := p.cells[ci].domain.Intersect(allowed[i])
		if nd != p.cells[ci].domain {
			changed = true
			p.cells[ci].domain = nd
		}
		if nd.IsEmpty() {
			return changed, fmt.Errorf("%w: run narrowed a cell's domain to empty", ErrUnsolvable)
		}
	}
	return changed, nil
}

// applyRule2 implements exclusivity-by-subset-count: if n cells in a run
// share an identical domain of size n, those n cells occupy exactly that
// set of digits, so every other cell in the run can have the set
// subtracted from its domain. n == 1 is the familiar "naked single". A
// shared domain with more members than its size is an immediate
// contradiction (n cells can't fit into fewer than n digits).
func (p *propagator) applyRule2(runIdx int) (bool, error) {
	run := &p.runs[runIdx]

	groups := make(map[Domain][]int)
	for _, ci := range run.Cells {
		d := p.cells[ci].domain
		groups[d] = append(groups[d], ci)
	}

	changed := false
	for d, members := range groups {
		size := d.Count()
		if size == 0 {
			continue
		}
		if len(members) > size {
			return changed, fmt.Errorf("%w: %d cells share a %d-digit domain", ErrUnsolvable, len(members), size)
		}
		if len(members) != size {
			continue
		}

		inGroup := make(map[int]bool, len(members))
		for _, ci := range members {
			inGroup[ci] = true
		}
		for _, ci := range run.Cells {
			if inGroup[ci] {
				continue
			}
			nd := p.cells[ci].domain.Subtract(d)
			if nd != p.cells[ci].domain {
				changed = true
				p.cells[ci].domain = nd
			}
			if nd.IsEmpty() {
				return changed, fmt.Errorf("%w: exclusivity emptied a cell's domain", ErrUnsolvable)
			}
		}
	}
	return changed, nil
}
