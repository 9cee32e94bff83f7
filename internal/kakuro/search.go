package kakuro

import (
	"fmt"
	"time"

	"github.com/jellos/pykakuro/pkg/constants"
)

// searcher performs the brute-force backtracking fallback of component
// C5, invoked once propagation stalls without reaching a singleton
// domain on every cell. It fixes every already-singleton cell to its
// digit, then enumerates the Cartesian product of the remaining
// ("residual") domains in ascending digit order, verifying every run's
// sum (and, if exclusive, uniqueness) on each complete assignment.
type searcher struct {
	cells     []Cell
	runs      []Run
	exclusive bool
	tokens    []Token
	width     int
	deadline  time.Time

	warnings []string
}

func (s *searcher) deadlineExpired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// residualCells returns, in cell-arena order, the indices of cells whose
// domain still holds more than one candidate.
func (s *searcher) residualCells() []int {
	var u []int
	for i := range s.cells {
		if s.cells[i].domain.Count() > 1 {
			u = append(u, i)
		}
	}
	return u
}

// solveAll enumerates up to cap solutions. It returns the solutions
// found, whether the deadline expired before the search finished, and
// an error if every branch was exhausted without any feasible
// assignment (ErrUnsolvable).
func (s *searcher) solveAll(cap int) ([]Solution, bool, error) {
	for i := range s.cells {
		if s.cells[i].domain.IsEmpty() {
			return nil, false, fmt.Errorf("%w: a cell has no candidates before search", ErrUnsolvable)
		}
	}

	for i := range s.cells {
		if d, ok := s.cells[i].domain.Only(); ok {
			s.cells[i].trial = d
		}
	}

	residual := s.residualCells()

	space := 1
	for _, ci := range residual {
		space *= s.cells[ci].domain.Count()
	}
	if space > constants.DefaultWarnThreshold && s.deadline.IsZero() {
		s.warnings = append(s.warnings, fmt.Sprintf(
			"residual search space %d exceeds warning threshold %d", space, constants.DefaultWarnThreshold))
	}

	var solutions []Solution
	timedOut := false

	var rec func(pos int) bool
	rec = func(pos int) bool {
		if s.deadlineExpired() {
			timedOut = true
			return true
		}
		if pos == len(residual) {
			if s.verifyTrial() {
				solutions = append(solutions, s.snapshot())
				if len(solutions) >= cap {
					return true
				}
			}
			return false
		}
		ci := residual[pos]
		for _, d := range s.cells[ci].domain.ToSlice() {
			s.cells[ci].trial = d
			if rec(pos + 1) {
				return true
			}
		}
		return false
	}
	rec(0)

	if timedOut {
		return solutions, true, nil
	}
	if len(solutions) == 0 {
		return nil, false, fmt.Errorf("%w: exhausted residual search space with no valid assignment", ErrUnsolvable)
	}
	return solutions, false, nil
}

// verifyTrial checks every run's sum (and, if exclusive, digit
// uniqueness within the run) against the cells' current trial values.
func (s *searcher) verifyTrial() bool {
	for _, r := range s.runs {
		sum := 0
		var seen Domain
		for _, ci := range r.Cells {
			v := s.cells[ci].trial
			sum += v
			if s.exclusive {
				if seen.Has(v) {
					return false
				}
				seen = seen.Set(v)
			}
		}
		if sum != r.Sum {
			return false
		}
	}
	return true
}

// snapshot materializes a Solution from the current trial assignment.
func (s *searcher) snapshot() Solution {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	for i := range s.cells {
		out[s.cells[i].pos] = Entry(s.cells[i].trial)
	}
	return Solution{Tokens: out, Width: s.width}
}
