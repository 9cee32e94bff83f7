package kakuro

import (
	"time"

	"github.com/jellos/pykakuro/pkg/constants"
)

// Options configures a Puzzle's digit range and exclusivity rule
// (spec.md §6). The zero value selects every default: min_val=1,
// max_val=9, exclusive=true. Exclusive is a pointer so "unset" (use the
// default) is distinguishable from an explicit false.
type Options struct {
	MinVal    int
	MaxVal    int
	Exclusive *bool
}

func (o Options) normalize() (minVal, maxVal int, exclusive bool) {
	minVal, maxVal = o.MinVal, o.MaxVal
	if minVal == 0 {
		minVal = constants.MinDigit
	}
	if maxVal == 0 {
		maxVal = constants.MaxDigit
	}
	exclusive = true
	if o.Exclusive != nil {
		exclusive = *o.Exclusive
	}
	return
}

// Puzzle ties the board, cell arena, and run list together and is the
// sole entry point for solving, generating, and verifying (spec.md §3,
// §6). It is mutated only by Solve (may rewrite Entry tokens from the
// unknown marker to a solved digit) and Unsolve (resets them back).
type Puzzle struct {
	width  int
	height int
	tokens []Token
	cells  []Cell
	runs   []Run

	minVal    int
	maxVal    int
	exclusive bool

	Solutions []Solution
	Warnings  []string
}

// FromTokens is the canonical constructor (component C2): it validates
// and parses a raw token sequence into a Puzzle, performing Rule R1's
// initial domain seeding before returning.
func FromTokens(raw []RawToken, width int, opts Options) (*Puzzle, error) {
	tokens, err := tokensFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return newPuzzle(tokens, width, opts)
}

func newPuzzle(tokens []Token, width int, opts Options) (*Puzzle, error) {
	minVal, maxVal, exclusive := opts.normalize()

	parsedBoard, err := parseBoard(tokens, width)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		width:     width,
		height:    parsedBoard.height,
		tokens:    tokens,
		cells:     parsedBoard.cells,
		runs:      parsedBoard.runs,
		minVal:    minVal,
		maxVal:    maxVal,
		exclusive: exclusive,
	}
	p.seedDomains()
	return p, nil
}

func (p *Puzzle) seedDomains() {
	known := make([]int, len(p.cells))
	for i, c := range p.cells {
		known[i] = p.tokens[c.pos].Digit
	}
	pr := &propagator{cells: p.cells, runs: p.runs, minVal: p.minVal, maxVal: p.maxVal, exclusive: p.exclusive}
	pr.initDomains(known)
}

// CheckPuzzle re-validates the board's structure (component C2), for
// callers that mutated tokens out from under a live Puzzle or simply
// want to confirm it's still well-formed.
func (p *Puzzle) CheckPuzzle() error {
	_, err := parseBoard(p.tokens, p.width)
	return err
}

// CheckSolution verifies a candidate token sequence against this
// Puzzle's own width, digit range, and exclusivity (component C7). The
// sequence is taken as a filled board, so a raw 1 is read as the digit 1
// rather than as the unknown marker.
func (p *Puzzle) CheckSolution(raw []RawToken) error {
	tokens, err := tokensFromRaw(raw)
	if err != nil {
		return err
	}
	for i := range tokens {
		if tokens[i].Kind == KindEntry && tokens[i].Digit == unsolvedDigit {
			tokens[i].Digit = 1
		}
	}
	return CheckSolutionTokens(tokens, p.width, p.minVal, p.maxVal, p.exclusive)
}

// Tokens returns the puzzle's current canonical token sequence.
func (p *Puzzle) Tokens() []RawToken { return tokensToRaw(p.tokens) }

// Width returns the board width in cells.
func (p *Puzzle) Width() int { return p.width }

// isAlreadySolved reports whether the current board, with every unknown
// marker read as the digit 1, already passes CheckSolution.
func (p *Puzzle) isAlreadySolved() bool {
	return p.CheckSolution(p.Tokens()) == nil
}

// Unsolve resets every Entry token back to the unknown marker and
// reseeds cell domains, so the Puzzle can be solved again from scratch.
// Calling it on an already-unsolved Puzzle is a no-op beyond reseeding
// (idempotent, per spec.md property P1).
func (p *Puzzle) Unsolve() {
	for i := range p.tokens {
		if p.tokens[i].Kind == KindEntry {
			p.tokens[i].Digit = unsolvedDigit
		}
	}
	p.seedDomains()
	p.Solutions = nil
	p.Warnings = nil
}

func (p *Puzzle) currentSolution() Solution {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return Solution{Tokens: out, Width: p.width}
}

func (p *Puzzle) commitSolution(sol Solution) {
	copy(p.tokens, sol.Tokens)
}

// commitSingletons writes every cell's singleton domain digit back into
// the token sequence, used when propagation alone reaches a full
// solution without needing the searcher.
func (p *Puzzle) commitSingletons() {
	for i := range p.cells {
		if d, ok := p.cells[i].domain.Only(); ok {
			p.tokens[p.cells[i].pos].Digit = d
		}
	}
}

// Solve attempts to find and commit the first solution (component C4 +
// C5, wrapped with C8's cooperative cancellation). timeout == 0 means no
// deadline. If the deadline expires, the board is rolled back to its
// pre-solve state; raiseOnTimeout controls whether that case is
// reported as ErrTimeout or as (false, nil).
func (p *Puzzle) Solve(timeout time.Duration, raiseOnTimeout bool) (bool, error) {
	return p.solve(timeout, raiseOnTimeout, 1)
}

// SolveAll behaves like Solve but collects up to cap solutions instead
// of stopping at the first (component C5's solve_all). cap <= 0 uses
// constants.DefaultSolutionCap.
func (p *Puzzle) SolveAll(timeout time.Duration, raiseOnTimeout bool, cap int) (bool, error) {
	if cap <= 0 {
		cap = constants.DefaultSolutionCap
	}
	return p.solve(timeout, raiseOnTimeout, cap)
}

func (p *Puzzle) solve(timeout time.Duration, raiseOnTimeout bool, cap int) (bool, error) {
	if p.isAlreadySolved() {
		return false, ErrAlreadySolved
	}

	preDomains := snapshotCells(p.cells)
	preTokens := make([]Token, len(p.tokens))
	copy(preTokens, p.tokens)
	rollback := func() {
		restoreCells(p.cells, preDomains)
		copy(p.tokens, preTokens)
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	pass := 0
	pr := &propagator{
		cells: p.cells, runs: p.runs,
		minVal: p.minVal, maxVal: p.maxVal, exclusive: p.exclusive,
		deadline: deadline,
	}
	status, err := pr.propagate(&pass)

	if status == statusTimedOut {
		rollback()
		if raiseOnTimeout {
			return false, ErrTimeout
		}
		return false, nil
	}
	if err != nil {
		rollback()
		return false, err
	}
	if status == statusSolved {
		p.commitSingletons()
		p.Solutions = []Solution{p.currentSolution()}
		return true, nil
	}

	s := &searcher{
		cells: p.cells, runs: p.runs, exclusive: p.exclusive,
		tokens: p.tokens, width: p.width, deadline: deadline,
	}
	solutions, timedOut, err := s.solveAll(cap)
	p.Warnings = append(p.Warnings, s.warnings...)

	if timedOut {
		rollback()
		if raiseOnTimeout {
			return false, ErrTimeout
		}
		return false, nil
	}
	if err != nil {
		rollback()
		return false, err
	}

	p.Solutions = solutions
	p.commitSolution(solutions[0])
	return true, nil
}

// String renders the board as a pretty-printed grid (spec.md §6).
func (p *Puzzle) String() string { return FormatBoard(p.tokens, p.width) }
