package kakuro

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/jellos/pykakuro/pkg/constants"
)

// rng is a small deterministic linear congruential generator, the same
// approach the teacher's internal/sudoku/dp/solver.go uses for
// reproducible puzzle generation instead of math/rand: a fixed seed
// must always produce the same board.
type rng struct{ state int64 }

func newRNG(seed int64) *rng { return &rng{state: seed} }

func (r *rng) next() int64 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return r.state
}

// float64 returns a pseudo-random value in [0, 1).
func (r *rng) float64() float64 { return float64(r.next()) / float64(1<<31) }

// intn returns a pseudo-random value in [0, n).
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % int64(n))
}

// GenOptions configures GenerateRandom (spec.md §6).
type GenOptions struct {
	// Seed, if non-nil, makes generation deterministic: the same seed and
	// dimensions always produce the same board.
	Seed *int64
	// Solved controls whether Entry tokens come back filled with their
	// placed digit or with the unknown marker.
	Solved bool

	MinVal    int
	MaxVal    int
	Exclusive *bool
}

// GenerateRandom builds a board by seeding each cell independently with
// probability constants.DefaultFillProbability, rejecting a draw that
// would violate row/column exclusivity up to
// constants.DefaultPlacementAttempts times before giving up on that
// cell (spec.md component C6). The first row and column are always
// blacked out so every run has a clue cell to its left or above it.
// Across and down clues are then derived by scanning each row/column for
// maximal runs of filled cells.
//
// Known limitation inherited from the scanning approach: a cell that
// exhausts its placement attempts is simply left black, which can yield
// thinner boards than the fill probability alone would suggest. That is
// an accepted tradeoff for keeping generation single-pass and
// allocation-light; callers wanting denser boards should retry with a
// different seed.
func GenerateRandom(width, height int, opts GenOptions) (*Puzzle, error) {
	minVal, maxVal, exclusive := (Options{MinVal: opts.MinVal, MaxVal: opts.MaxVal, Exclusive: opts.Exclusive}).normalize()

	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = seedFromTime()
	}
	r := newRNG(seed)

	grid := make([][]int, height)
	for row := range grid {
		grid[row] = make([]int, width)
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if r.float64() >= constants.DefaultFillProbability {
				continue
			}
			for attempt := 0; attempt < constants.DefaultPlacementAttempts; attempt++ {
				d := minVal + r.intn(maxVal-minVal+1)
				if exclusive && (rowHasDigit(grid, row, col, d) || colHasDigit(grid, row, col, d)) {
					continue
				}
				grid[row][col] = d
				break
			}
		}
	}

	for col := 0; col < width; col++ {
		grid[0][col] = 0
	}
	for row := 0; row < height; row++ {
		grid[row][0] = 0
	}

	filled := func(row, col int) bool { return row > 0 && col > 0 && grid[row][col] != 0 }

	tokens := make([]Token, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if filled(row, col) {
				tokens[row*width+col] = Entry(grid[row][col])
			} else {
				tokens[row*width+col] = Black()
			}
		}
	}

	for row := 0; row < height; row++ {
		sum := 0
		for col := width - 1; col >= 0; col-- {
			if filled(row, col) {
				sum += grid[row][col]
				continue
			}
			if sum > 0 {
				idx := row*width + col
				tokens[idx] = mergeClue(tokens[idx], sum, 0)
			}
			sum = 0
		}
	}

	for col := 0; col < width; col++ {
		sum := 0
		for row := height - 1; row >= 0; row-- {
			if filled(row, col) {
				sum += grid[row][col]
				continue
			}
			if sum > 0 {
				idx := row*width + col
				tokens[idx] = mergeClue(tokens[idx], 0, sum)
			}
			sum = 0
		}
	}

	if !opts.Solved {
		for i := range tokens {
			if tokens[i].Kind == KindEntry {
				tokens[i].Digit = unsolvedDigit
			}
		}
	}

	exPtr := exclusive
	p, err := newPuzzle(tokens, width, Options{MinVal: minVal, MaxVal: maxVal, Exclusive: &exPtr})
	if err != nil {
		return nil, err
	}
	if opts.Solved {
		if verr := CheckSolutionTokens(p.tokens, width, minVal, maxVal, exclusive); verr != nil {
			return p, verr
		}
	}
	return p, nil
}

func mergeClue(t Token, across, down int) Token {
	if t.Kind != KindClue {
		return Token{Kind: KindClue, Across: across, Down: down}
	}
	if across != 0 {
		t.Across = across
	}
	if down != 0 {
		t.Down = down
	}
	return t
}

// rowHasDigit reports whether d already appears earlier in this row. The
// row prefix is contiguous, so this is exactly the small-slice membership
// check slices.Contains exists for.
func rowHasDigit(grid [][]int, row, col, d int) bool {
	return slices.Contains(grid[row][:col], d)
}

// colHasDigit reports whether d already appears earlier in this column.
// Column entries aren't contiguous in the row-major grid, so there is no
// slice to hand slices.Contains directly; this stays a manual scan.
func colHasDigit(grid [][]int, row, col, d int) bool {
	for r := 0; r < row; r++ {
		if grid[r][col] == d {
			return true
		}
	}
	return false
}

// seedFromTime sources nondeterminism for GenerateRandom when the caller
// doesn't supply a seed (spec.md §4.6).
func seedFromTime() int64 { return time.Now().UnixNano() }
