package kakuro

import (
	"fmt"

	"github.com/jellos/pykakuro/pkg/constants"
)

// parsed is the structural output of parseBoard: a fresh cell arena and
// the derived run list. parseBoard never mutates its input token slice
// (component C2 of spec.md).
type parsed struct {
	cells  []Cell
	runs   []Run
	width  int
	height int
}

// parseBoard walks tokens row-major and column-major to derive the run
// list, exactly as spec.md §4.2 describes: "whenever a Clue is
// encountered with a non-zero across (resp. down) component, the
// immediately following run of Entry squares in that direction forms a
// single Run with that target sum." A clue component that isn't
// immediately followed by at least one Entry is ErrClueWithoutEntry; a
// token count that isn't a multiple of width is ErrMalformedShape.
func parseBoard(tokens []Token, width int) (*parsed, error) {
	if width <= 0 || len(tokens)%width != 0 {
		return nil, fmt.Errorf("%w: %d tokens is not a multiple of width %d", ErrMalformedShape, len(tokens), width)
	}
	height := len(tokens) / width

	cellOf := make([]int, len(tokens))
	var cells []Cell
	for i, t := range tokens {
		if t.Kind == KindEntry {
			cellOf[i] = len(cells)
			cells = append(cells, Cell{pos: i})
		} else {
			cellOf[i] = -1
		}
	}

	var runs []Run

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			t := tokens[row*width+col]
			if t.Kind != KindClue || t.Across == 0 {
				continue
			}
			var members []int
			for c := col + 1; c < width && tokens[row*width+c].Kind == KindEntry; c++ {
				members = append(members, cellOf[row*width+c])
			}
			if len(members) == 0 {
				return nil, fmt.Errorf("%w: across clue at row %d col %d", ErrClueWithoutEntry, row, col)
			}
			runs = append(runs, Run{Sum: t.Across, Cells: members})
		}
	}

	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			t := tokens[row*width+col]
			if t.Kind != KindClue || t.Down == 0 {
				continue
			}
			var members []int
			for r := row + 1; r < height && tokens[r*width+col].Kind == KindEntry; r++ {
				members = append(members, cellOf[r*width+col])
			}
			if len(members) == 0 {
				return nil, fmt.Errorf("%w: down clue at row %d col %d", ErrClueWithoutEntry, row, col)
			}
			runs = append(runs, Run{Sum: t.Down, Cells: members})
		}
	}

	for _, r := range runs {
		if r.Sum < 1 || r.Sum > constants.MaxSum || len(r.Cells) < 1 || len(r.Cells) > constants.MaxRunLength {
			return nil, fmt.Errorf("%w: run sum=%d length=%d violates [1,%d]x[1,%d]",
				ErrMalformedShape, r.Sum, len(r.Cells), constants.MaxSum, constants.MaxRunLength)
		}
	}

	return &parsed{cells: cells, runs: runs, width: width, height: height}, nil
}
