package kakuro

import "fmt"

// CheckSolutionTokens independently verifies a fully-typed token
// sequence against the run sums, exclusivity, and digit range — the
// independent check of component C7, deliberately never sharing code
// with the propagator or searcher so a bug in either wouldn't also
// corrupt verification. Checks run in the order spec.md §4.7 lists:
// NotSolved first (any Entry still holding the unknown marker), then
// InvalidSum, then NonUnique, then OutOfRange.
func CheckSolutionTokens(tokens []Token, width, minVal, maxVal int, exclusive bool) error {
	parsedBoard, err := parseBoard(tokens, width)
	if err != nil {
		return err
	}

	for _, t := range tokens {
		if t.Kind == KindEntry && t.Digit == unsolvedDigit {
			return ErrNotSolved
		}
	}

	for _, r := range parsedBoard.runs {
		sum := 0
		for _, ci := range r.Cells {
			sum += tokens[parsedBoard.cells[ci].pos].Digit
		}
		if sum != r.Sum {
			return fmt.Errorf("%w: run sums to %d, want %d", ErrInvalidSum, sum, r.Sum)
		}
	}

	if exclusive {
		for _, r := range parsedBoard.runs {
			var seen Domain
			for _, ci := range r.Cells {
				d := tokens[parsedBoard.cells[ci].pos].Digit
				if seen.Has(d) {
					return fmt.Errorf("%w: digit %d repeats in a run", ErrNonUnique, d)
				}
				seen = seen.Set(d)
			}
		}
	}

	for _, c := range parsedBoard.cells {
		d := tokens[c.pos].Digit
		if d < minVal || d > maxVal {
			return fmt.Errorf("%w: digit %d not in [%d,%d]", ErrOutOfRange, d, minVal, maxVal)
		}
	}

	return nil
}

// VerifySolution is the public, stateless verifier entry point (spec.md
// §6): parse-then-check a candidate token sequence with no dependency
// on any live Puzzle. The sequence is taken as a filled board, so a raw
// 1 is read as the digit 1 rather than as the unknown marker.
func VerifySolution(raw []RawToken, width int, opts Options) bool {
	minVal, maxVal, exclusive := opts.normalize()
	tokens, err := tokensFromRaw(raw)
	if err != nil {
		return false
	}
	for i := range tokens {
		if tokens[i].Kind == KindEntry && tokens[i].Digit == unsolvedDigit {
			tokens[i].Digit = 1
		}
	}
	return CheckSolutionTokens(tokens, width, minVal, maxVal, exclusive) == nil
}
