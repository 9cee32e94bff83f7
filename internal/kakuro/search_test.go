package kakuro

import (
	"errors"
	"testing"
)

// TestSearchFallbackOnAmbiguousPuzzle exercises the searcher directly on
// a tiny board where propagation alone cannot reach a unique answer
// (a single 2-cell run summing to 3, whose seeded domains {1,2} admit
// two equally valid digit orderings), confirming it still produces
// solutions consistent with every run.
func TestSearchFallbackOnAmbiguousPuzzle(t *testing.T) {
	tokens, err := tokensFromRaw([]RawToken{Pair(3, 0), 1, 1})
	if err != nil {
		t.Fatalf("tokensFromRaw: %v", err)
	}
	parsedBoard, err := parseBoard(tokens, 3)
	if err != nil {
		t.Fatalf("parseBoard: %v", err)
	}
	pr := &propagator{cells: parsedBoard.cells, runs: parsedBoard.runs, minVal: 1, maxVal: 9, exclusive: true}
	pr.initDomains(knownFromTokens(parsedBoard.cells, tokens))

	s := &searcher{cells: pr.cells, runs: pr.runs, exclusive: true, tokens: tokens, width: 3}
	solutions, timedOut, err := s.solveAll(10)
	if err != nil {
		t.Fatalf("solveAll: %v", err)
	}
	if timedOut {
		t.Fatal("did not expect a timeout with no deadline set")
	}
	if len(solutions) == 0 {
		t.Fatal("expected at least one solution")
	}
	for _, sol := range solutions {
		if err := CheckSolutionTokens(sol.Tokens, 3, 1, 9, true); err != nil {
			t.Errorf("searcher produced an invalid solution: %v", err)
		}
	}
}

func TestSearchUnsolvableRun(t *testing.T) {
	tokens, _ := tokensFromRaw([]RawToken{Pair(3, 0), 9})
	parsedBoard, err := parseBoard(tokens, 2)
	if err != nil {
		t.Fatalf("parseBoard: %v", err)
	}
	pr := &propagator{cells: parsedBoard.cells, runs: parsedBoard.runs, minVal: 1, maxVal: 9, exclusive: true}
	pr.initDomains(knownFromTokens(parsedBoard.cells, tokens))
	for i := range pr.cells {
		if pr.cells[i].domain.IsEmpty() {
			// caught already during seeding; nothing left for the searcher to do
			return
		}
	}
	s := &searcher{cells: pr.cells, runs: pr.runs, exclusive: true, tokens: tokens, width: 2}
	if _, _, err := s.solveAll(10); !errors.Is(err, ErrUnsolvable) {
		t.Errorf("expected ErrUnsolvable, got %v", err)
	}
}
