package kakuro

import (
	"errors"
	"testing"
	"time"
)

func boolPtr(b bool) *bool { return &b }

// S1 from spec.md §9: the canonical 4-wide example, also the first
// worked example in original_source/tests.py (solution_1 / puzzle one).
func TestSolveS1(t *testing.T) {
	input := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 1,
		Pair(7, 0), 1, 1, 1,
		Pair(6, 0), 1, 1, 1,
	}
	want := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 3,
		Pair(7, 0), 1, 4, 2,
		Pair(6, 0), 3, 2, 1,
	}

	p, err := FromTokens(input, 4, Options{})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	solved, err := p.Solve(0, true)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !solved {
		t.Fatal("Solve returned false")
	}

	got := p.Tokens()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}

	if err := p.CheckSolution(got); err != nil {
		t.Errorf("CheckSolution on the commited solve result: %v", err)
	}
}

func TestVerifySolutionS4(t *testing.T) {
	good := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 3,
		Pair(7, 0), 1, 4, 2,
		Pair(6, 0), 3, 2, 1,
	}
	if !VerifySolution(good, 4, Options{}) {
		t.Error("expected the solved S1 board to verify")
	}

	bad := append([]RawToken{}, good...)
	bad[10] = 5 // breaks the (7,0) across run's sum
	if VerifySolution(bad, 4, Options{}) {
		t.Error("expected a tampered board to fail verification")
	}
	tokens := filledTokens(bad)
	if err := CheckSolutionTokens(tokens, 4, 1, 9, true); err == nil {
		t.Error("expected CheckSolutionTokens to report an error for the tampered board")
	} else if !errors.Is(err, ErrInvalidSum) {
		t.Errorf("expected ErrInvalidSum, got %v", err)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	solved := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 3,
		Pair(7, 0), 1, 4, 2,
		Pair(6, 0), 3, 2, 1,
	}
	p, err := FromTokens(solved, 4, Options{})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	if _, err := p.Solve(0, true); !errors.Is(err, ErrAlreadySolved) {
		t.Errorf("expected ErrAlreadySolved, got %v", err)
	}
}

func TestUnsolveThenSolveReproducesSolution(t *testing.T) {
	input := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 1,
		Pair(7, 0), 1, 1, 1,
		Pair(6, 0), 1, 1, 1,
	}
	p, err := FromTokens(input, 4, Options{})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	if _, err := p.Solve(0, true); err != nil {
		t.Fatalf("first solve: %v", err)
	}
	first := p.Tokens()

	p.Unsolve()
	solved, err := p.Solve(0, true)
	if err != nil || !solved {
		t.Fatalf("second solve after Unsolve: solved=%v err=%v", solved, err)
	}
	second := p.Tokens()

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs across unsolve/solve cycle: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestMalformedShapeRejected(t *testing.T) {
	_, err := FromTokens([]RawToken{0, 0, 0}, 2, Options{})
	if !errors.Is(err, ErrMalformedShape) {
		t.Errorf("expected ErrMalformedShape, got %v", err)
	}
}

func TestClueWithoutEntryRejected(t *testing.T) {
	// a (4,0) across clue at the last column of its row has nothing
	// following it.
	_, err := FromTokens([]RawToken{0, Pair(4, 0)}, 2, Options{})
	if !errors.Is(err, ErrClueWithoutEntry) {
		t.Errorf("expected ErrClueWithoutEntry, got %v", err)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	_, err := FromTokens([]RawToken{0, 0, "bogus", 0}, 2, Options{})
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSolveTimeoutRestoresPreSolveState(t *testing.T) {
	input := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 1,
		Pair(7, 0), 1, 1, 1,
		Pair(6, 0), 1, 1, 1,
	}
	p, err := FromTokens(input, 4, Options{})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	before := append([]RawToken{}, p.Tokens()...)

	// a deadline already in the past forces propagate's very first
	// deadline check to report a timeout before any domain narrows.
	solved, err := p.Solve(1*time.Nanosecond, false)
	time.Sleep(time.Millisecond)
	_ = solved

	after := p.Tokens()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("token %d mutated despite timeout: before=%v after=%v", i, before[i], after[i])
		}
	}
}

func TestDifficultyIsNonNegative(t *testing.T) {
	input := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 1,
		Pair(7, 0), 1, 1, 1,
		Pair(6, 0), 1, 1, 1,
	}
	p, err := FromTokens(input, 4, Options{})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	if d := p.Difficulty(); d < 0 {
		t.Errorf("Difficulty() = %f, want >= 0", d)
	}
}
