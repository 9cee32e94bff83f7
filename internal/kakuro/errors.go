package kakuro

import "errors"

// Error kinds. spec.md §7 requires each of these to be distinct and
// never merged; sentinels are wrapped with fmt.Errorf for detail and
// compared with errors.Is, following the teacher's pkg/config/config.go
// (errors.New) and internal/puzzles/loader.go (fmt.Errorf + %w) style.
var (
	// Parser errors (from FromTokens / CheckPuzzle).
	ErrMalformedShape   = errors.New("malformed shape: token count is not a multiple of width")
	ErrInvalidToken     = errors.New("invalid token")
	ErrClueWithoutEntry = errors.New("clue without entry")

	// Solver errors (from Solve).
	ErrUnsolvable    = errors.New("unsolvable: a cell's domain became empty")
	ErrAlreadySolved = errors.New("already solved")
	ErrTimeout       = errors.New("solve timed out")

	// Verifier errors (from CheckSolution).
	ErrNotSolved  = errors.New("not solved: an entry still holds the unknown marker")
	ErrInvalidSum = errors.New("invalid sum")
	ErrNonUnique  = errors.New("non-unique: exclusivity violated")
	ErrOutOfRange = errors.New("digit out of range")
)
