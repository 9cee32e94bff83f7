package kakuro

import "fmt"

// TokenKind distinguishes the three square kinds spec.md §3 defines.
type TokenKind int

const (
	KindBlack TokenKind = iota
	KindEntry
	KindClue
)

// unsolvedDigit is the sentinel Digit value for an Entry whose value is
// not yet known. In the canonical external format (spec.md §6) the
// unknown marker and a solved digit of 1 are both written as 1, an
// ambiguity inherited from original_source/kakuro.py. tokensFromRaw (and
// so FromTokens) reads a raw 1 as unknown; VerifySolution and
// Puzzle.CheckSolution, which take a filled board, read it as the digit 1.
const unsolvedDigit = 0

// Token is one square of the board in the typed internal representation.
type Token struct {
	Kind   TokenKind
	Digit  int // meaningful when Kind == KindEntry; 0 means unsolved
	Across int // meaningful when Kind == KindClue; 0 means no across run
	Down   int // meaningful when Kind == KindClue; 0 means no down run
}

func Black() Token                { return Token{Kind: KindBlack} }
func Entry(digit int) Token       { return Token{Kind: KindEntry, Digit: digit} }
func Clue(across, down int) Token { return Token{Kind: KindClue, Across: across, Down: down} }

// RawToken is the canonical external representation of one square
// (spec.md §6): the integer 0 for Black, 1 for an unsolved Entry, an
// integer in [min_val..max_val] for a solved Entry, or a [2]int pair
// (across, down) for a Clue.
type RawToken = any

// Pair builds the canonical Clue form of a RawToken.
func Pair(across, down int) RawToken { return [2]int{across, down} }

func tokenFromRaw(raw RawToken) (Token, error) {
	switch v := raw.(type) {
	case int:
		return tokenFromInt(v)
	case float64:
		// encoding/json decodes a bare JSON number into an untyped int
		// into float64 when the target is interface{}; HTTP requests hit
		// this path, direct Go callers hit the int case above.
		if v != float64(int(v)) {
			return Token{}, fmt.Errorf("%w: non-integer token %v", ErrInvalidToken, v)
		}
		return tokenFromInt(int(v))
	case [2]int:
		return tokenFromPair(v[0], v[1])
	case []int:
		if len(v) != 2 {
			return Token{}, fmt.Errorf("%w: clue array %v must have exactly 2 elements", ErrInvalidToken, v)
		}
		return tokenFromPair(v[0], v[1])
	case []any:
		// encoding/json decodes a JSON array into []interface{} when the
		// target is interface{}; HTTP requests supply clue pairs this way.
		if len(v) != 2 {
			return Token{}, fmt.Errorf("%w: clue array %v must have exactly 2 elements", ErrInvalidToken, v)
		}
		a, ok1 := asInt(v[0])
		d, ok2 := asInt(v[1])
		if !ok1 || !ok2 {
			return Token{}, fmt.Errorf("%w: clue array %v must contain two integers", ErrInvalidToken, v)
		}
		return tokenFromPair(a, d)
	default:
		return Token{}, fmt.Errorf("%w: %v (%T)", ErrInvalidToken, raw, raw)
	}
}

func tokenFromInt(v int) (Token, error) {
	switch {
	case v == 0:
		return Black(), nil
	case v == 1:
		return Entry(unsolvedDigit), nil
	case v >= 2 && v <= 9:
		return Entry(v), nil
	default:
		return Token{}, fmt.Errorf("%w: integer token %d out of [0,9]", ErrInvalidToken, v)
	}
}

func tokenFromPair(across, down int) (Token, error) {
	if across < 0 || down < 0 || (across == 0 && down == 0) {
		return Token{}, fmt.Errorf("%w: clue pair (%d,%d) has no positive component", ErrInvalidToken, across, down)
	}
	return Clue(across, down), nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func tokensFromRaw(raw []RawToken) ([]Token, error) {
	tokens := make([]Token, len(raw))
	for i, r := range raw {
		t, err := tokenFromRaw(r)
		if err != nil {
			return nil, err
		}
		tokens[i] = t
	}
	return tokens, nil
}

// tokenToRaw is the inverse of tokenFromRaw, used by Puzzle.Tokens and
// Solution.Raw to hand typed tokens back in the canonical external form.
func tokenToRaw(t Token) RawToken {
	switch t.Kind {
	case KindBlack:
		return 0
	case KindEntry:
		if t.Digit == unsolvedDigit {
			return 1
		}
		return t.Digit
	case KindClue:
		return [2]int{t.Across, t.Down}
	}
	return 0
}

func tokensToRaw(tokens []Token) []RawToken {
	raw := make([]RawToken, len(tokens))
	for i, t := range tokens {
		raw[i] = tokenToRaw(t)
	}
	return raw
}

// Solution is an immutable snapshot of a fully solved board (spec.md
// §3): a token sequence where every Entry holds its solved digit.
type Solution struct {
	Tokens []Token
	Width  int
}

// Raw converts the solution back to the canonical external token form.
func (s Solution) Raw() []RawToken { return tokensToRaw(s.Tokens) }
