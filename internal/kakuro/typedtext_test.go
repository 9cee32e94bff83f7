package kakuro

import (
	"errors"
	"testing"
)

func TestParseTypedTextS1(t *testing.T) {
	text := "0 0 0.7 0.6\n0 4.4 1 1\n7.0 1 1 1\n6.0 1 1 1\n"
	p, err := ParseTypedText(text, Options{})
	if err != nil {
		t.Fatalf("ParseTypedText: %v", err)
	}
	solved, err := p.Solve(0, true)
	if err != nil || !solved {
		t.Fatalf("Solve after typed-text parse: solved=%v err=%v", solved, err)
	}
	want := []RawToken{
		0, 0, Pair(0, 7), Pair(0, 6),
		0, Pair(4, 4), 1, 3,
		Pair(7, 0), 1, 4, 2,
		Pair(6, 0), 3, 2, 1,
	}
	got := p.Tokens()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestParseTypedTextRaggedLine(t *testing.T) {
	text := "0 0 0\n0 0\n"
	if _, err := ParseTypedText(text, Options{}); !errors.Is(err, ErrMalformedShape) {
		t.Errorf("expected ErrMalformedShape, got %v", err)
	}
}

func TestParseTypedTextBadField(t *testing.T) {
	text := "0 bogus\n0 0\n"
	if _, err := ParseTypedText(text, Options{}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
