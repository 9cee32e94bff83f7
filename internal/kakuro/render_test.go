package kakuro

import (
	"strings"
	"testing"
)

func TestFormatBoardProducesAGrid(t *testing.T) {
	tokens, err := tokensFromRaw([]RawToken{
		0, Pair(0, 3),
		Pair(3, 0), 1,
	})
	if err != nil {
		t.Fatalf("tokensFromRaw: %v", err)
	}
	out := FormatBoard(tokens, 2)
	if strings.Count(out, "\n") < 3 {
		t.Errorf("expected a multi-row render, got:\n%s", out)
	}
	if !strings.Contains(out, "|") {
		t.Error("expected cell separators in the render")
	}
}
