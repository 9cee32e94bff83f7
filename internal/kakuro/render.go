package kakuro

import (
	"fmt"
	"strings"
)

// FormatBoard renders a token sequence as a pretty-printed grid
// (spec.md §6): cells centered to the widest cell's text, separated by
// "|", rows delimited by "+---+...+" border lines. Grounded on the
// ASCII-art board diagrams in original_source/kakuro.py's header
// comments.
func FormatBoard(tokens []Token, width int) string {
	labels := make([]string, len(tokens))
	cellWidth := 1
	for i, t := range tokens {
		labels[i] = tokenLabel(t)
		if len(labels[i]) > cellWidth {
			cellWidth = len(labels[i])
		}
	}

	height := len(tokens) / width
	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", width)

	var b strings.Builder
	b.WriteString(border)
	b.WriteByte('\n')
	for row := 0; row < height; row++ {
		b.WriteByte('|')
		for col := 0; col < width; col++ {
			b.WriteString(centerLabel(labels[row*width+col], cellWidth))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		b.WriteString(border)
		b.WriteByte('\n')
	}
	return b.String()
}

func tokenLabel(t Token) string {
	switch t.Kind {
	case KindBlack:
		return ""
	case KindEntry:
		if t.Digit == unsolvedDigit {
			return " "
		}
		return fmt.Sprintf("%d", t.Digit)
	case KindClue:
		a, d := "", ""
		if t.Across > 0 {
			a = fmt.Sprintf("%d", t.Across)
		}
		if t.Down > 0 {
			d = fmt.Sprintf("%d", t.Down)
		}
		return a + "\\" + d
	default:
		return "?"
	}
}

func centerLabel(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
