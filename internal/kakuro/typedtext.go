package kakuro

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTypedText parses the human-typeable text board form described in
// spec.md §6, grounded on original_source/util/convert_typed.py:
// whitespace-separated cells, one row per line. A cell is "0" for
// Black, "1" for an unsolved Entry, a bare digit for a solved Entry, or
// "A.D" for a Clue with across=A, down=D (either component may be
// omitted as 0, e.g. "0.6" or "4.0"). It lowers the text to the
// canonical token form and delegates to FromTokens for validation.
func ParseTypedText(text string, opts Options) (*Puzzle, error) {
	var raw []RawToken
	width := 0

	for lineNo, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedShape, lineNo+1, len(fields), width)
		}
		for _, f := range fields {
			if across, down, ok := splitClueField(f); ok {
				raw = append(raw, Pair(across, down))
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidToken, f)
			}
			raw = append(raw, v)
		}
	}

	return FromTokens(raw, width, opts)
}

func splitClueField(f string) (across, down int, ok bool) {
	dot := strings.IndexByte(f, '.')
	if dot < 0 {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(f[:dot])
	d, err2 := strconv.Atoi(f[dot+1:])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, d, true
}
