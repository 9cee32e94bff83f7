package kakuro

// knownFromTokens builds the known-digit array initDomains expects,
// straight from a parsed cell arena and its source tokens.
func knownFromTokens(cells []Cell, tokens []Token) []int {
	known := make([]int, len(cells))
	for i, c := range cells {
		known[i] = tokens[c.pos].Digit
	}
	return known
}
