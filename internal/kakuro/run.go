package kakuro

// Run is one constraint: a target sum plus the ordered list of
// cell-arena indices whose digits must sum to it (spec.md §3). Two runs
// (one across, one down) typically share a single cell, which is why
// Run stores indices into Puzzle's cell arena rather than owning cells
// outright.
type Run struct {
	Sum   int
	Cells []int
}
