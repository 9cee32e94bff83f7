package kakuro

import "math"

// Difficulty returns a monotone-with-effort scalar: the log of the
// residual brute-force search space remaining after propagation stalls
// (domains larger than a singleton), plus a small linear term in entry
// count so two puzzles with identical residual space but different
// sizes don't score identically. It is deliberately uncalibrated against
// any particular difficulty scale — only its ordering across puzzles is
// meaningful.
func (p *Puzzle) Difficulty() float64 {
	cells := make([]Cell, len(p.cells))
	copy(cells, p.cells)
	pr := &propagator{cells: cells, runs: p.runs, minVal: p.minVal, maxVal: p.maxVal, exclusive: p.exclusive}
	pass := 0
	pr.propagate(&pass)

	residual := 1.0
	entries := 0
	for i := range cells {
		entries++
		if c := cells[i].domain.Count(); c > 1 {
			residual *= float64(c)
		}
	}
	return math.Log(residual+1) + 0.01*float64(entries)
}
