package sanchis

import "github.com/katalvlaran/hyperpart/internal/hypergraph"

// Gain is the two-level lexicographic gain vector: G1 is the immediate
// change in total span if the move were applied now, G2 is a one-step
// lookahead over nets that would become critical afterward. A move with
// higher G1 always dominates, ties broken by G2.
type Gain struct {
	G1, G2 int
}

// move pairs a cell with a candidate destination block.
type move struct {
	cell hypergraph.CellId
	to   hypergraph.BlockId
}

// gainValues is a flat cell×block table of Gain vectors, mutated one
// "level" (1 or 2) at a time as neighbor cells react to a committed move.
type gainValues struct {
	data      []Gain
	numBlocks int
}

func newGainValues(numCells, numBlocks int) *gainValues {
	return &gainValues{data: make([]Gain, numCells*numBlocks), numBlocks: numBlocks}
}

func (g *gainValues) index(c hypergraph.CellId, b hypergraph.BlockId) int {
	return int(c)*g.numBlocks + int(b)
}

func (g *gainValues) get(c hypergraph.CellId, b hypergraph.BlockId) Gain {
	return g.data[g.index(c, b)]
}

// incLevel adds 1 to G1 if level == 1, to G2 if level == 2, and leaves the
// gain untouched for any other level — a net more than one step from
// critical has no bearing on this move's priority.
func (g *gainValues) incLevel(c hypergraph.CellId, b hypergraph.BlockId, level int) Gain {
	idx := g.index(c, b)
	switch level {
	case 1:
		g.data[idx].G1++
	case 2:
		g.data[idx].G2++
	}
	return g.data[idx]
}

func (g *gainValues) decLevel(c hypergraph.CellId, b hypergraph.BlockId, level int) Gain {
	idx := g.index(c, b)
	switch level {
	case 1:
		g.data[idx].G1--
	case 2:
		g.data[idx].G2--
	}
	return g.data[idx]
}
