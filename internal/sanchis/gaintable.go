package sanchis

import "github.com/katalvlaran/hyperpart/internal/hypergraph"

// gainTable buckets pending (cell, toBlock) moves by their exact Gain
// vector, so the best feasible move can be found without scanning every
// cell×block pair. Buckets are addressed by (G1+p)*tableSize + (G2+p),
// which increases monotonically with gain, so "highest nonempty bucket"
// is tracked as a single index that only ever needs to search downward.
type gainTable struct {
	data      [][]move
	tableSize int
	p         int
	maxBucket int // -1 when the table is empty
}

func newGainTable(p int) *gainTable {
	if p < 0 {
		p = 0
	}
	tableSize := 2*p + 1
	return &gainTable{
		data:      make([][]move, tableSize*tableSize),
		tableSize: tableSize,
		p:         p,
		maxBucket: -1,
	}
}

func (t *gainTable) index(g Gain) int {
	return (g.G1+t.p)*t.tableSize + (g.G2 + t.p)
}

func (t *gainTable) add(g Gain, c hypergraph.CellId, b hypergraph.BlockId) {
	idx := t.index(g)
	t.data[idx] = append(t.data[idx], move{cell: c, to: b})
	if idx > t.maxBucket {
		t.maxBucket = idx
	}
}

func (t *gainTable) remove(g Gain, c hypergraph.CellId, b hypergraph.BlockId) {
	idx := t.index(g)
	entry := t.data[idx]
	for i, m := range entry {
		if m.cell == c && m.to == b {
			entry = append(entry[:i], entry[i+1:]...)
			break
		}
	}
	t.data[idx] = entry

	if idx == t.maxBucket && len(entry) == 0 {
		t.maxBucket = t.searchDownMaxBucket()
	}
}

func (t *gainTable) searchDownMaxBucket() int {
	for i := t.maxBucket; i >= 0; i-- {
		if len(t.data[i]) > 0 {
			return i
		}
	}
	return -1
}

// findFeasible scans buckets from the current maximum downward and returns
// the first pending move whose cell is unlocked and whose target block has
// room, or ok=false if none exists.
func (t *gainTable) findFeasible(locked []bool, fits func(c hypergraph.CellId, b hypergraph.BlockId) bool) (move, bool) {
	for idx := t.maxBucket; idx >= 0; idx-- {
		for _, m := range t.data[idx] {
			if locked[m.cell] {
				continue
			}
			if !fits(m.cell, m.to) {
				continue
			}
			return m, true
		}
	}
	return move{}, false
}
