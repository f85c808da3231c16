package sanchis

import "github.com/katalvlaran/hyperpart/internal/hypergraph"

// cutter holds all per-pass incremental state: phi/lambda/beta binding
// counts, the two-level gain table, and a private copy of block
// areas/membership that the pass mutates freely without touching the
// caller's Partition until the chosen move prefix is replayed onto it.
type cutter struct {
	in *hypergraph.Input

	phi, lmd, beta *bindData
	inftyCount     []int

	blockOfCell []hypergraph.BlockId
	locked      []bool

	blockArea  []uint
	blockCells [][]hypergraph.CellId

	gains     *gainValues
	gainTable *gainTable

	numBlocks int
}

func newCutter(in *hypergraph.Input, p *hypergraph.Partition) *cutter {
	numBlocks := p.NumBlocks()
	numCells := in.NumCells()
	numNets := in.NumNets()

	cu := &cutter{
		in:          in,
		phi:         newBindData(numNets),
		lmd:         newBindData(numNets),
		beta:        newBindData(numNets),
		inftyCount:  make([]int, numNets),
		blockOfCell: make([]hypergraph.BlockId, numCells),
		locked:      make([]bool, numCells),
		blockArea:   make([]uint, numBlocks),
		blockCells:  make([][]hypergraph.CellId, numBlocks),
		gains:       newGainValues(numCells, numBlocks),
		gainTable:   newGainTable(in.MaxDegree()),
		numBlocks:   numBlocks,
	}

	for b, blk := range p.Blocks {
		cu.blockArea[b] = blk.Area
		cu.blockCells[b] = append([]hypergraph.CellId(nil), blk.Cells...)
		for _, c := range blk.Cells {
			cu.blockOfCell[c] = hypergraph.BlockId(b)
		}
	}

	for c := 0; c < numCells; c++ {
		b := cu.blockOfCell[c]
		for _, n := range in.NetsOfCell(hypergraph.CellId(c)) {
			cu.phi.inc(n, b)
			cu.beta.inc(n, b)
		}
	}

	// Seed gain and gainTable together: every update_gain call below both
	// adjusts a (cell, block) gain and relocates its gain-table entry, so a
	// single pass over (net, block, cell) leaves every reachable candidate
	// move correctly bucketed with no separate "add everything" sweep
	// needed afterward.
	for n := 0; n < numNets; n++ {
		for b := 0; b < numBlocks; b++ {
			bb := hypergraph.BlockId(b)
			nn := hypergraph.NetId(n)
			if cu.betap(nn, bb) <= MaxLevel && cu.beta.get(nn, bb) > 0 {
				for _, c := range in.CellsOfNet(nn) {
					cu.updateGain(true, c, bb, nn)
				}
			}
		}
	}

	return cu
}

func (cu *cutter) netStatus(n hypergraph.NetId) int {
	switch cu.inftyCount[n] {
	case 0:
		return netFree
	case 1:
		return netLoose
	default:
		return netLocked
	}
}

const (
	netFree = iota
	netLoose
	netLocked
)

func (cu *cutter) betap(n hypergraph.NetId, b hypergraph.BlockId) int {
	size := len(cu.in.CellsOfNet(n))
	switch cu.netStatus(n) {
	case netFree:
		return size - cu.phi.get(n, b)
	case netLocked:
		return infinity
	default: // netLoose
		return size - cu.phi.get(n, b) - cu.lmd.get(n, b)
	}
}

// updateGain applies one reaction of cell c's gain to block toBlock, caused
// by a change in net n's binding state. normal=true applies the reaction
// (used when building or reinforcing candidate moves): it raises c's gain
// toward toBlock, or, when toBlock is c's own block, lowers c's gain toward
// every other block. normal=false applies the opposite change (used when
// reversing a neighbor's gain ahead of a move being committed).
func (cu *cutter) updateGain(normal bool, c hypergraph.CellId, toBlock hypergraph.BlockId, n hypergraph.NetId) {
	if cu.locked[c] {
		return
	}

	from := cu.blockOfCell[c]
	if from != toBlock {
		level := cu.betap(n, toBlock)
		if normal {
			cu.bump(c, toBlock, level, +1)
		} else {
			cu.bump(c, toBlock, level, -1)
		}
		return
	}

	if cu.betap(n, toBlock) < MaxLevel {
		level := cu.betap(n, toBlock) + 1
		for b := 0; b < cu.numBlocks; b++ {
			bb := hypergraph.BlockId(b)
			if bb == from {
				continue
			}
			if normal {
				cu.bump(c, bb, level, -1)
			} else {
				cu.bump(c, bb, level, +1)
			}
		}
	}
}

// bump mutates a single cell's gain at one level, relocating its gain-table
// entry to match.
func (cu *cutter) bump(c hypergraph.CellId, b hypergraph.BlockId, level, dir int) {
	old := cu.gains.get(c, b)
	var next Gain
	if dir > 0 {
		next = cu.gains.incLevel(c, b, level)
	} else {
		next = cu.gains.decLevel(c, b, level)
	}
	cu.gainTable.remove(old, c, b)
	cu.gainTable.add(next, c, b)
}

func (cu *cutter) fits(c hypergraph.CellId, b hypergraph.BlockId) bool {
	return cu.blockArea[b]+cu.in.Area(c) <= cu.in.AMax
}

// performMove locks c, purges its own pending gain-table entries — keyed
// by the block each entry actually belongs to, not by the move's
// destination — and propagates binding-count and gain updates to every
// cell sharing a net with c.
func (cu *cutter) performMove(mv move) {
	c := mv.cell
	to := mv.to
	from := cu.blockOfCell[c]

	cu.locked[c] = true

	for b := 0; b < cu.numBlocks; b++ {
		bb := hypergraph.BlockId(b)
		g := cu.gains.get(c, bb)
		cu.gainTable.remove(g, c, bb)
	}

	for _, n := range cu.in.NetsOfCell(c) {
		for b := 0; b < cu.numBlocks; b++ {
			bb := hypergraph.BlockId(b)
			if cu.betap(n, bb) <= MaxLevel && cu.beta.get(n, bb) > 0 {
				for _, nc := range cu.in.CellsOfNet(n) {
					if nc == c {
						continue
					}
					cu.updateGain(false, nc, bb, n)
				}
			}
		}

		cu.phi.dec(n, from)
		cu.lmd.inc(n, to)

		if cu.lmd.get(n, from) == 0 {
			cu.inftyCount[n] += cu.beta.set(n, from, cu.phi.get(n, from))
		} else {
			cu.inftyCount[n] += cu.beta.set(n, from, infinity)
		}

		if cu.lmd.get(n, to) == 0 {
			cu.inftyCount[n] += cu.beta.set(n, to, cu.phi.get(n, to))
		} else {
			cu.inftyCount[n] += cu.beta.set(n, to, infinity)
		}

		if cu.betap(n, to) <= MaxLevel && cu.beta.get(n, to) > 0 {
			for _, nc := range cu.in.CellsOfNet(n) {
				if nc == c || cu.locked[nc] {
					continue
				}
				cu.updateGain(true, nc, to, n)
			}
		}
	}
}

// Pass runs one full locked-cell pass over p and returns the prefix of
// moves, up to the point of maximum cumulative gain, that the caller
// should replay. It never mutates p.
func Pass(in *hypergraph.Input, p *hypergraph.Partition) []hypergraph.CellMove {
	cu := newCutter(in, p)
	minMoves := len(cu.locked) / 8

	var moveHistory []move
	var gainHistory []int
	currentGain := 0
	count := 0

	for {
		mv, ok := cu.gainTable.findFeasible(cu.locked, cu.fits)
		if !ok {
			break
		}

		g := cu.gains.get(mv.cell, mv.to)
		if g.G1 <= 0 && count >= minMoves {
			break
		}

		from := cu.blockOfCell[mv.cell]
		to := mv.to

		cu.performMove(mv)

		cu.blockArea[from] -= cu.in.Area(mv.cell)
		cu.blockCells[from] = removeCellID(cu.blockCells[from], mv.cell)
		cu.blockArea[to] += cu.in.Area(mv.cell)
		cu.blockCells[to] = append(cu.blockCells[to], mv.cell)
		cu.blockOfCell[mv.cell] = to

		count++
		currentGain += g.G1
		gainHistory = append(gainHistory, currentGain)
		moveHistory = append(moveHistory, mv)
	}

	maxIdx := -1
	maxVal := 0
	for i, v := range gainHistory {
		if maxIdx == -1 || v >= maxVal {
			maxVal = v
			maxIdx = i
		}
	}
	if maxIdx == -1 {
		return nil
	}
	moveHistory = moveHistory[:maxIdx+1]

	out := make([]hypergraph.CellMove, len(moveHistory))
	for i, mv := range moveHistory {
		out[i] = hypergraph.CellMove{Cell: mv.cell, To: mv.to}
	}
	return out
}

func removeCellID(cells []hypergraph.CellId, target hypergraph.CellId) []hypergraph.CellId {
	for i, c := range cells {
		if c == target {
			return append(cells[:i], cells[i+1:]...)
		}
	}
	return cells
}
