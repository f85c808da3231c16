package hypergraph

// BlockId identifies a block (partition class) by its zero-based index.
type BlockId int

// Block is one partition class: its total area and the cells it holds.
// Cells are appended in insertion order; MoveCell removes a cell by moving
// the block's last cell into its slot, so order is not preserved across
// moves. Order is not semantically significant.
type Block struct {
	Area  uint
	Cells []CellId
}

// Partition is the mutable state under optimization. Every engine in this
// module (startpart, sa, sanchis) consumes and produces a *Partition; the
// invariants below hold before and after every call that returns
// successfully:
//
//   - every cell appears in exactly one block,
//   - blocks[i].Area == sum of areas of blocks[i].Cells,
//   - blocks[i].Area <= A_max,
//   - blockOfCell[c] == i  iff  c is in blocks[i].Cells.
//
// Partition carries no locks: the engines that mutate it are specified to
// run single-threaded (see internal/sa, internal/sanchis), so synchronizing
// here would guard against a race that cannot occur.
type Partition struct {
	Blocks      []Block
	blockOfCell []BlockId
}

// NewPartition allocates k empty blocks over n cells. All cells are
// initially unassigned (BlockOf returns -1) until AddCell places them.
func NewPartition(k, n int) *Partition {
	p := &Partition{
		Blocks:      make([]Block, k),
		blockOfCell: make([]BlockId, n),
	}
	for i := range p.blockOfCell {
		p.blockOfCell[i] = -1
	}
	return p
}

// NumBlocks returns K, the current number of blocks.
func (p *Partition) NumBlocks() int { return len(p.Blocks) }

// BlockOf returns the block currently holding cell c, or -1 if unassigned.
func (p *Partition) BlockOf(c CellId) BlockId { return p.blockOfCell[c] }

// AddCell places a not-yet-assigned cell into block b, appending it to the
// block's cell list and adding area to the block's running total. Used by
// startpart during initial construction; callers are responsible for area
// legality (NewPartition does not enforce A_max).
func (p *Partition) AddCell(b BlockId, c CellId, area uint) {
	p.Blocks[b].Cells = append(p.Blocks[b].Cells, c)
	p.Blocks[b].Area += area
	p.blockOfCell[c] = b
}

// MoveCell relocates cell c from its current block to "to", in the exact
// sequence spec.md §4.3 step 5 requires: remove from the old block, append
// to the new one, update both areas, then update blockOfCell. Callers
// (internal/sa, internal/sanchis) own feasibility checking and any
// incremental pin/span/gain bookkeeping; MoveCell only maintains the
// Partition-level invariants above.
func (p *Partition) MoveCell(c CellId, to BlockId, area uint) {
	from := p.blockOfCell[c]

	cells := p.Blocks[from].Cells
	for i, id := range cells {
		if id == c {
			cells[i] = cells[len(cells)-1]
			p.Blocks[from].Cells = cells[:len(cells)-1]
			break
		}
	}
	p.Blocks[from].Area -= area

	p.Blocks[to].Cells = append(p.Blocks[to].Cells, c)
	p.Blocks[to].Area += area

	p.blockOfCell[c] = to
}

// CellMove is a single cell relocation, as produced by internal/sanchis's
// Pass and consumed by Partition.MoveCell during replay.
type CellMove struct {
	Cell CellId
	To   BlockId
}

// Clone returns a deep copy, independent of the receiver under further
// mutation. Used by internal/sanchis to keep a copy of the lowest-cost
// partition seen across rounds.
func (p *Partition) Clone() *Partition {
	out := &Partition{
		Blocks:      make([]Block, len(p.Blocks)),
		blockOfCell: append([]BlockId(nil), p.blockOfCell...),
	}
	for i, b := range p.Blocks {
		out.Blocks[i] = Block{
			Area:  b.Area,
			Cells: append([]CellId(nil), b.Cells...),
		}
	}
	return out
}
