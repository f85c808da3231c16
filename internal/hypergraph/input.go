package hypergraph

// CellId identifies a cell (hypergraph vertex) by its zero-based index.
type CellId int

// NetId identifies a net (hyperedge) by its zero-based index.
type NetId int

// Input is the immutable hypergraph: cell areas, nets, and the two
// adjacency directions materialized for O(1) lookup. Construct via NewInput;
// once built, nothing in Input is ever mutated by any engine.
type Input struct {
	// AMax is the per-block area cap.
	AMax uint

	// areas[c] is the area of cell c.
	areas []uint

	// cellsOfNet[n] is the ordered, de-duplicated set of cells on net n.
	cellsOfNet [][]CellId

	// netsOfCell[c] is the ordered, de-duplicated set of nets touching cell c.
	netsOfCell [][]NetId

	// totalArea is the sum of all cell areas.
	totalArea uint

	// maxDegree is the largest |netsOfCell[c]| over all cells.
	maxDegree int
}

// NewInput builds an Input from per-cell areas and per-net cell membership.
// nets[n] lists the cells on net n; duplicate cells within a single net are
// collapsed. Returns ErrBadAreaCap, ErrNoCells, ErrEmptyNet, or
// ErrUnknownCell on a malformed instance.
func NewInput(aMax uint, areas []uint, nets [][]CellId) (*Input, error) {
	if aMax == 0 {
		return nil, ErrBadAreaCap
	}
	if len(areas) == 0 {
		return nil, ErrNoCells
	}

	n := len(areas)
	in := &Input{
		AMax:       aMax,
		areas:      append([]uint(nil), areas...),
		cellsOfNet: make([][]CellId, len(nets)),
		netsOfCell: make([][]NetId, n),
	}

	for netIdx, members := range nets {
		if len(members) == 0 {
			return nil, ErrEmptyNet
		}

		seen := make(map[CellId]bool, len(members))
		cells := make([]CellId, 0, len(members))
		for _, c := range members {
			if c < 0 || int(c) >= n {
				return nil, ErrUnknownCell
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			cells = append(cells, c)
		}

		in.cellsOfNet[netIdx] = cells
		for _, c := range cells {
			in.netsOfCell[c] = append(in.netsOfCell[c], NetId(netIdx))
		}
	}

	for _, a := range in.areas {
		in.totalArea += a
	}
	for _, ns := range in.netsOfCell {
		if len(ns) > in.maxDegree {
			in.maxDegree = len(ns)
		}
	}

	return in, nil
}

// NumCells returns N, the number of cells.
func (in *Input) NumCells() int { return len(in.areas) }

// NumNets returns M, the number of nets.
func (in *Input) NumNets() int { return len(in.cellsOfNet) }

// Area returns the area of cell c.
func (in *Input) Area(c CellId) uint { return in.areas[c] }

// CellsOfNet returns the cells on net n. The returned slice must not be
// mutated by the caller.
func (in *Input) CellsOfNet(n NetId) []CellId { return in.cellsOfNet[n] }

// NetsOfCell returns the nets touching cell c. The returned slice must not
// be mutated by the caller.
func (in *Input) NetsOfCell(c CellId) []NetId { return in.netsOfCell[c] }

// TotalArea returns the sum of all cell areas.
func (in *Input) TotalArea() uint { return in.totalArea }

// MinBlocks returns ⌈totalArea / A_max⌉, the fewest blocks that could ever
// hold the instance on area grounds alone.
func (in *Input) MinBlocks() int {
	return int((in.totalArea + in.AMax - 1) / in.AMax)
}

// MaxDegree returns max_c |netsOfCell[c]|, used to size the Sanchis gain
// table (its gain components range over [-maxDegree, +maxDegree]).
func (in *Input) MaxDegree() int { return in.maxDegree }

// Feasible reports whether totalArea <= N * A_max, a necessary (not
// sufficient) condition for a legal partition to exist.
func (in *Input) Feasible() bool {
	return in.totalArea <= uint(in.NumCells())*in.AMax
}
