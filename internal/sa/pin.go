package sa

import "github.com/katalvlaran/hyperpart/internal/hypergraph"

// pinTable tracks pin[BlockId, NetId]: the number of cells of a net
// resident in a block. Only non-zero entries are conceptually meaningful;
// the dense implementation still allocates K*M counters (fine below
// spec.md §9's 2^24 threshold), while the sparse implementation keeps only
// non-zero entries, as spec.md §9 prescribes for larger instances.
type pinTable interface {
	get(b hypergraph.BlockId, n hypergraph.NetId) uint32
	inc(b hypergraph.BlockId, n hypergraph.NetId)
	dec(b hypergraph.BlockId, n hypergraph.NetId)
}

// denseThreshold is spec.md §9's "Choose dense when K·M < 2^24".
const denseThreshold = 1 << 24

// newPinTable picks a dense or sparse representation based on K*M.
func newPinTable(k, m int) pinTable {
	if k*m < denseThreshold {
		return &densePins{m: m, data: make([]uint32, k*m)}
	}
	return &sparsePins{data: make(map[uint64]uint32)}
}

// densePins is a flat K*M array addressed as data[b*M+n].
type densePins struct {
	m    int
	data []uint32
}

func (p *densePins) index(b hypergraph.BlockId, n hypergraph.NetId) int {
	return int(b)*p.m + int(n)
}

func (p *densePins) get(b hypergraph.BlockId, n hypergraph.NetId) uint32 {
	return p.data[p.index(b, n)]
}

func (p *densePins) inc(b hypergraph.BlockId, n hypergraph.NetId) {
	p.data[p.index(b, n)]++
}

func (p *densePins) dec(b hypergraph.BlockId, n hypergraph.NetId) {
	p.data[p.index(b, n)]--
}

// sparsePins keys a hash map by a packed 64-bit (block, net) integer, per
// spec.md §9's note that this preserves O(1) expected access without the
// composite-hash ceremony the original's (BlockId, NetId) struct key needed.
type sparsePins struct {
	data map[uint64]uint32
}

func pinKey(b hypergraph.BlockId, n hypergraph.NetId) uint64 {
	return uint64(uint32(b))<<32 | uint64(uint32(n))
}

func (p *sparsePins) get(b hypergraph.BlockId, n hypergraph.NetId) uint32 {
	return p.data[pinKey(b, n)]
}

func (p *sparsePins) inc(b hypergraph.BlockId, n hypergraph.NetId) {
	p.data[pinKey(b, n)]++
}

func (p *sparsePins) dec(b hypergraph.BlockId, n hypergraph.NetId) {
	key := pinKey(b, n)
	v := p.data[key] - 1
	if v == 0 {
		delete(p.data, key)
	} else {
		p.data[key] = v
	}
}
