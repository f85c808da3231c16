package sanchis

import "github.com/katalvlaran/hyperpart/internal/hypergraph"

// bindData stores one integer per (net, block) pair, defaulting to zero for
// any pair never written. It backs phi (free-pin counts), lambda
// (locked-pin counts), and beta (the effective count used for gain), each
// indexed by net and lazily populated per block the way the source's
// per-net hash map does — most nets touch only a handful of blocks.
type bindData struct {
	data []map[hypergraph.BlockId]int
}

func newBindData(numNets int) *bindData {
	data := make([]map[hypergraph.BlockId]int, numNets)
	for i := range data {
		data[i] = make(map[hypergraph.BlockId]int)
	}
	return &bindData{data: data}
}

func (d *bindData) get(n hypergraph.NetId, b hypergraph.BlockId) int {
	return d.data[n][b]
}

func (d *bindData) inc(n hypergraph.NetId, b hypergraph.BlockId) {
	if d.data[n][b] == infinity {
		return
	}
	d.data[n][b]++
}

func (d *bindData) dec(n hypergraph.NetId, b hypergraph.BlockId) {
	if d.data[n][b] == infinity {
		return
	}
	d.data[n][b]--
}

// set overwrites the value and reports the change (+1, -1, or 0) in the
// number of infinite entries, so callers can maintain a running count of
// how many blocks are "locked" for a net without rescanning it.
func (d *bindData) set(n hypergraph.NetId, b hypergraph.BlockId, value int) int {
	old := d.data[n][b]
	d.data[n][b] = value
	if old != infinity && value == infinity {
		return 1
	}
	if old == infinity && value != infinity {
		return -1
	}
	return 0
}
