// Package startpart builds a legal starting Partition using as few blocks
// as possible, via escalating-k randomized fill: fill k blocks by always
// adding the next cell to whichever block currently has the least area
// (breaking ties uniformly at random), and grow k geometrically whenever a
// fill attempt overflows the area cap.
package startpart

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

// Find returns a legal Partition for in using the fewest blocks the
// escalating-k search can reach, or ErrInfeasible if no k up to N succeeds.
// rng must be non-nil; callers that want non-deterministic behavior (the
// default for this system, see spec.md §4.3 "Determinism") should pass a
// rand.Rand seeded from process entropy, as cmd/hyperpart does.
func Find(in *hypergraph.Input, rng *rand.Rand, log zerolog.Logger) (*hypergraph.Partition, error) {
	n := in.NumCells()
	k := in.MinBlocks()
	if k < 1 {
		k = 1
	}

	for {
		if p, ok := attempt(in, k, rng); ok {
			return p, nil
		}

		log.Debug().Int("k", k).Msg("startpart: fill attempt overflowed area cap")

		if k >= n {
			return nil, hypergraph.ErrInfeasible
		}
		k = nextK(k, n)
	}
}

// nextK implements spec.md §4.2 step 3 exactly:
// k ← min(max(⌈1.1·k⌉, k+1), N).
func nextK(k, n int) int {
	grown := int(math.Ceil(1.1 * float64(k)))
	if grown < k+1 {
		grown = k + 1
	}
	if grown > n {
		grown = n
	}
	return grown
}

// attempt tries a single k-way fill pass, returning (partition, true) on
// success or (nil, false) the moment any block would exceed A_max.
func attempt(in *hypergraph.Input, k int, rng *rand.Rand) (*hypergraph.Partition, bool) {
	p := hypergraph.NewPartition(k, in.NumCells())

	for c := 0; c < in.NumCells(); c++ {
		b := sampleMinAreaBlock(p, rng)
		area := in.Area(hypergraph.CellId(c))

		p.AddCell(b, hypergraph.CellId(c), area)
		if p.Blocks[b].Area > in.AMax {
			return nil, false
		}
	}

	return p, true
}

// sampleMinAreaBlock returns a uniformly-random block among those tied for
// the minimum current area.
func sampleMinAreaBlock(p *hypergraph.Partition, rng *rand.Rand) hypergraph.BlockId {
	minArea := p.Blocks[0].Area
	for _, blk := range p.Blocks[1:] {
		if blk.Area < minArea {
			minArea = blk.Area
		}
	}

	candidates := make([]hypergraph.BlockId, 0, len(p.Blocks))
	for i, blk := range p.Blocks {
		if blk.Area == minArea {
			candidates = append(candidates, hypergraph.BlockId(i))
		}
	}

	return candidates[rng.Intn(len(candidates))]
}
