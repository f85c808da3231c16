package sa

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

func buildFuzzInput(t *testing.T) *hypergraph.Input {
	t.Helper()
	areas := make([]uint, 30)
	for i := range areas {
		areas[i] = 1
	}
	nets := [][]hypergraph.CellId{
		{0, 1, 2, 3}, {2, 3, 4, 5}, {5, 6, 7}, {7, 8, 9, 10},
		{10, 11, 12}, {12, 13, 14, 15}, {0, 15, 20}, {16, 17, 18, 19},
		{19, 20, 21}, {21, 22, 23, 24}, {24, 25, 26}, {26, 27, 28, 29},
		{1, 14, 27}, {3, 9, 21}, {6, 18, 29},
	}
	// A_max 8 leaves slack in the 6-cell blocks the tests start from, so
	// moves can actually be committed.
	in, err := hypergraph.NewInput(8, areas, nets)
	require.NoError(t, err)
	return in
}

func scratchPinsAndSpan(t *testing.T, in *hypergraph.Input, p *hypergraph.Partition) ([]int, int) {
	t.Helper()
	m := in.NumNets()
	span := make([]int, m)
	for n := 0; n < m; n++ {
		seenBlocks := make(map[hypergraph.BlockId]bool)
		for _, c := range in.CellsOfNet(hypergraph.NetId(n)) {
			seenBlocks[p.BlockOf(c)] = true
		}
		span[n] = len(seenBlocks)
	}
	cost := 0
	for _, s := range span {
		d := s - 1
		cost += d * d
	}
	return span, cost
}

// TestRun_PinSpanConsistency is spec.md §8 scenario 5: after many SA passes,
// incrementally tracked cost must equal a from-scratch recomputation.
func TestRun_PinSpanConsistency(t *testing.T) {
	in := buildFuzzInput(t)
	k := 5
	p := hypergraph.NewPartition(k, in.NumCells())
	for c := 0; c < in.NumCells(); c++ {
		p.AddCell(hypergraph.BlockId(c%k), hypergraph.CellId(c), in.Area(hypergraph.CellId(c)))
	}

	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(42))
	opts.Deadline = 50 * time.Millisecond
	opts.RetuneInterval = 5 * time.Millisecond

	result, stats, err := Run(context.Background(), in, p, opts)
	require.NoError(t, err)
	require.NotNil(t, result)

	_, scratchCost := scratchPinsAndSpan(t, in, result)
	assert.Equal(t, scratchCost, stats.FinalCost)

	total := uint(0)
	seen := make([]bool, in.NumCells())
	for _, blk := range result.Blocks {
		for _, c := range blk.Cells {
			assert.False(t, seen[c], "cell %d counted twice", c)
			seen[c] = true
			total += in.Area(c)
		}
		assert.LessOrEqual(t, blk.Area, in.AMax)
	}
	for _, s := range seen {
		assert.True(t, s)
	}
}

// TestRun_DeadlineRespected is spec.md §8 scenario 6: with a short deadline
// the engine returns promptly rather than running indefinitely.
func TestRun_DeadlineRespected(t *testing.T) {
	in := buildFuzzInput(t)
	k := 5
	p := hypergraph.NewPartition(k, in.NumCells())
	for c := 0; c < in.NumCells(); c++ {
		p.AddCell(hypergraph.BlockId(c%k), hypergraph.CellId(c), in.Area(hypergraph.CellId(c)))
	}

	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(7))
	opts.Deadline = 100 * time.Millisecond
	opts.RetuneInterval = 20 * time.Millisecond

	start := time.Now()
	_, _, err := Run(context.Background(), in, p, opts)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, 200*time.Millisecond)
}

func TestRun_NilInputs(t *testing.T) {
	in := buildFuzzInput(t)
	p := hypergraph.NewPartition(2, in.NumCells())

	_, _, err := Run(context.Background(), nil, p, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilInput)

	_, _, err = Run(context.Background(), in, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestRun_FinalCostTrackedAndBounded(t *testing.T) {
	in := buildFuzzInput(t)
	k := 5
	p := hypergraph.NewPartition(k, in.NumCells())
	for c := 0; c < in.NumCells(); c++ {
		p.AddCell(hypergraph.BlockId(c%k), hypergraph.CellId(c), in.Area(hypergraph.CellId(c)))
	}
	_, startCost := scratchPinsAndSpan(t, in, p)

	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(99))
	opts.Deadline = 200 * time.Millisecond
	opts.RetuneInterval = 10 * time.Millisecond
	opts.TMin = 0.01
	opts.T0 = 0.5

	result, stats, err := Run(context.Background(), in, p, opts)
	require.NoError(t, err)

	_, finalCost := scratchPinsAndSpan(t, in, result)
	assert.Equal(t, finalCost, stats.FinalCost)
	assert.LessOrEqual(t, finalCost, startCost+startCost)
}
