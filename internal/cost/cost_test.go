package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpart/internal/cost"
	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

// buildTrivial is spec.md §8 scenario 1: 3 cells area 1 each, one net over
// all of them, A_max=10. A single-block partition costs 0.
func buildTrivial(t *testing.T) (*hypergraph.Input, *hypergraph.Partition) {
	t.Helper()
	in, err := hypergraph.NewInput(10, []uint{1, 1, 1}, [][]hypergraph.CellId{{0, 1, 2}})
	require.NoError(t, err)
	p := hypergraph.NewPartition(1, 3)
	p.AddCell(0, 0, 1)
	p.AddCell(0, 1, 1)
	p.AddCell(0, 2, 1)
	return in, p
}

func TestFromScratch_SingleBlockZeroCost(t *testing.T) {
	in, p := buildTrivial(t)
	assert.Equal(t, 0, cost.FromScratch(in, p))
}

// TestFromScratch_ForcedCut is spec.md §8 scenario 2: A_max=1, two cells of
// area 1 sharing one net; the only legal partition splits them, cost=1.
func TestFromScratch_ForcedCut(t *testing.T) {
	in, err := hypergraph.NewInput(1, []uint{1, 1}, [][]hypergraph.CellId{{0, 1}})
	require.NoError(t, err)

	p := hypergraph.NewPartition(2, 2)
	p.AddCell(0, 0, 1)
	p.AddCell(1, 1, 1)

	assert.Equal(t, 1, cost.FromScratch(in, p))
}

// TestFromScratch_AllCellsOneNet is spec.md §8's boundary: every cell
// belongs to a single net of size N, so any K-way legal partition costs
// exactly (K-1)².
func TestFromScratch_AllCellsOneNet(t *testing.T) {
	in, err := hypergraph.NewInput(10, []uint{1, 1, 1, 1}, [][]hypergraph.CellId{{0, 1, 2, 3}})
	require.NoError(t, err)

	p := hypergraph.NewPartition(3, 4)
	p.AddCell(0, 0, 1)
	p.AddCell(1, 1, 1)
	p.AddCell(1, 2, 1)
	p.AddCell(2, 3, 1)

	assert.Equal(t, 4, cost.FromScratch(in, p)) // (3-1)^2 = 4
}

func TestPerNet_MatchesSum(t *testing.T) {
	in, p := buildTrivial(t)
	spans := cost.PerNet(in, p)
	assert.Equal(t, []int{1}, spans)

	sum := 0
	for _, s := range spans {
		sum += (s - 1) * (s - 1)
	}
	assert.Equal(t, cost.FromScratch(in, p), sum)
}
