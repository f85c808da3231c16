package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

func TestPartition_AddCell(t *testing.T) {
	p := hypergraph.NewPartition(2, 3)
	p.AddCell(0, 0, 2)
	p.AddCell(0, 1, 3)
	p.AddCell(1, 2, 4)

	assert.Equal(t, uint(5), p.Blocks[0].Area)
	assert.Equal(t, uint(4), p.Blocks[1].Area)
	assert.Equal(t, hypergraph.BlockId(0), p.BlockOf(0))
	assert.Equal(t, hypergraph.BlockId(1), p.BlockOf(2))
}

func TestPartition_MoveCell(t *testing.T) {
	p := hypergraph.NewPartition(2, 2)
	p.AddCell(0, 0, 3)
	p.AddCell(0, 1, 4)

	p.MoveCell(1, 1, 4)

	assert.Equal(t, uint(3), p.Blocks[0].Area)
	assert.Equal(t, uint(4), p.Blocks[1].Area)
	assert.Equal(t, []hypergraph.CellId{0}, p.Blocks[0].Cells)
	assert.Equal(t, []hypergraph.CellId{1}, p.Blocks[1].Cells)
	assert.Equal(t, hypergraph.BlockId(1), p.BlockOf(1))
}

// TestPartition_MoveCell_RoundTrip exercises spec.md §8's round-trip law:
// moving a cell and then moving it back restores area and membership state.
func TestPartition_MoveCell_RoundTrip(t *testing.T) {
	p := hypergraph.NewPartition(2, 2)
	p.AddCell(0, 0, 3)
	p.AddCell(1, 1, 4)

	beforeArea0, beforeArea1 := p.Blocks[0].Area, p.Blocks[1].Area

	p.MoveCell(0, 1, 3)
	p.MoveCell(0, 0, 3)

	assert.Equal(t, beforeArea0, p.Blocks[0].Area)
	assert.Equal(t, beforeArea1, p.Blocks[1].Area)
	assert.Equal(t, hypergraph.BlockId(0), p.BlockOf(0))
}

func TestPartition_Clone_Independence(t *testing.T) {
	p := hypergraph.NewPartition(1, 1)
	p.AddCell(0, 0, 5)

	clone := p.Clone()
	clone.MoveCell(0, 0, 5) // no-op move, but exercises independence via area mutation below
	clone.Blocks[0].Area = 999

	assert.Equal(t, uint(5), p.Blocks[0].Area)
	assert.Equal(t, uint(999), clone.Blocks[0].Area)
}
