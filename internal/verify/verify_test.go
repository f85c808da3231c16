package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
	"github.com/katalvlaran/hyperpart/internal/verify"
)

func TestCheck_Valid(t *testing.T) {
	in, err := hypergraph.NewInput(10, []uint{1, 1, 1}, [][]hypergraph.CellId{{0, 1, 2}})
	require.NoError(t, err)

	p := hypergraph.NewPartition(1, 3)
	p.AddCell(0, 0, 1)
	p.AddCell(0, 1, 1)
	p.AddCell(0, 2, 1)

	assert.NoError(t, verify.Check(in, p))
}

func TestCheck_MissingCell(t *testing.T) {
	in, err := hypergraph.NewInput(10, []uint{1, 1, 1}, nil)
	require.NoError(t, err)

	p := hypergraph.NewPartition(1, 3)
	p.AddCell(0, 0, 1)
	p.AddCell(0, 1, 1)
	// cell 2 never placed.

	err = verify.Check(in, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrCellConservation)
}

func TestCheck_DuplicateCell(t *testing.T) {
	in, err := hypergraph.NewInput(10, []uint{1, 1}, nil)
	require.NoError(t, err)

	p := hypergraph.NewPartition(2, 2)
	p.AddCell(0, 0, 1)
	p.AddCell(0, 1, 1)
	// Force a duplicate entry directly into block 1's cell list without
	// going through MoveCell, simulating a corrupted partition.
	p.Blocks[1].Cells = append(p.Blocks[1].Cells, 1)
	p.Blocks[1].Area = 1

	err = verify.Check(in, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrCellConservation)
}

func TestCheck_AreaExceeded(t *testing.T) {
	in, err := hypergraph.NewInput(1, []uint{1, 1}, nil)
	require.NoError(t, err)

	p := hypergraph.NewPartition(1, 2)
	p.AddCell(0, 0, 1)
	p.AddCell(0, 1, 1) // area now 2 > A_max 1

	err = verify.Check(in, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrAreaExceeded)
}

func TestCheckCost_Agrees(t *testing.T) {
	in, err := hypergraph.NewInput(1, []uint{1, 1}, [][]hypergraph.CellId{{0, 1}})
	require.NoError(t, err)

	p := hypergraph.NewPartition(2, 2)
	p.AddCell(0, 0, 1)
	p.AddCell(1, 1, 1)

	assert.NoError(t, verify.CheckCost(in, p, 1))
	assert.ErrorIs(t, verify.CheckCost(in, p, 0), verify.ErrCostMismatch)
}
