package matrixview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
	"github.com/katalvlaran/hyperpart/internal/matrixview"
)

func TestBuild_On(t *testing.T) {
	in, err := hypergraph.NewInput(10, []uint{1, 1, 1}, [][]hypergraph.CellId{{0, 1}, {1, 2}})
	require.NoError(t, err)

	m := matrixview.Build(in)

	assert.True(t, m.On(0, 0))
	assert.True(t, m.On(1, 0))
	assert.False(t, m.On(2, 0))
	assert.True(t, m.On(1, 1))
	assert.True(t, m.On(2, 1))
}

func TestNetDegreeHistogram(t *testing.T) {
	in, err := hypergraph.NewInput(10, []uint{1, 1, 1, 1}, [][]hypergraph.CellId{{0, 1}, {2, 3}, {0, 1, 2}})
	require.NoError(t, err)

	hist := matrixview.Build(in).NetDegreeHistogram()
	assert.Equal(t, 2, hist[2])
	assert.Equal(t, 1, hist[3])
}
