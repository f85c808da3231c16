// Package matrixview builds a dense cell×net incidence view of a
// hypergraph.Input, adapting the teacher library's vertex×edge incidence
// matrix (github.com/katalvlaran/lvlath/matrix) to cells and nets. It exists
// for PA2_DEBUG_INPUTS reporting and for tests that want an "is cell c on
// net n" oracle independent of the Input's own adjacency slices.
package matrixview

import "github.com/katalvlaran/hyperpart/internal/hypergraph"

// Matrix is a dense N×M incidence view: Data[c][n] is true iff cell c lies
// on net n. Construction is O(N*M + Σ|net|) and memory is O(N*M); this is
// meant for debug tooling and small instances, not the engines' hot paths.
type Matrix struct {
	NumCells int
	NumNets  int
	Data     [][]bool
}

// Build constructs the incidence view for in.
func Build(in *hypergraph.Input) Matrix {
	m := Matrix{
		NumCells: in.NumCells(),
		NumNets:  in.NumNets(),
		Data:     make([][]bool, in.NumCells()),
	}
	for c := range m.Data {
		m.Data[c] = make([]bool, in.NumNets())
	}
	for n := 0; n < in.NumNets(); n++ {
		for _, c := range in.CellsOfNet(hypergraph.NetId(n)) {
			m.Data[c][n] = true
		}
	}
	return m
}

// On reports whether cell c lies on net n.
func (m Matrix) On(c hypergraph.CellId, n hypergraph.NetId) bool {
	return m.Data[c][n]
}

// NetDegreeHistogram returns, for each distinct net size observed, how many
// nets have that size. Used by PA2_DEBUG_INPUTS to print a compact summary
// of the instance without dumping every net.
func (m Matrix) NetDegreeHistogram() map[int]int {
	hist := make(map[int]int)
	for n := 0; n < m.NumNets; n++ {
		size := 0
		for c := 0; c < m.NumCells; c++ {
			if m.Data[c][n] {
				size++
			}
		}
		hist[size]++
	}
	return hist
}
