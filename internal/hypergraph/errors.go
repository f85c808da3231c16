// Package hypergraph defines the immutable hypergraph Input and the mutable
// Partition under optimization, along with the invariants both must uphold.
//
// Input models cells (vertices with an integer area) and nets (hyperedges:
// arbitrary non-empty subsets of cells). Partition assigns every cell to
// exactly one block, subject to a per-block area cap.
//
// Errors:
//
//	ErrNoCells        - input declares zero cells.
//	ErrBadAreaCap     - A_max is zero or negative.
//	ErrUnknownCell    - a net references a cell ID outside [0, N).
//	ErrEmptyNet       - a net was declared with zero cells.
//	ErrInfeasible     - even a fill with N or more blocks overflows A_max.
package hypergraph

import "errors"

var (
	// ErrNoCells indicates the input declares zero cells.
	ErrNoCells = errors.New("hypergraph: input has no cells")

	// ErrBadAreaCap indicates a non-positive A_max.
	ErrBadAreaCap = errors.New("hypergraph: area cap must be positive")

	// ErrUnknownCell indicates a net references an out-of-range cell ID.
	ErrUnknownCell = errors.New("hypergraph: net references unknown cell")

	// ErrEmptyNet indicates a net was declared with zero cells.
	ErrEmptyNet = errors.New("hypergraph: net has no cells")

	// ErrInfeasible indicates no legal partition can possibly exist.
	ErrInfeasible = errors.New("hypergraph: instance is infeasible")
)
