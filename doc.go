// Package hyperpart (module github.com/katalvlaran/hyperpart) solves the
// area-constrained hypergraph multi-way
// partitioning problem: given a hypergraph of cells (with integer areas) and
// nets (hyperedges over cells), it assigns every cell to one of the fewest
// possible blocks such that no block's total area exceeds a configured cap,
// while minimizing the number and severity of nets that straddle multiple
// blocks.
//
// Two collaborating engines do the work:
//
//   - internal/startpart builds an initial legal partition with as few
//     blocks as the area cap allows.
//   - internal/sa improves it with an incremental single-cell-move
//     simulated-annealing search, running until a wall-clock deadline.
//
// A third, optional engine (internal/sanchis) performs locked-cell
// multi-level gain-table passes; it is available but not run by default.
//
// Usage:
//
//	hyperpart [flags] <input_path> <output_path>
//
// See internal/hgio for the input/output text formats and internal/config
// for the environment-variable options. The runnable command lives in
// cmd/hyperpart.
package hyperpart
