// Package sanchis implements the optional multi-level gain-table cut
// engine: a locked-cell pass that greedily relocates cells in order of a
// two-level lexicographic gain, replaying only the prefix of moves up to
// the point of maximum cumulative gain. It is never run unless the caller
// explicitly opts in (cmd/hyperpart's --sanchis flag; PA2_PASS_ROUNDS then
// caps its rounds), mirroring that the source keeps this engine gated off
// by default in favor of the simulated-annealing engine.
package sanchis

// MaxLevel bounds how many "steps away from critical" a net can be and
// still influence a cell's gain vector.
const MaxLevel = 2

// DefaultNBad is how many consecutive non-improving passes RunRounds
// tolerates before giving up.
const DefaultNBad = 10

// infinity marks a (net, block) binding count that can never decrease:
// a net with a locked cell present in that block.
const infinity = 1 << 30
