// Package sa implements the incremental single-cell-move simulated-annealing
// engine: the primary optimizer for the area-constrained hypergraph
// partitioning problem. It maintains per-(block,net) pin counts and per-net
// span counts incrementally so that evaluating and accepting a move costs
// O(|nets(cell)|) rather than a full recompute, and auto-tunes its cooling
// rate so the temperature reaches T_min exactly at a wall-clock deadline.
//
// Options shape (Deadline/Rand/Logger threaded as explicit fields rather
// than package globals) follows the same convention the teacher library
// uses for its max-flow engines' FlowOptions.
//
// Errors:
//
//	ErrNilInput - in or start is nil.
package sa

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

// ErrNilInput indicates a nil Input or starting Partition was passed to Run.
var ErrNilInput = errors.New("sa: input and starting partition must be non-nil")

// Options configures one Run. Zero-value fields are filled in by
// DefaultOptions / normalize with spec.md §4.3's defaults.
type Options struct {
	// Deadline is T_deadline: the wall-clock duration the engine runs for.
	Deadline time.Duration

	// T0, TMin, TMax, Alpha0 are the initial temperature, clamp bounds, and
	// default cooling factor from spec.md §4.3.
	T0, TMin, TMax, Alpha0 float64

	// RetuneInterval is how often (wall-clock) the engine recomputes alpha.
	RetuneInterval time.Duration

	// Rand is the single PRNG stream cell-id, block-id, and [0,1) draws all
	// come from. Non-nil callers get reproducible draws for testing; the
	// production default is time-seeded (see spec.md §4.3 "Determinism").
	Rand *rand.Rand

	// Logger receives one debug line per cooling retune. Defaults to a
	// no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns spec.md §4.3's defaults: T0=10.0, Alpha0≈1,
// TMin=0.2, TMax=1.0, Deadline=10m, retuning every 10s.
func DefaultOptions() Options {
	return Options{
		Deadline:       10 * time.Minute,
		T0:             10.0,
		TMin:           0.2,
		TMax:           1.0,
		Alpha0:         0.99999999999999,
		RetuneInterval: 10 * time.Second,
		Rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:         zerolog.Nop(),
	}
}

func (o *Options) normalize() {
	def := DefaultOptions()
	if o.Deadline <= 0 {
		o.Deadline = def.Deadline
	}
	if o.T0 <= 0 {
		o.T0 = def.T0
	}
	if o.TMin <= 0 {
		o.TMin = def.TMin
	}
	if o.TMax <= 0 {
		o.TMax = def.TMax
	}
	if o.Alpha0 <= 0 {
		o.Alpha0 = def.Alpha0
	}
	if o.RetuneInterval <= 0 {
		o.RetuneInterval = def.RetuneInterval
	}
	if o.Rand == nil {
		o.Rand = def.Rand
	}
}

// Stats reports non-behavioral counters from a completed Run: total
// proposals, committed (accepted) passes, and the final temperature. This
// is a deliberate, documented addition beyond spec.md (see SPEC_FULL.md
// §6.3) — it changes nothing about which Partition is returned.
type Stats struct {
	TotalPasses    int64
	AbortedPasses  int64
	AcceptedPasses int64
	FinalTemp      float64
	FinalCost      int
}

// Run mutates start in place via repeated single-cell moves accepted by the
// Metropolis criterion, until opts.Deadline elapses or ctx is cancelled, and
// returns it: the final partition, not the best-seen one (spec.md §4.3's
// "Termination"). The SA engine never fails once inputs are validated:
// every proposed move either commits, aborts as infeasible, or is rejected
// (spec.md §7).
func Run(ctx context.Context, in *hypergraph.Input, start *hypergraph.Partition, opts Options) (*hypergraph.Partition, Stats, error) {
	if in == nil || start == nil {
		return nil, Stats{}, ErrNilInput
	}
	opts.normalize()

	ctx, cancel := context.WithTimeout(ctx, opts.Deadline)
	defer cancel()

	k := start.NumBlocks()
	m := in.NumNets()

	pins := newPinTable(k, m)
	span := make([]int, m)
	for b, blk := range start.Blocks {
		for _, c := range blk.Cells {
			for _, n := range in.NetsOfCell(c) {
				pins.inc(hypergraph.BlockId(b), n)
			}
		}
	}
	for n := 0; n < m; n++ {
		for b := 0; b < k; b++ {
			if pins.get(hypergraph.BlockId(b), hypergraph.NetId(n)) > 0 {
				span[n]++
			}
		}
	}

	curCost := 0
	for _, s := range span {
		d := s - 1
		curCost += d * d
	}

	T := opts.T0
	alpha := opts.Alpha0

	startTime := time.Now()
	lastRetune := startTime
	sinceRetune := int64(0)

	var stats Stats

	for {
		select {
		case <-ctx.Done():
			stats.FinalTemp = T
			stats.FinalCost = curCost
			return start, stats, nil
		default:
		}

		stats.TotalPasses++

		c := hypergraph.CellId(opts.Rand.Intn(in.NumCells()))
		from := start.BlockOf(c)
		to := hypergraph.BlockId(opts.Rand.Intn(k))

		if to == from || start.Blocks[to].Area+in.Area(c) > in.AMax {
			stats.AbortedPasses++
			continue
		}

		delta := 0
		for _, n := range in.NetsOfCell(c) {
			spanDelta := 0
			if pins.get(from, n) == 1 {
				spanDelta--
			}
			if pins.get(to, n) == 0 {
				spanDelta++
			}
			oldSpan := span[n]
			newSpan := oldSpan + spanDelta
			delta += (newSpan-1)*(newSpan-1) - (oldSpan-1)*(oldSpan-1)
		}

		accept := delta < 0
		if !accept {
			u := opts.Rand.Float64()
			accept = u <= math.Exp(-float64(delta)/T)
		}
		if !accept {
			continue
		}

		// Commit: replay the same per-net loop, mutating this time, in the
		// exact order spec.md §4.3 step 5 requires.
		for _, n := range in.NetsOfCell(c) {
			spanDelta := 0
			if pins.get(from, n) == 1 {
				spanDelta--
			}
			pins.dec(from, n)
			if pins.get(to, n) == 0 {
				spanDelta++
			}
			pins.inc(to, n)
			span[n] += spanDelta
		}
		start.MoveCell(c, to, in.Area(c))
		curCost += delta

		stats.AcceptedPasses++
		sinceRetune++

		T = clampTemp(T*alpha, opts.TMin, opts.TMax)

		if time.Since(lastRetune) >= opts.RetuneInterval {
			elapsed := time.Since(startTime)
			tRem := opts.Deadline - elapsed
			rate := float64(sinceRetune) / opts.RetuneInterval.Seconds()

			alpha = retuneAlpha(T, opts.TMin, opts.Alpha0, tRem, rate)

			opts.Logger.Debug().
				Dur("elapsed", elapsed).
				Float64("temp", T).
				Float64("rate_per_sec", rate).
				Float64("alpha", alpha).
				Int("cost", curCost).
				Msg("sa: retuned cooling schedule")

			lastRetune = time.Now()
			sinceRetune = 0
		}
	}
}
