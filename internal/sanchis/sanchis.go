package sanchis

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hyperpart/internal/cost"
	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

// Replay walks moves in order, applying each to p via MoveCell. It is the
// caller-side counterpart to Pass, which never mutates p itself.
func Replay(in *hypergraph.Input, p *hypergraph.Partition, moves []hypergraph.CellMove) {
	for _, mv := range moves {
		p.MoveCell(mv.Cell, mv.To, in.Area(mv.Cell))
	}
}

// RunRounds repeats Pass/Replay against p until DefaultNBad (or nBad, if
// positive) consecutive rounds fail to improve cost, or maxRounds rounds
// have run, whichever comes first. It mutates p in place, leaves it holding
// the lowest-cost partition any round reached, and returns p with that cost.
func RunRounds(in *hypergraph.Input, p *hypergraph.Partition, maxRounds, nBad int, log zerolog.Logger) (*hypergraph.Partition, int) {
	if nBad <= 0 {
		nBad = DefaultNBad
	}
	if maxRounds <= 0 {
		maxRounds = 1 << 30
	}

	curCost := cost.FromScratch(in, p)
	best := p.Clone()
	badRounds := 0
	round := 0

	for round < maxRounds && badRounds < nBad {
		round++

		moves := Pass(in, p)
		if len(moves) == 0 {
			badRounds++
			log.Debug().Int("round", round).Int("bad_rounds", badRounds).Msg("sanchis: pass produced no moves")
			continue
		}

		Replay(in, p, moves)
		newCost := cost.FromScratch(in, p)

		if newCost < curCost {
			curCost = newCost
			best = p.Clone()
			badRounds = 0
		} else {
			badRounds++
		}

		log.Debug().
			Int("round", round).
			Int("moves", len(moves)).
			Int("cost", newCost).
			Int("bad_rounds", badRounds).
			Msg("sanchis: pass applied")
	}

	*p = *best
	return p, curCost
}
