// Package config loads the environment-variable options spec.md §6 names,
// mirroring the original's Config constructor: each boolean flag is set by
// the mere presence of its variable, and PA2_PASS_ROUNDS parses as an
// integer, logging (rather than printing) whichever variables were found.
package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultPassRounds is the original's default_rounds constant, used when
// PA2_PASS_ROUNDS is unset or fails to parse.
const DefaultPassRounds = 10

// Config holds every environment-driven option. Load with no variables set
// returns the original's defaults (all flags off, PassRounds =
// DefaultPassRounds); the zero value has PassRounds = 0.
type Config struct {
	DebugMoves   bool
	DebugInputs  bool
	VerifyBlocks bool
	AllowKWay    bool
	PassRounds   int
}

// Load reads PA2_DEBUG_MOVES, PA2_DEBUG_INPUTS, PA2_VERIFY_BLOCKS,
// PA2_ALLOW_KWAY, and PA2_PASS_ROUNDS from the environment, logging each one
// it finds set.
func Load(log zerolog.Logger) Config {
	cfg := Config{PassRounds: DefaultPassRounds}

	if _, ok := os.LookupEnv("PA2_DEBUG_MOVES"); ok {
		log.Debug().Msg("PA2_DEBUG_MOVES is set")
		cfg.DebugMoves = true
	}
	if _, ok := os.LookupEnv("PA2_DEBUG_INPUTS"); ok {
		log.Debug().Msg("PA2_DEBUG_INPUTS is set")
		cfg.DebugInputs = true
	}
	if _, ok := os.LookupEnv("PA2_VERIFY_BLOCKS"); ok {
		log.Debug().Msg("PA2_VERIFY_BLOCKS is set")
		cfg.VerifyBlocks = true
	}
	if _, ok := os.LookupEnv("PA2_ALLOW_KWAY"); ok {
		log.Debug().Msg("PA2_ALLOW_KWAY is set")
		cfg.AllowKWay = true
	}
	if raw, ok := os.LookupEnv("PA2_PASS_ROUNDS"); ok {
		log.Debug().Str("value", raw).Msg("PA2_PASS_ROUNDS is set")
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Err(err).Str("value", raw).Msg("failed to parse PA2_PASS_ROUNDS")
		} else {
			cfg.PassRounds = v
		}
	}

	return cfg
}
