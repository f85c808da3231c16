package config_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperpart/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load(zerolog.Nop())
	assert.False(t, cfg.DebugMoves)
	assert.False(t, cfg.DebugInputs)
	assert.False(t, cfg.VerifyBlocks)
	assert.False(t, cfg.AllowKWay)
	assert.Equal(t, config.DefaultPassRounds, cfg.PassRounds)
}

func TestLoad_FlagsByPresence(t *testing.T) {
	t.Setenv("PA2_DEBUG_MOVES", "")
	t.Setenv("PA2_VERIFY_BLOCKS", "1")
	t.Setenv("PA2_PASS_ROUNDS", "25")

	cfg := config.Load(zerolog.Nop())
	assert.True(t, cfg.DebugMoves)
	assert.True(t, cfg.VerifyBlocks)
	assert.False(t, cfg.AllowKWay)
	assert.Equal(t, 25, cfg.PassRounds)
}

func TestLoad_UnparsablePassRoundsFallsBackToDefault(t *testing.T) {
	t.Setenv("PA2_PASS_ROUNDS", "not-a-number")

	cfg := config.Load(zerolog.Nop())
	assert.Equal(t, config.DefaultPassRounds, cfg.PassRounds)
}
