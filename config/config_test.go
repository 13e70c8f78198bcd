package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, TexasHoldem, cfg.Variant)
	assert.Equal(t, 2, cfg.Players)
	assert.Equal(t, 5, cfg.Ante)
	assert.Equal(t, 2, cfg.SmallBlind)
	assert.Equal(t, 4, cfg.BigBlind())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEALER_VARIANT", "7card")
	t.Setenv("DEALER_PLAYERS", "4")
	t.Setenv("DEALER_SMALL_BLIND", "25")
	t.Setenv("DEALER_TURN_TIMEOUT", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SevenCardStud, cfg.Variant)
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, 50, cfg.BigBlind())
	assert.Equal(t, 30, int(cfg.TurnTimeout.Seconds()))
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DEALER_VARIANT", "omaha")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsTooFewPlayers(t *testing.T) {
	t.Setenv("DEALER_PLAYERS", "1")
	_, err := Load()
	assert.Error(t, err)
}
