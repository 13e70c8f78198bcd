package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreateAccount(ctx, "alice", "pw"))
	assert.ErrorIs(t, m.CreateAccount(ctx, "alice", "other"), ErrNameTaken)

	assert.NoError(t, m.Authenticate(ctx, "alice", "pw"))
	assert.ErrorIs(t, m.Authenticate(ctx, "alice", "nope"), ErrBadPassword)
	assert.ErrorIs(t, m.Authenticate(ctx, "bob", "pw"), ErrNoAccount)

	require.NoError(t, m.CreateAccount(ctx, "bob", "pw"))
	names, err := m.PlayerNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names)
}

func TestPendingActionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.ReadPendingAction(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.WritePendingAction(ctx, "alice", "25"))
	v, ok, err := m.ReadPendingAction(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "25", v)

	require.NoError(t, m.ClearPendingAction(ctx, "alice"))
	_, ok, err = m.ReadPendingAction(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSharedGameRecord(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.SetSharedField(ctx, "pot", 40))
	require.NoError(t, m.SetSharedField(ctx, "info", "flop dealt"))

	game, err := m.SharedGame(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, game["pot"])
	assert.Equal(t, "flop dealt", game["info"])

	require.NoError(t, m.ResetSharedGame(ctx))
	game, err = m.SharedGame(ctx)
	require.NoError(t, err)
	assert.Empty(t, game)
}

func TestResultsAccumulate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.CreateAccount(ctx, "alice", "pw"))
	require.NoError(t, m.CreateAccount(ctx, "bob", "pw"))
	require.NoError(t, m.CreateAccount(ctx, "carol", "pw"))

	// carol folded during the hand, alice beat bob at showdown
	require.NoError(t, m.RecordFolded(ctx, "carol", 5))
	require.NoError(t, m.RecordResult(ctx, "alice", map[string]int{"alice": 15, "bob": 15}, 35))

	alice, err := m.PlayerStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, Stats{Name: "alice", GamesPlayed: 1, Wins: 1, MoneyWon: 35, MoneyLost: 15}, alice)

	bob, err := m.PlayerStats(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, Stats{Name: "bob", GamesPlayed: 1, Losses: 1, MoneyLost: 15}, bob)

	carol, err := m.PlayerStats(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, Stats{Name: "carol", GamesPlayed: 1, Losses: 1, MoneyLost: 5}, carol)

	_, err = m.PlayerStats(ctx, "dave")
	assert.ErrorIs(t, err, ErrNoAccount)
}
