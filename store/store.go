// Package store is the persistence collaborator: accounts and stats,
// best-effort pending-action records, and the shared game record that
// spectators read. Game play never depends on a store write succeeding;
// callers log failures and play on.
package store

import (
	"context"
	"errors"
)

var (
	ErrNameTaken   = errors.New("store: name already registered")
	ErrNoAccount   = errors.New("store: no such account")
	ErrBadPassword = errors.New("store: wrong password")
)

// Stats is the cumulative record kept per player account.
type Stats struct {
	Name        string `bson:"name" json:"name"`
	GamesPlayed int    `bson:"games_played" json:"games_played"`
	Wins        int    `bson:"wins" json:"wins"`
	Losses      int    `bson:"losses" json:"losses"`
	MoneyWon    int    `bson:"money_win" json:"money_win"`
	MoneyLost   int    `bson:"money_lost" json:"money_lost"`
}

// Store is implemented by the in-memory store and the mongo store.
type Store interface {
	// Accounts.
	CreateAccount(ctx context.Context, name, password string) error
	Authenticate(ctx context.Context, name, password string) error
	PlayerNames(ctx context.Context) ([]string, error)
	PlayerStats(ctx context.Context, name string) (Stats, error)

	// Pending action record for one player. The value is whatever the
	// client sent (a bet amount or swap indices), kept as text.
	WritePendingAction(ctx context.Context, player, value string) error
	ReadPendingAction(ctx context.Context, player string) (string, bool, error)
	ClearPendingAction(ctx context.Context, player string) error

	// Shared game record, one per server, read back whole by spectators.
	SetSharedField(ctx context.Context, key string, value any) error
	SharedGame(ctx context.Context) (map[string]any, error)
	ResetSharedGame(ctx context.Context) error

	// Results. RecordFolded is called once per player at fold time;
	// RecordResult covers everyone still in at the end of the hand.
	RecordFolded(ctx context.Context, player string, moneyLost int) error
	RecordResult(ctx context.Context, winner string, losses map[string]int, pot int) error
}
