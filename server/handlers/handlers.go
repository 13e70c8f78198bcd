// Package handlers routes inbound client commands to the lobby, the
// store, and the running game.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cardroom/dealerd/server/connection"
	"github.com/cardroom/dealerd/store"
)

// Lobby seats players for the next hand.
type Lobby interface {
	Ready(name string) SeatResult
}

// SeatResult is the outcome of a ready command.
type SeatResult int

const (
	Seated SeatResult = iota
	AlreadySeated
	LobbyFull
)

// Actions delivers player decisions to the running game.
type Actions interface {
	DeliverBet(name string, amount int)
	DeliverSwap(name string, positions []int)
}

// command is the envelope every client frame decodes into. Fields not
// relevant to a given command stay zero.
type command struct {
	Command  string `json:"command"`
	Username string `json:"username"`
	Password string `json:"password"`
	Amount   int    `json:"amount"`
	Indices  string `json:"indices"`
}

// CommandRouter dispatches decoded frames. Malformed frames are
// dropped without a reply.
type CommandRouter struct {
	log     *logrus.Entry
	store   store.Store
	connMgr *connection.Manager
	lobby   Lobby
	actions Actions
}

// NewCommandRouter creates a new command router
func NewCommandRouter(logger *logrus.Logger, st store.Store, connMgr *connection.Manager, lobby Lobby, actions Actions) *CommandRouter {
	return &CommandRouter{
		log:     logger.WithField("component", "router"),
		store:   st,
		connMgr: connMgr,
		lobby:   lobby,
		actions: actions,
	}
}

// HandleCommand processes one inbound payload from a client
func (r *CommandRouter) HandleCommand(ctx context.Context, client *connection.Client, payload []byte) {
	var cmd command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		r.log.WithError(err).Debug("dropping malformed frame")
		return
	}

	switch cmd.Command {
	case "register":
		r.handleRegister(ctx, client, cmd)
	case "login":
		r.handleLogin(ctx, client, cmd)
	case "ready":
		r.handleReady(client, cmd)
	case "bet":
		r.handleBet(ctx, cmd)
	case "swap":
		r.handleSwap(ctx, cmd)
	case "stats":
		r.handleStats(ctx, client)
	case "get_user_stats":
		r.handleUserStats(ctx, client, cmd)
	case "spectate":
		r.handleSpectate(ctx, client)
	default:
		r.reply(client, "Unknown command.")
	}
}

func (r *CommandRouter) handleRegister(ctx context.Context, client *connection.Client, cmd command) {
	if cmd.Username == "" || cmd.Password == "" {
		r.reply(client, "Username and password required.")
		return
	}

	switch err := r.store.CreateAccount(ctx, cmd.Username, cmd.Password); err {
	case nil:
		r.connMgr.BindPlayer(cmd.Username, client)
		r.reply(client, fmt.Sprintf("Player %s registered successfully.", cmd.Username))
	case store.ErrNameTaken:
		r.reply(client, "Username already exists.")
	default:
		r.log.WithError(err).Warn("register failed")
		r.reply(client, "Registration failed, try again.")
	}
}

func (r *CommandRouter) handleLogin(ctx context.Context, client *connection.Client, cmd command) {
	if cmd.Username == "" || cmd.Password == "" {
		r.reply(client, "Username and password required.")
		return
	}

	switch err := r.store.Authenticate(ctx, cmd.Username, cmd.Password); err {
	case nil:
		r.connMgr.BindPlayer(cmd.Username, client)
		r.reply(client, fmt.Sprintf("Welcome back, %s!", cmd.Username))
	case store.ErrNoAccount:
		r.reply(client, "User not found.")
	case store.ErrBadPassword:
		r.reply(client, "Invalid password.")
	default:
		r.log.WithError(err).Warn("login failed")
		r.reply(client, "Login failed, try again.")
	}
}

func (r *CommandRouter) handleReady(client *connection.Client, cmd command) {
	if cmd.Username == "" {
		r.reply(client, "Username not provided.")
		return
	}
	r.connMgr.BindPlayer(cmd.Username, client)

	switch r.lobby.Ready(cmd.Username) {
	case Seated:
		r.reply(client, fmt.Sprintf("Welcome %s, you are now in the game.", cmd.Username))
	case AlreadySeated:
		r.reply(client, "You are already in the game.")
	case LobbyFull:
		r.reply(client, "Game is full. You are logged in but not in the game.")
	}
}

func (r *CommandRouter) handleBet(ctx context.Context, cmd command) {
	if cmd.Username == "" {
		return
	}
	// persistence first, rendezvous second; a failed write never blocks
	// the action
	if err := r.store.WritePendingAction(ctx, cmd.Username, strconv.Itoa(cmd.Amount)); err != nil {
		r.log.WithError(err).Warn("pending bet write failed")
	}
	r.actions.DeliverBet(cmd.Username, cmd.Amount)
}

func (r *CommandRouter) handleSwap(ctx context.Context, cmd command) {
	if cmd.Username == "" {
		return
	}
	if err := r.store.WritePendingAction(ctx, cmd.Username, cmd.Indices); err != nil {
		r.log.WithError(err).Warn("pending swap write failed")
	}
	r.actions.DeliverSwap(cmd.Username, parsePositions(cmd.Indices))
}

func (r *CommandRouter) handleStats(ctx context.Context, client *connection.Client) {
	names, err := r.store.PlayerNames(ctx)
	if err != nil {
		r.log.WithError(err).Warn("stats lookup failed")
		return
	}
	r.reply(client, strings.Join(names, ", "))
}

func (r *CommandRouter) handleUserStats(ctx context.Context, client *connection.Client, cmd command) {
	if cmd.Username == "" {
		r.reply(client, "Username not provided.")
		return
	}

	stats, err := r.store.PlayerStats(ctx, cmd.Username)
	if err == store.ErrNoAccount {
		r.reply(client, "User not found.")
		return
	}
	if err != nil {
		r.log.WithError(err).Warn("user stats lookup failed")
		return
	}
	r.send(client, stats)
}

func (r *CommandRouter) handleSpectate(ctx context.Context, client *connection.Client) {
	game, err := r.store.SharedGame(ctx)
	if err != nil {
		r.log.WithError(err).Warn("spectate lookup failed")
		return
	}
	r.send(client, game)
}

// parsePositions splits "0,2,4" into ints, skipping bad tokens
func parsePositions(s string) []int {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// reply sends a plain info line back to one client
func (r *CommandRouter) reply(client *connection.Client, info string) {
	r.send(client, map[string]any{"info": info})
}

func (r *CommandRouter) send(client *connection.Client, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.log.WithError(err).Warn("marshal reply failed")
		return
	}
	frame, err := connection.EncodeFrame(data)
	if err != nil {
		r.log.WithError(err).Warn("reply too large, dropping")
		return
	}

	select {
	case client.Send <- frame:
	default:
		r.log.WithField("client", client.ID).Warn("send queue full, dropping reply")
	}
}
