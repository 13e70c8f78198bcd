package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/weedbox/timebank"

	"github.com/cardroom/dealerd/config"
	"github.com/cardroom/dealerd/hands"
	"github.com/cardroom/dealerd/poker"
	"github.com/cardroom/dealerd/store"
)

// Broadcaster pushes payloads out through the connection layer.
type Broadcaster interface {
	Broadcast(payload map[string]any)
	SendTo(player string, payload map[string]any)
}

// Game runs one hand of the configured variant. It owns the table
// exclusively: client workers only talk to it through the inbox.
type Game struct {
	ID    string
	names []string

	log   *logrus.Entry
	store store.Store
	cast  Broadcaster
	inbox *Inbox
	bank  *timebank.TimeBank

	variant     config.Variant
	turnTimeout time.Duration
	ante        int
	smallBlind  int
	bigBlind    int
}

// New wires a game for the seated players
func New(logger *logrus.Logger, st store.Store, cast Broadcaster, inbox *Inbox, names []string, cfg config.Config) *Game {
	id := uuid.NewString()
	return &Game{
		ID:          id,
		names:       names,
		log:         logger.WithFields(logrus.Fields{"game": id, "variant": cfg.Variant}),
		store:       st,
		cast:        cast,
		inbox:       inbox,
		bank:        timebank.NewTimeBank(),
		variant:     cfg.Variant,
		turnTimeout: cfg.TurnTimeout,
		ante:        cfg.Ante,
		smallBlind:  cfg.SmallBlind,
		bigBlind:    cfg.BigBlind(),
	}
}

// Run deals one full hand and reports the result. It blocks until the
// hand is over.
func (g *Game) Run(ctx context.Context) {
	g.log.WithField("players", g.names).Info("hand starting")

	if err := g.store.ResetSharedGame(ctx); err != nil {
		g.log.WithError(err).Warn("reset shared game failed")
	}

	switch g.variant {
	case config.FiveCardDraw:
		g.runFiveCardDraw(ctx)
	case config.SevenCardStud:
		g.runSevenCardStud(ctx)
	case config.TexasHoldem:
		g.runTexasHoldem(ctx)
	}

	g.log.Info("hand finished")
}

// awaitAction blocks until the player acts, times out, or quits. The
// timeout and the quit signal both come back as folds so the hand can
// always make progress. The timer signals through a channel owned by
// this call, never through the inbox: a timer that loses the race with
// the real action expires harmlessly instead of leaving a fold behind
// for the player's next turn.
func (g *Game) awaitAction(ctx context.Context, player string) Action {
	timeout := make(chan struct{}, 1)
	if g.turnTimeout > 0 {
		_ = g.bank.NewTask(g.turnTimeout, func(cancelled bool) {
			if cancelled {
				return
			}
			g.log.WithField("player", player).Info("turn timed out, folding")
			timeout <- struct{}{}
		})
	}

	var action Action
	select {
	case action = <-g.inbox.Channel(player):
	case <-timeout:
		action = Action{Bet: poker.Fold}
	case <-ctx.Done():
		action = Action{Quit: true}
	}

	g.bank.Cancel()
	g.bank = timebank.NewTimeBank()

	if err := g.store.ClearPendingAction(ctx, player); err != nil {
		g.log.WithError(err).Warn("clear pending action failed")
	}
	if action.Quit {
		return Action{Bet: poker.Fold}
	}
	return action
}

// betFunc adapts awaitAction to the betting engine
func (g *Game) betFunc(ctx context.Context) poker.BetFunc {
	return func(player string) (int, error) {
		return g.awaitAction(ctx, player).Bet, nil
	}
}

// roundHooks builds the standard observers for a betting round:
// turn prompts, fold notices, contribution records. turnInfo may be nil
// or return "" for no info line.
func (g *Game) roundHooks(ctx context.Context, t *poker.Table, extra func() map[string]any, turnInfo func(player string) string) poker.RoundHooks {
	return poker.RoundHooks{
		OnTurn: func(player string) {
			payload := map[string]any{
				"cards":             handsMap(t),
				"bet":               player,
				"pot":               t.Pot,
				"round current bet": clampBet(t.CurrentBet),
				"player bet amount": t.Bets(),
			}
			if extra != nil {
				for k, v := range extra() {
					payload[k] = v
				}
			}
			if turnInfo != nil {
				if info := turnInfo(player); info != "" {
					payload["info"] = info
				}
			}
			g.cast.Broadcast(payload)

			g.setShared(ctx, "pot", t.Pot)
			g.setShared(ctx, "round current bet", clampBet(t.CurrentBet))
			g.setShared(ctx, "player current bets", t.Bets())
			g.setShared(ctx, "cards", handsMap(t))
		},
		OnFold: func(player string) {
			g.cast.SendTo(player, map[string]any{"info": "You folded"})
			g.setShared(ctx, "info", fmt.Sprintf("Player %s folded", player))

			p := t.Player(player)
			if err := g.store.RecordFolded(ctx, player, p.Committed); err != nil {
				g.log.WithError(err).WithField("player", player).Warn("record folded failed")
			}
		},
		OnContribution: func(player string, amount int, raised bool) {
			switch {
			case raised:
				g.setShared(ctx, "info", fmt.Sprintf("Player %s raised the bet by %d", player, amount))
			case amount == 0:
				g.setShared(ctx, "info", fmt.Sprintf("Player %s checked", player))
			default:
				g.setShared(ctx, "info", fmt.Sprintf("Player %s called %d", player, amount))
			}
		},
		OnReject: func(player string, amount int) {
			g.cast.SendTo(player, map[string]any{
				"info": fmt.Sprintf("Bet of %d does not reach the current bet, fold with -1 or bet again", amount),
			})
		},
	}
}

// declareWinner reports the end of the hand: showdown summaries when
// more than one player made it there, the winner, and the stats update.
func (g *Game) declareWinner(ctx context.Context, t *poker.Table, winner string, evals map[string]hands.Evaluation) {
	payload := map[string]any{
		"winner": winner,
		"pot":    t.Pot,
		"info":   fmt.Sprintf("Game is over, winner is %s", winner),
	}
	if len(evals) > 1 {
		payload["showdown"] = showdownMap(t, evals)
		g.setShared(ctx, "showdown", showdownMap(t, evals))
	}
	g.cast.Broadcast(payload)
	g.setShared(ctx, "winner", winner)
	g.setShared(ctx, "info", fmt.Sprintf("Game is over, winner is %s", winner))

	losses := make(map[string]int, len(t.Active))
	for _, p := range t.Active {
		losses[p.Name] = p.Committed
	}
	if err := g.store.RecordResult(ctx, winner, losses, t.Pot); err != nil {
		g.log.WithError(err).Warn("record result failed")
	}

	g.log.WithFields(logrus.Fields{"winner": winner, "pot": t.Pot}).Info("winner determined")
}

// survivorWins short-circuits the hand when a single player remains
func (g *Game) survivorWins(ctx context.Context, t *poker.Table) bool {
	if len(t.Active) != 1 {
		return false
	}
	g.declareWinner(ctx, t, t.Active[0].Name, nil)
	return true
}

// collectAnte takes the forced ante from everyone
func (g *Game) collectAnte(ctx context.Context, t *poker.Table) {
	t.TakeAnte(g.ante)
	g.cast.Broadcast(map[string]any{
		"info": fmt.Sprintf("Collecting ante of %d", g.ante),
		"pot":  t.Pot,
	})
	g.setShared(ctx, "info", "Collecting ante for all players")
	g.setShared(ctx, "pot", t.Pot)
}

// broadcastHands pushes the current hands to players and spectators
func (g *Game) broadcastHands(ctx context.Context, t *poker.Table, extra map[string]any) {
	payload := map[string]any{"cards": handsMap(t)}
	for k, v := range extra {
		payload[k] = v
	}
	g.cast.Broadcast(payload)
	g.setShared(ctx, "cards", handsMap(t))
}

func (g *Game) setShared(ctx context.Context, key string, value any) {
	if err := g.store.SetSharedField(ctx, key, value); err != nil {
		g.log.WithError(err).WithField("key", key).Warn("shared game update failed")
	}
}

// dumpTable logs the full table state between streets at debug level
func (g *Game) dumpTable(t *poker.Table) {
	if g.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		g.log.Debug(litter.Sdump(t))
	}
}

// handsMap formats every active player's hand for the wire
func handsMap(t *poker.Table) map[string][]string {
	out := make(map[string][]string, len(t.Active))
	for _, p := range t.Active {
		out[p.Name] = p.HandStrings()
	}
	return out
}

// showdownMap summarizes the showdown per player
func showdownMap(t *poker.Table, evals map[string]hands.Evaluation) map[string]string {
	out := make(map[string]string, len(evals))
	for name, eval := range evals {
		p := t.Player(name)
		out[name] = fmt.Sprintf("%s: %s", eval.Category, strings.Join(p.HandStrings(), ", "))
	}
	return out
}

// clampBet hides the no-bet sentinel from clients
func clampBet(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
