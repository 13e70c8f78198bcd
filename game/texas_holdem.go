package game

import (
	"context"
	"fmt"

	"github.com/cardroom/dealerd/poker"
)

// runTexasHoldem deals one hand of texas hold'em: blinds from the
// first two seats, two hole cards each, the two-pass pre-flop (match
// the big blind, then the big blind's option), then flop, turn and
// river each followed by a betting round, then showdown.
func (g *Game) runTexasHoldem(ctx context.Context) {
	h := poker.NewHoldemGame(g.names)
	t := h.Table
	bigBlind := g.bigBlind

	sbName, bbName := h.PostBlinds(g.smallBlind)
	blindInfo := fmt.Sprintf("%s is small blind, %s is big blind", sbName, bbName)
	g.cast.Broadcast(map[string]any{
		"info":              fmt.Sprintf("%s posts small blind %d, %s posts big blind %d", sbName, g.smallBlind, bbName, bigBlind),
		"pot":               t.Pot,
		"player bet amount": t.Bets(),
	})
	g.setShared(ctx, "info", blindInfo)
	g.setShared(ctx, "pot", t.Pot)

	h.DealHoles()
	g.broadcastHands(ctx, t, nil)

	// pass 1: everyone behind the big blind matches it exactly or folds
	t.RunBettingRound(poker.RoundOptions{
		Start:         2,
		OpeningBet:    bigBlind,
		OpeningBettor: bbName,
		CallOnly:      true,
	}, g.betFunc(ctx), g.roundHooks(ctx, t, nil, func(string) string {
		return "Match the big blind, enter the amount of the big blind or -1 to fold. " + blindInfo
	}))
	if g.survivorWins(ctx, t) {
		return
	}

	// pass 2: the big blind may check an unraised pot shut, or open the
	// raising. If the big blind folded during pass 1, action just runs
	// from the first seat.
	prePot := t.Pot
	start := t.Seat(bbName)
	checkCloser := bbName
	if start < 0 {
		start = 0
		checkCloser = ""
	}
	t.RunBettingRound(poker.RoundOptions{
		Start:       start,
		OpeningBet:  bigBlind,
		CheckCloser: checkCloser,
	}, g.betFunc(ctx), g.roundHooks(ctx, t, nil, func(player string) string {
		if player == checkCloser && t.Pot == prePot {
			return "You are the big blind, call 0 now to end the betting round or raise the bet. " + blindInfo
		}
		return blindInfo
	}))
	if g.survivorWins(ctx, t) {
		return
	}

	streets := []struct {
		name string
		deal func()
	}{
		{"Flop", h.DealFlop},
		{"Turn", h.DealTurn},
		{"River", h.DealRiver},
	}
	board := func() map[string]any {
		return map[string]any{"community": h.CommunityStrings()}
	}

	for _, street := range streets {
		g.dumpTable(t)

		street.deal()
		g.broadcastHands(ctx, t, map[string]any{
			"community": h.CommunityStrings(),
			"info":      street.name,
		})
		g.setShared(ctx, "community", h.CommunityStrings())
		g.setShared(ctx, "info", street.name)

		t.ResetBets()
		t.RunBettingRound(poker.RoundOptions{}, g.betFunc(ctx), g.roundHooks(ctx, t, board, nil))
		if g.survivorWins(ctx, t) {
			return
		}
	}

	winner, evals := h.Showdown()
	g.declareWinner(ctx, t, winner.Name, evals)
}
