package game

import (
	"context"
	"fmt"

	"github.com/cardroom/dealerd/poker"
)

// runFiveCardDraw deals one hand of five card draw: ante, five cards
// each, a betting round, the swap phase, a second betting round, then
// showdown.
func (g *Game) runFiveCardDraw(ctx context.Context) {
	d := poker.NewDrawGame(g.names)
	t := d.Table

	g.collectAnte(ctx, t)
	d.DealHands()
	g.broadcastHands(ctx, t, nil)

	t.RunBettingRound(poker.RoundOptions{}, g.betFunc(ctx), g.roundHooks(ctx, t, nil, nil))
	if g.survivorWins(ctx, t) {
		return
	}
	g.dumpTable(t)

	g.runSwapPhase(ctx, d)
	g.broadcastHands(ctx, t, nil)

	t.ResetBets()
	t.RunBettingRound(poker.RoundOptions{}, g.betFunc(ctx), g.roundHooks(ctx, t, nil, nil))
	if g.survivorWins(ctx, t) {
		return
	}

	winner, evals := d.Showdown()
	g.declareWinner(ctx, t, winner.Name, evals)
}

// runSwapPhase lets each active player, in seat order, replace any of
// their cards. A timeout or disconnect simply keeps the hand as dealt.
func (g *Game) runSwapPhase(ctx context.Context, d *poker.DrawGame) {
	t := d.Table
	for _, name := range t.ActiveNames() {
		g.cast.Broadcast(map[string]any{
			"cards": handsMap(t),
			"swap":  name,
		})

		action := g.awaitAction(ctx, name)
		if len(action.Swap) == 0 {
			g.setShared(ctx, "info", fmt.Sprintf("Player %s kept their hand", name))
			continue
		}

		d.Swap(t.Player(name), action.Swap)
		g.setShared(ctx, "info", fmt.Sprintf("Player %s swapped %d cards", name, len(action.Swap)))
		g.log.WithField("player", name).WithField("positions", action.Swap).Info("cards swapped")
	}
}
