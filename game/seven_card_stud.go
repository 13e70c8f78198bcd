package game

import (
	"context"
	"fmt"

	"github.com/cardroom/dealerd/poker"
)

// runSevenCardStud deals one hand of seven card stud: ante, third
// street (two down, one up) opened by the bring-in, then fourth through
// seventh streets each opened by the best exposed hand, then showdown
// over all seven cards.
func (g *Game) runSevenCardStud(ctx context.Context) {
	s := poker.NewStudGame(g.names)
	t := s.Table

	g.collectAnte(ctx, t)
	s.DealThirdStreet()
	g.broadcastHands(ctx, t, nil)

	bringIn := s.BringIn()
	g.setShared(ctx, "info", fmt.Sprintf("Player %s brings in", t.Active[bringIn].Name))
	t.RunBettingRound(poker.RoundOptions{Start: bringIn}, g.betFunc(ctx), g.roundHooks(ctx, t, nil, nil))
	if g.survivorWins(ctx, t) {
		return
	}

	streets := []string{"Fourth street", "Fifth street", "Sixth street", "Seventh street"}
	for _, street := range streets {
		g.dumpTable(t)

		s.DealStreet()
		g.broadcastHands(ctx, t, map[string]any{"info": street})
		g.setShared(ctx, "info", street)

		t.ResetBets()
		leader := s.ExposedLeader()
		t.RunBettingRound(poker.RoundOptions{Start: leader}, g.betFunc(ctx), g.roundHooks(ctx, t, nil, nil))
		if g.survivorWins(ctx, t) {
			return
		}
	}

	winner, evals := s.Showdown()
	g.declareWinner(ctx, t, winner.Name, evals)
}
