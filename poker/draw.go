package poker

import (
	"github.com/cardroom/dealerd/cards"
	"github.com/cardroom/dealerd/hands"
)

// DrawGame is the state of one five card draw hand.
type DrawGame struct {
	Table *Table
	Deck  *cards.Deck
}

// NewDrawGame seats the players and shuffles a fresh deck
func NewDrawGame(names []string) *DrawGame {
	return &DrawGame{Table: NewTable(names), Deck: cards.NewDeck()}
}

// DealHands gives each active player five cards
func (g *DrawGame) DealHands() {
	for _, p := range g.Table.Active {
		for i := 0; i < 5; i++ {
			if card, ok := g.Deck.DealOne(); ok {
				p.Give(card)
			}
		}
	}
}

// Swap replaces the cards at the given hand positions with fresh deals.
// Out-of-range positions are ignored; an exhausted deck leaves the old
// card in place.
func (g *DrawGame) Swap(p *Player, positions []int) {
	for _, pos := range positions {
		if pos < 0 || pos >= len(p.Hand) {
			continue
		}
		if card, ok := g.Deck.DealOne(); ok {
			p.Hand[pos] = card
		}
	}
}

// Showdown evaluates every remaining hand and returns the winner with
// all evaluations. Ties keep the earliest seat.
func (g *DrawGame) Showdown() (*Player, map[string]hands.Evaluation) {
	evals := make(map[string]hands.Evaluation, len(g.Table.Active))
	var winner *Player
	var best hands.Evaluation

	for _, p := range g.Table.Active {
		eval := hands.Evaluate(p.Hand)
		evals[p.Name] = eval
		if winner == nil || hands.Compare(eval, best) > 0 {
			winner = p
			best = eval
		}
	}
	return winner, evals
}
