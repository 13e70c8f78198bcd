package poker

import (
	"github.com/cardroom/dealerd/cards"
	"github.com/cardroom/dealerd/hands"
)

// HoldemGame is the state of one texas hold'em hand.
type HoldemGame struct {
	Table     *Table
	Deck      *cards.Deck
	Community []cards.Card
}

// NewHoldemGame seats the players and shuffles a fresh deck
func NewHoldemGame(names []string) *HoldemGame {
	return &HoldemGame{Table: NewTable(names), Deck: cards.NewDeck()}
}

// PostBlinds takes the small blind from seat 0 and the big blind (twice
// the small) from seat 1, before any cards are dealt. Returns the two
// players' names.
func (g *HoldemGame) PostBlinds(small int) (smallBlind, bigBlind string) {
	sb, bb := g.Table.Active[0], g.Table.Active[1]
	g.Table.Contribute(sb, small)
	g.Table.Contribute(bb, small*2)
	return sb.Name, bb.Name
}

// DealHoles gives each player two hidden cards
func (g *HoldemGame) DealHoles() {
	for _, p := range g.Table.Active {
		for i := 0; i < 2; i++ {
			if card, ok := g.Deck.DealOne(); ok {
				p.Give(card)
			}
		}
	}
}

// DealFlop burns one card and deals three community cards
func (g *HoldemGame) DealFlop() {
	g.burnAndDeal(3)
}

// DealTurn burns one card and deals the fourth community card
func (g *HoldemGame) DealTurn() {
	g.burnAndDeal(1)
}

// DealRiver burns one card and deals the fifth community card
func (g *HoldemGame) DealRiver() {
	g.burnAndDeal(1)
}

func (g *HoldemGame) burnAndDeal(count int) {
	g.Deck.DealOne()
	for i := 0; i < count; i++ {
		if card, ok := g.Deck.DealOne(); ok {
			g.Community = append(g.Community, card)
		}
	}
}

// CommunityStrings formats the board for the wire
func (g *HoldemGame) CommunityStrings() []string {
	out := make([]string, len(g.Community))
	for i, c := range g.Community {
		out[i] = c.String()
	}
	return out
}

// Showdown picks the best hand from each player's hole cards plus the
// board. Ties keep the earliest seat.
func (g *HoldemGame) Showdown() (*Player, map[string]hands.Evaluation) {
	evals := make(map[string]hands.Evaluation, len(g.Table.Active))
	var winner *Player
	var best hands.Evaluation

	for _, p := range g.Table.Active {
		seven := append(append([]cards.Card{}, p.Hand...), g.Community...)
		_, eval := hands.BestOfSeven(seven)
		evals[p.Name] = eval
		if winner == nil || hands.Compare(eval, best) > 0 {
			winner = p
			best = eval
		}
	}
	return winner, evals
}
