package poker

import (
	"github.com/cardroom/dealerd/cards"
	"github.com/cardroom/dealerd/hands"
)

// Card positions in a stud hand: 0 and 1 are dealt down, 2 through 5
// are dealt up, 6 is dealt down on seventh street.
const (
	studFirstUp = 2
	studLastUp  = 6
)

// StudGame is the state of one seven card stud hand.
type StudGame struct {
	Table *Table
	Deck  *cards.Deck
}

// NewStudGame seats the players and shuffles a fresh deck
func NewStudGame(names []string) *StudGame {
	return &StudGame{Table: NewTable(names), Deck: cards.NewDeck()}
}

// DealThirdStreet gives each player two down cards and one up card
func (g *StudGame) DealThirdStreet() {
	for _, p := range g.Table.Active {
		for i := 0; i < 3; i++ {
			if card, ok := g.Deck.DealOne(); ok {
				p.Give(card)
			}
		}
	}
}

// DealStreet gives each active player one more card
func (g *StudGame) DealStreet() {
	for _, p := range g.Table.Active {
		if card, ok := g.Deck.DealOne(); ok {
			p.Give(card)
		}
	}
}

// Exposed returns the face-up portion of a hand
func (g *StudGame) Exposed(p *Player) []cards.Card {
	if len(p.Hand) <= studFirstUp {
		return nil
	}
	last := len(p.Hand)
	if last > studLastUp {
		last = studLastUp
	}
	return p.Hand[studFirstUp:last]
}

// BringIn returns the seat that must open third street: the player
// with the lowest exposed card, ties broken by suit.
func (g *StudGame) BringIn() int {
	seat := -1
	for i, p := range g.Table.Active {
		if len(p.Hand) <= studFirstUp {
			continue
		}
		if seat < 0 || p.Hand[studFirstUp].Less(g.Table.Active[seat].Hand[studFirstUp]) {
			seat = i
		}
	}
	if seat < 0 {
		return 0
	}
	return seat
}

// ExposedLeader returns the seat holding the best exposed hand, which
// opens betting on fourth through seventh streets. Ties keep the
// earliest seat.
func (g *StudGame) ExposedLeader() int {
	seat := -1
	var best hands.Evaluation
	for i, p := range g.Table.Active {
		exposed := g.Exposed(p)
		if len(exposed) == 0 {
			continue
		}
		eval := hands.Evaluate(exposed)
		if seat < 0 || hands.Compare(eval, best) > 0 {
			seat = i
			best = eval
		}
	}
	if seat < 0 {
		return 0
	}
	return seat
}

// Showdown picks the best seven-card hand among the remaining players.
// Ties keep the earliest seat.
func (g *StudGame) Showdown() (*Player, map[string]hands.Evaluation) {
	evals := make(map[string]hands.Evaluation, len(g.Table.Active))
	var winner *Player
	var best hands.Evaluation

	for _, p := range g.Table.Active {
		_, eval := hands.BestOfSeven(p.Hand)
		evals[p.Name] = eval
		if winner == nil || hands.Compare(eval, best) > 0 {
			winner = p
			best = eval
		}
	}
	return winner, evals
}
