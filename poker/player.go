package poker

import "github.com/cardroom/dealerd/cards"

// Player is one seat in a hand. Name doubles as the player's account
// name everywhere: in broadcasts, in the store, and on the connection.
type Player struct {
	Name      string
	Hand      []cards.Card
	Bet       int // chips committed in the current betting round
	Committed int // chips committed across the whole hand
}

// Give adds a card to the player's hand
func (p *Player) Give(card cards.Card) {
	p.Hand = append(p.Hand, card)
}

// HandStrings formats the hand for the wire
func (p *Player) HandStrings() []string {
	out := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		out[i] = c.String()
	}
	return out
}
