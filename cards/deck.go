package cards

import "math/rand"

// Deck is a shuffled stack of cards dealt from the top.
type Deck struct {
	cards []Card
}

// NewDeck creates a standard deck of 52 cards, shuffled.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	d := &Deck{cards: cards}
	d.Shuffle()
	return d
}

// Shuffle randomizes the remaining cards
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DealOne deals the top card. ok is false once the deck is exhausted;
// callers skip the deal rather than abort the hand.
func (d *Deck) DealOne() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Deal deals up to count cards, fewer if the deck runs out.
func (d *Deck) Deal(count int) []Card {
	if count > len(d.cards) {
		count = len(d.cards)
	}
	dealt := make([]Card, count)
	copy(dealt, d.cards[:count])
	d.cards = d.cards[count:]
	return dealt
}

// Remaining reports how many cards are left
func (d *Deck) Remaining() int {
	return len(d.cards)
}
