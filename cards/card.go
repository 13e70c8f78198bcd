package cards

import "fmt"

// Suit represents a card suit. The order matters: it is the tie-break
// order for the seven card stud bring-in (hearts lowest, spades highest).
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the suit name used on the wire
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return "Unknown"
}

// Rank values run 2..14 with the ace always high
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card represents a playing card
type Card struct {
	Rank int
	Suit Suit
}

// String returns the wire representation of a card, e.g. "A of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", RankName(c.Rank), c.Suit)
}

// RankName formats a rank the way clients display it
func RankName(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Less orders cards by rank, breaking ties by suit. Only the bring-in
// selection relies on the suit order.
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

// CardFromString parses shorthand like "10s", "Ah" or "2♦" into a card.
// Used by tests to build hands readably.
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	var suit Suit
	switch s[len(s)-1:] {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", s[len(s)-1:])
	}

	var rank int
	switch s[:len(s)-1] {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = 10
	case "9", "8", "7", "6", "5", "4", "3", "2":
		rank = int(s[0] - '0')
	default:
		return Card{}, fmt.Errorf("invalid card rank: %s", s[:len(s)-1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustCards parses a list of shorthand cards, panicking on bad input.
// Test helper.
func MustCards(shorthands ...string) []Card {
	out := make([]Card, len(shorthands))
	for i, s := range shorthands {
		c, err := CardFromString(s)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}
