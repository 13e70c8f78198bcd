package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	assert.Equal(t, "A of Spades", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "10 of Hearts", Card{Rank: 10, Suit: Hearts}.String())
	assert.Equal(t, "2 of Clubs", Card{Rank: 2, Suit: Clubs}.String())
	assert.Equal(t, "Q of Diamonds", Card{Rank: Queen, Suit: Diamonds}.String())
}

func TestCardFromString(t *testing.T) {
	c, err := CardFromString("10s")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: 10, Suit: Spades}, c)

	c, err = CardFromString("Ah")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Hearts}, c)

	_, err = CardFromString("Z♠")
	assert.Error(t, err)

	_, err = CardFromString("5")
	assert.Error(t, err)
}

func TestCardLessBreaksTiesBySuit(t *testing.T) {
	// same rank: hearts < diamonds < clubs < spades
	assert.True(t, Card{Rank: 3, Suit: Hearts}.Less(Card{Rank: 3, Suit: Spades}))
	assert.True(t, Card{Rank: 3, Suit: Diamonds}.Less(Card{Rank: 3, Suit: Clubs}))
	assert.False(t, Card{Rank: 3, Suit: Spades}.Less(Card{Rank: 3, Suit: Hearts}))

	// rank dominates suit
	assert.True(t, Card{Rank: 2, Suit: Spades}.Less(Card{Rank: 3, Suit: Hearts}))
}
