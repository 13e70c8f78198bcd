package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	deck := NewDeck()
	require.Equal(t, 52, deck.Remaining())

	seen := map[Card]bool{}
	for {
		card, ok := deck.DealOne()
		if !ok {
			break
		}
		assert.False(t, seen[card], "card %s dealt twice", card)
		seen[card] = true
		assert.GreaterOrEqual(t, card.Rank, 2)
		assert.LessOrEqual(t, card.Rank, Ace)
	}
	assert.Len(t, seen, 52)
}

func TestDealOneExhaustion(t *testing.T) {
	deck := NewDeck()
	for i := 0; i < 52; i++ {
		_, ok := deck.DealOne()
		require.True(t, ok)
	}

	_, ok := deck.DealOne()
	assert.False(t, ok)
	assert.Equal(t, 0, deck.Remaining())
}

func TestDealCapsAtRemaining(t *testing.T) {
	deck := NewDeck()
	deck.Deal(50)

	dealt := deck.Deal(5)
	assert.Len(t, dealt, 2)
	assert.Equal(t, 0, deck.Remaining())
}
