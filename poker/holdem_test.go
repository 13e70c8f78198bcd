package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardroom/dealerd/cards"
)

func TestPostBlinds(t *testing.T) {
	g := NewHoldemGame([]string{"a", "b", "c"})
	sb, bb := g.PostBlinds(2)

	assert.Equal(t, "a", sb)
	assert.Equal(t, "b", bb)
	assert.Equal(t, 6, g.Table.Pot)
	assert.Equal(t, 2, g.Table.Active[0].Bet)
	assert.Equal(t, 4, g.Table.Active[1].Bet)
	assert.Equal(t, 0, g.Table.Active[2].Bet)
}

func TestBoardDealingBurnsCards(t *testing.T) {
	g := NewHoldemGame([]string{"a", "b"})
	g.DealHoles()
	assert.Equal(t, 48, g.Deck.Remaining())

	g.DealFlop()
	assert.Len(t, g.Community, 3)
	assert.Equal(t, 44, g.Deck.Remaining()) // burn + 3

	g.DealTurn()
	assert.Len(t, g.Community, 4)
	assert.Equal(t, 42, g.Deck.Remaining()) // burn + 1

	g.DealRiver()
	assert.Len(t, g.Community, 5)
	assert.Equal(t, 40, g.Deck.Remaining())
}

func TestHoldemShowdownUsesBoard(t *testing.T) {
	g := NewHoldemGame([]string{"a", "b"})
	g.Community = cards.MustCards("2h", "7h", "9h", "Js", "Qd")
	g.Table.Active[0].Hand = cards.MustCards("Ah", "Kh") // nut flush
	g.Table.Active[1].Hand = cards.MustCards("Jd", "Jc") // set of jacks

	winner, evals := g.Showdown()
	assert.Equal(t, "a", winner.Name)
	assert.Len(t, evals, 2)
}
