package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardroom/dealerd/cards"
)

func studWithHands(handsBySeat map[string][]cards.Card, order []string) *StudGame {
	g := NewStudGame(order)
	for _, p := range g.Table.Active {
		p.Hand = handsBySeat[p.Name]
	}
	return g
}

func TestBringInIsLowestExposedCard(t *testing.T) {
	g := studWithHands(map[string][]cards.Card{
		"a": cards.MustCards("Ah", "Kh", "9c"),
		"b": cards.MustCards("2d", "3d", "2h"),
		"c": cards.MustCards("Qs", "Js", "Kd"),
	}, []string{"a", "b", "c"})

	assert.Equal(t, 1, g.BringIn())
}

func TestBringInTieBrokenBySuit(t *testing.T) {
	// both show a 3; spades outranks hearts so the heart brings in
	g := studWithHands(map[string][]cards.Card{
		"a": cards.MustCards("Ah", "Kh", "3s"),
		"b": cards.MustCards("2d", "3d", "3h"),
	}, []string{"a", "b"})

	assert.Equal(t, 1, g.BringIn())
}

func TestExposedIgnoresDownCards(t *testing.T) {
	g := studWithHands(map[string][]cards.Card{
		"a": cards.MustCards("Ah", "As", "9c", "9d", "2h", "2s", "Ad"),
	}, []string{"a"})

	exposed := g.Exposed(g.Table.Active[0])
	assert.Equal(t, cards.MustCards("9c", "9d", "2h", "2s"), exposed)
}

func TestExposedLeaderOnFourthStreet(t *testing.T) {
	// b shows a pair of kings; a shows ace high
	g := studWithHands(map[string][]cards.Card{
		"a": cards.MustCards("2h", "3h", "Ac", "9d"),
		"b": cards.MustCards("4h", "5h", "Ks", "Kd"),
	}, []string{"a", "b"})

	assert.Equal(t, 1, g.ExposedLeader())
}

func TestExposedLeaderTieKeepsEarliestSeat(t *testing.T) {
	g := studWithHands(map[string][]cards.Card{
		"a": cards.MustCards("2h", "3h", "9c", "5d"),
		"b": cards.MustCards("4h", "6h", "9d", "5s"),
	}, []string{"a", "b"})

	assert.Equal(t, 0, g.ExposedLeader())
}

func TestStudDealingShape(t *testing.T) {
	g := NewStudGame([]string{"a", "b", "c"})
	g.DealThirdStreet()
	for _, p := range g.Table.Active {
		assert.Len(t, p.Hand, 3)
	}

	for street := 0; street < 4; street++ {
		g.DealStreet()
	}
	for _, p := range g.Table.Active {
		assert.Len(t, p.Hand, 7)
		assert.Len(t, g.Exposed(p), 4)
	}
	assert.Equal(t, 52-21, g.Deck.Remaining())
}

func TestStudShowdownUsesBestOfSeven(t *testing.T) {
	g := studWithHands(map[string][]cards.Card{
		"a": cards.MustCards("2h", "7h", "9h", "Jh", "Kh", "3c", "4d"), // heart flush
		"b": cards.MustCards("As", "Ad", "Ac", "2c", "5s", "8d", "10c"), // trips
	}, []string{"a", "b"})

	winner, evals := g.Showdown()
	assert.Equal(t, "a", winner.Name)
	assert.Len(t, evals, 2)
}
