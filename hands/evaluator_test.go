package hands

import (
	"fmt"
	"testing"

	chehsunliu "github.com/chehsunliu/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroom/dealerd/cards"
)

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name      string
		hand      []cards.Card
		category  Category
		tiebreaks []int
	}{
		{"royal flush", cards.MustCards("10s", "Js", "Qs", "Ks", "As"), RoyalFlush, nil},
		{"straight flush", cards.MustCards("5h", "6h", "7h", "8h", "9h"), StraightFlush, []int{9}},
		{"steel wheel", cards.MustCards("Ad", "2d", "3d", "4d", "5d"), StraightFlush, []int{5}},
		{"four of a kind", cards.MustCards("9c", "9d", "9h", "9s", "2c"), FourOfAKind, []int{9, 2}},
		{"full house", cards.MustCards("3c", "3d", "3h", "Ks", "Kc"), FullHouse, []int{3, 13}},
		{"flush", cards.MustCards("2c", "5c", "9c", "Jc", "Kc"), Flush, []int{13, 11, 9, 5, 2}},
		{"straight", cards.MustCards("7c", "8d", "9h", "10s", "Jc"), Straight, []int{11}},
		{"wheel", cards.MustCards("Ac", "2d", "3h", "4s", "5c"), Straight, []int{5}},
		{"three of a kind", cards.MustCards("6c", "6d", "6h", "As", "2c"), ThreeOfAKind, []int{6, 14, 2}},
		{"two pair", cards.MustCards("4c", "4d", "8h", "8s", "Qc"), TwoPair, []int{8, 4, 12}},
		{"one pair", cards.MustCards("Jc", "Jd", "3h", "7s", "9c"), OnePair, []int{11, 9, 7, 3}},
		{"high card", cards.MustCards("2c", "5d", "8h", "Js", "Ac"), HighCard, []int{14, 11, 8, 5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(tt.hand)
			assert.Equal(t, tt.category, eval.Category)
			if tt.tiebreaks != nil {
				assert.Equal(t, tt.tiebreaks, eval.Tiebreaks)
			}
		})
	}
}

func TestWheelLosesToSixHighStraight(t *testing.T) {
	wheel := Evaluate(cards.MustCards("Ac", "2d", "3h", "4s", "5c"))
	sixHigh := Evaluate(cards.MustCards("2c", "3d", "4h", "5s", "6c"))
	assert.Negative(t, Compare(wheel, sixHigh))
}

func TestCompareKickers(t *testing.T) {
	aceKicker := Evaluate(cards.MustCards("Jc", "Jd", "Ah", "7s", "2c"))
	kingKicker := Evaluate(cards.MustCards("Jh", "Js", "Kh", "7d", "2d"))
	assert.Positive(t, Compare(aceKicker, kingKicker))

	tie := Evaluate(cards.MustCards("Jh", "Js", "Ad", "7d", "2d"))
	assert.Zero(t, Compare(aceKicker, tie))
}

func TestEvaluatePartialHands(t *testing.T) {
	// one exposed card is a one-card straight flush ranked by the card
	ace := Evaluate(cards.MustCards("As"))
	king := Evaluate(cards.MustCards("Kh"))
	assert.Equal(t, StraightFlush, ace.Category)
	assert.Positive(t, Compare(ace, king))

	// two suited cards rank as a flush fragment
	suited := Evaluate(cards.MustCards("2h", "9h"))
	assert.Equal(t, Flush, suited.Category)

	offsuit := Evaluate(cards.MustCards("Ah", "9c"))
	assert.Equal(t, HighCard, offsuit.Category)
	assert.Positive(t, Compare(suited, offsuit))
}

func TestBestOfSeven(t *testing.T) {
	seven := cards.MustCards("2h", "7h", "9h", "Jh", "Kh", "As", "Ad")
	hand, eval := BestOfSeven(seven)

	require.Len(t, hand, 5)
	assert.Equal(t, Flush, eval.Category)
	assert.Equal(t, []int{13, 11, 9, 7, 2}, eval.Tiebreaks)
}

func TestBestOfSevenPrefersStraightOverTrips(t *testing.T) {
	seven := cards.MustCards("5c", "5d", "5h", "6s", "7c", "8d", "9h")
	_, eval := BestOfSeven(seven)
	assert.Equal(t, Straight, eval.Category)
	assert.Equal(t, []int{9}, eval.Tiebreaks)
}

// Cross-check ordering against the chehsunliu evaluator on random deals.
// Lower oracle rank means a stronger hand.
func TestEvaluateAgreesWithOracle(t *testing.T) {
	for i := 0; i < 500; i++ {
		deck := cards.NewDeck()
		a := deck.Deal(5)
		b := deck.Deal(5)

		ourA, ourB := Evaluate(a), Evaluate(b)
		oracleA, oracleB := chehsunliu.Evaluate(toLib(a)), chehsunliu.Evaluate(toLib(b))

		switch {
		case oracleA < oracleB:
			assert.Positive(t, Compare(ourA, ourB), "%v should beat %v", a, b)
		case oracleA > oracleB:
			assert.Negative(t, Compare(ourA, ourB), "%v should lose to %v", a, b)
		default:
			assert.Zero(t, Compare(ourA, ourB), "%v should tie %v", a, b)
		}
	}
}

func TestBestOfSevenAgreesWithOracle(t *testing.T) {
	for i := 0; i < 200; i++ {
		deck := cards.NewDeck()
		a := deck.Deal(7)
		b := deck.Deal(7)

		_, ourA := BestOfSeven(a)
		_, ourB := BestOfSeven(b)
		oracleA, oracleB := chehsunliu.Evaluate(toLib(a)), chehsunliu.Evaluate(toLib(b))

		switch {
		case oracleA < oracleB:
			assert.Positive(t, Compare(ourA, ourB), "%v should beat %v", a, b)
		case oracleA > oracleB:
			assert.Negative(t, Compare(ourA, ourB), "%v should lose to %v", a, b)
		default:
			assert.Zero(t, Compare(ourA, ourB), "%v should tie %v", a, b)
		}
	}
}

func toLib(hand []cards.Card) []chehsunliu.Card {
	rankMap := map[int]string{10: "T", cards.Jack: "J", cards.Queen: "Q", cards.King: "K", cards.Ace: "A"}
	suitMap := map[cards.Suit]string{cards.Spades: "s", cards.Hearts: "h", cards.Diamonds: "d", cards.Clubs: "c"}

	out := make([]chehsunliu.Card, len(hand))
	for i, c := range hand {
		rank, ok := rankMap[c.Rank]
		if !ok {
			rank = fmt.Sprintf("%d", c.Rank)
		}
		out[i] = chehsunliu.NewCard(rank + suitMap[c.Suit])
	}
	return out
}
