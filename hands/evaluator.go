package hands

import (
	"sort"

	"github.com/cardroom/dealerd/cards"
)

// Category represents the strength class of a poker hand, 1 (high card)
// through 10 (royal flush).
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	}
	return "Unknown"
}

// Evaluation is the comparable strength of a hand: category first, then
// tiebreak ranks in significance order (highest significance first).
type Evaluation struct {
	Category  Category
	Tiebreaks []int
}

// Evaluate ranks a hand of 1 to 5 cards. Five cards is the normal case;
// shorter hands occur when ordering exposed stud cards between streets,
// where the same rules apply to the fragment (two suited cards count as
// a flush, a lone card as a one-card straight flush).
func Evaluate(hand []cards.Card) Evaluation {
	ranks := make([]int, len(hand))
	for i, c := range hand {
		ranks[i] = c.Rank
	}
	sort.Ints(ranks)

	flush := isFlush(hand)
	straight, high := isStraight(ranks)

	counts := rankCounts(ranks)
	shape := countShape(counts)

	switch {
	case flush && straight:
		if len(ranks) == 5 && ranks[0] == 10 {
			return Evaluation{Category: RoyalFlush}
		}
		return Evaluation{Category: StraightFlush, Tiebreaks: []int{high}}

	case shapeIs(shape, 4, 1):
		return Evaluation{Category: FourOfAKind, Tiebreaks: append(ranksWithCount(counts, 4), ranksWithCount(counts, 1)...)}

	case shapeIs(shape, 3, 2):
		return Evaluation{Category: FullHouse, Tiebreaks: append(ranksWithCount(counts, 3), ranksWithCount(counts, 2)...)}

	case flush:
		return Evaluation{Category: Flush, Tiebreaks: descending(ranks)}

	case straight:
		return Evaluation{Category: Straight, Tiebreaks: []int{high}}

	case shapeIs(shape, 3, 1, 1):
		return Evaluation{Category: ThreeOfAKind, Tiebreaks: append(ranksWithCount(counts, 3), ranksWithCount(counts, 1)...)}

	case shapeIs(shape, 2, 2, 1):
		return Evaluation{Category: TwoPair, Tiebreaks: append(ranksWithCount(counts, 2), ranksWithCount(counts, 1)...)}

	case shapeIs(shape, 2, 1, 1, 1):
		return Evaluation{Category: OnePair, Tiebreaks: append(ranksWithCount(counts, 2), ranksWithCount(counts, 1)...)}
	}

	return Evaluation{Category: HighCard, Tiebreaks: descending(ranks)}
}

// Compare returns a negative number if a is weaker than b, zero if they
// tie, and a positive number if a is stronger.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	for i := 0; i < len(a.Tiebreaks) && i < len(b.Tiebreaks); i++ {
		if a.Tiebreaks[i] != b.Tiebreaks[i] {
			return a.Tiebreaks[i] - b.Tiebreaks[i]
		}
	}
	return 0
}

// BestOfSeven evaluates every 5-card subset of seven cards and returns
// the strongest hand with its evaluation.
func BestOfSeven(seven []cards.Card) ([]cards.Card, Evaluation) {
	var bestHand []cards.Card
	var best Evaluation

	for _, hand := range combinations(seven, 5) {
		eval := Evaluate(hand)
		if bestHand == nil || Compare(eval, best) > 0 {
			bestHand = hand
			best = eval
		}
	}
	return bestHand, best
}

// combinations returns all k-card subsets of the given cards
func combinations(set []cards.Card, k int) [][]cards.Card {
	var out [][]cards.Card
	var pick func(start int, chosen []cards.Card)
	pick = func(start int, chosen []cards.Card) {
		if len(chosen) == k {
			hand := make([]cards.Card, k)
			copy(hand, chosen)
			out = append(out, hand)
			return
		}
		for i := start; i <= len(set)-(k-len(chosen)); i++ {
			pick(i+1, append(chosen, set[i]))
		}
	}
	pick(0, nil)
	return out
}

func isFlush(hand []cards.Card) bool {
	for _, c := range hand {
		if c.Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

// isStraight reports whether the ascending ranks are consecutive, and
// the high card of the run. The wheel (A-2-3-4-5) is a straight whose
// high card is the 5.
func isStraight(ranks []int) (bool, int) {
	if len(ranks) == 5 && ranks[0] == 2 && ranks[1] == 3 && ranks[2] == 4 && ranks[3] == 5 && ranks[4] == cards.Ace {
		return true, 5
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false, 0
		}
	}
	return true, ranks[len(ranks)-1]
}

func rankCounts(ranks []int) map[int]int {
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}
	return counts
}

// countShape returns the multiplicities in descending order, e.g. a full
// house is [3 2] and two pair is [2 2 1].
func countShape(counts map[int]int) []int {
	shape := make([]int, 0, len(counts))
	for _, n := range counts {
		shape = append(shape, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(shape)))
	return shape
}

func shapeIs(shape []int, want ...int) bool {
	if len(shape) != len(want) {
		return false
	}
	for i := range shape {
		if shape[i] != want[i] {
			return false
		}
	}
	return true
}

// ranksWithCount returns the ranks appearing exactly n times, highest first
func ranksWithCount(counts map[int]int, n int) []int {
	var out []int
	for r, c := range counts {
		if c == n {
			out = append(out, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func descending(ranks []int) []int {
	out := make([]int, len(ranks))
	copy(out, ranks)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
