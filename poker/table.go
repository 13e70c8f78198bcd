package poker

import (
	"github.com/thoas/go-funk"
)

// Betting sentinels. NoBet marks a round nobody has bet into yet; Fold
// is the amount a player sends to fold.
const (
	NoBet = -2
	Fold  = -1
)

// Table holds the shared state of one hand. Active keeps seat order;
// folding moves a player to Folded and they are never re-admitted.
type Table struct {
	Active     []*Player
	Folded     []*Player
	Pot        int
	CurrentBet int
}

// NewTable seats the named players in order
func NewTable(names []string) *Table {
	t := &Table{CurrentBet: NoBet}
	for _, name := range names {
		t.Active = append(t.Active, &Player{Name: name})
	}
	return t
}

// Player finds a seated player by name, folded or not
func (t *Table) Player(name string) *Player {
	match := func(p *Player) bool { return p.Name == name }
	if p := funk.Find(t.Active, match); p != nil {
		return p.(*Player)
	}
	if p := funk.Find(t.Folded, match); p != nil {
		return p.(*Player)
	}
	return nil
}

// Seat returns the index of a player in the active list, or -1
func (t *Table) Seat(name string) int {
	return funk.IndexOf(funk.Map(t.Active, func(p *Player) string { return p.Name }).([]string), name)
}

// ActiveNames returns the names of the players still in the hand, in
// seat order.
func (t *Table) ActiveNames() []string {
	return funk.Map(t.Active, func(p *Player) string { return p.Name }).([]string)
}

// Fold moves the player at the given active index to the folded list
func (t *Table) Fold(seat int) *Player {
	p := t.Active[seat]
	t.Folded = append(t.Folded, p)
	t.Active = append(t.Active[:seat], t.Active[seat+1:]...)
	return p
}

// Contribute commits amount more chips from the player into the pot
func (t *Table) Contribute(p *Player, amount int) {
	p.Bet += amount
	p.Committed += amount
	t.Pot += amount
}

// TakeAnte collects the ante from every active player. Antes go
// straight to the pot and do not count toward the round's bet level.
func (t *Table) TakeAnte(ante int) {
	for _, p := range t.Active {
		p.Committed += ante
		t.Pot += ante
	}
}

// ResetBets clears per-round bets ahead of a fresh betting round
func (t *Table) ResetBets() {
	for _, p := range t.Active {
		p.Bet = 0
	}
	t.CurrentBet = NoBet
}

// Bets maps each active player to their current-round bet
func (t *Table) Bets() map[string]int {
	out := make(map[string]int, len(t.Active))
	for _, p := range t.Active {
		out[p.Name] = p.Bet
	}
	return out
}
