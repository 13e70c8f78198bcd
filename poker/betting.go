package poker

// BetFunc obtains the next action for a player: a chip amount, 0 to
// check or call, or Fold. An error is treated as a fold.
type BetFunc func(playerName string) (int, error)

// RoundOptions parameterizes one betting round.
type RoundOptions struct {
	// Start is the active seat where action begins.
	Start int
	// OpeningBet sets the bet level the round opens at (the big blind
	// pre-flop). Zero means the round opens unbet.
	OpeningBet int
	// OpeningBettor, when set, is credited with the opening bet: the
	// round ends when action returns to them without a raise.
	OpeningBettor string
	// CallOnly restricts actions to matching the current bet exactly
	// or folding. Used for the first pre-flop pass.
	CallOnly bool
	// CheckCloser, when set, names the player whose check ends the
	// round immediately if nobody has put chips in during it. Used for
	// the big blind's option.
	CheckCloser string
}

// RoundHooks lets the caller observe the round as it runs. Any hook
// may be nil.
type RoundHooks struct {
	OnTurn         func(playerName string)
	OnFold         func(playerName string)
	OnContribution func(playerName string, amount int, raised bool)
	OnReject       func(playerName string, amount int)
}

// RunBettingRound drives one betting round over the active players.
//
// Action proceeds in seat order from Start, wrapping, and stops when it
// returns to the player credited with the highest bet, or when a single
// player remains. A contribution below the current bet (other than the
// fold sentinel) is rejected and the same player is asked again. A
// contribution above the current bet records the player as the highest
// bettor; checking into an unbet round does too, which is what ends an
// all-check round after one action each.
func (t *Table) RunBettingRound(opts RoundOptions, ask BetFunc, hooks RoundHooks) {
	if opts.OpeningBet != 0 {
		t.CurrentBet = opts.OpeningBet
	} else {
		t.CurrentBet = NoBet
	}
	firstHighest := opts.OpeningBettor
	prePot := t.Pot

	seat := opts.Start
	for {
		if len(t.Active) <= 1 {
			return
		}
		if seat >= len(t.Active) {
			seat = 0
		}

		player := t.Active[seat]
		if player.Name == firstHighest {
			return
		}

	turn:
		for {
			if hooks.OnTurn != nil {
				hooks.OnTurn(player.Name)
			}

			amount, err := ask(player.Name)
			if err != nil {
				amount = Fold
			}

			switch {
			case amount == 0 && player.Name == opts.CheckCloser && t.Pot == prePot:
				// the closer checks an untouched round shut
				return

			case amount == Fold:
				t.Fold(seat)
				seat--
				if hooks.OnFold != nil {
					hooks.OnFold(player.Name)
				}
				break turn

			case amount < 0:
				if hooks.OnReject != nil {
					hooks.OnReject(player.Name, amount)
				}

			case opts.CallOnly:
				if player.Bet+amount == t.CurrentBet {
					t.Contribute(player, amount)
					if hooks.OnContribution != nil {
						hooks.OnContribution(player.Name, amount, false)
					}
					break turn
				}
				if hooks.OnReject != nil {
					hooks.OnReject(player.Name, amount)
				}

			case player.Bet+amount >= t.CurrentBet:
				total := player.Bet + amount
				// a check into an unbet round takes the return point but
				// is not a raise
				raised := total > t.CurrentBet && total > 0
				if total > t.CurrentBet {
					firstHighest = player.Name
					t.CurrentBet = total
				} else if firstHighest == "" {
					// a flat call into a round with no recorded bettor
					// (the opener folded) still needs a return point
					firstHighest = player.Name
				}
				t.Contribute(player, amount)
				if hooks.OnContribution != nil {
					hooks.OnContribution(player.Name, amount, raised)
				}
				break turn

			default:
				if hooks.OnReject != nil {
					hooks.OnReject(player.Name, amount)
				}
			}
		}

		seat++
	}
}
