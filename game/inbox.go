package game

import "sync"

// Action is one player decision delivered to the game task: a bet
// amount (the fold sentinel included), swap positions during the draw
// phase, or a quit signal when the player's connection drops.
type Action struct {
	Bet  int
	Swap []int
	Quit bool
}

// Inbox holds one single-slot channel per seated player. Client
// workers deliver actions; the game task is the only reader. Each slot
// keeps the latest undelivered action only: a newer action overwrites
// a stale one, so out-of-turn messages can never queue up and be
// replayed as answers to later prompts. This channel rendezvous is the
// turn handshake; the store's pending-action record is written
// alongside purely as persistence.
type Inbox struct {
	mu    sync.RWMutex
	boxes map[string]chan Action
}

// NewInbox creates a slot for each named player
func NewInbox(names []string) *Inbox {
	boxes := make(map[string]chan Action, len(names))
	for _, name := range names {
		boxes[name] = make(chan Action, 1)
	}
	return &Inbox{boxes: boxes}
}

// Deliver places an action in a player's slot, replacing any action
// still sitting there. Returns false for unknown players.
func (i *Inbox) Deliver(player string, a Action) bool {
	i.mu.RLock()
	ch, ok := i.boxes[player]
	i.mu.RUnlock()
	if !ok {
		return false
	}

	for {
		select {
		case ch <- a:
			return true
		default:
			// evict the stale action and retry
			select {
			case <-ch:
			default:
			}
		}
	}
}

// Channel returns the receive side for one player
func (i *Inbox) Channel(player string) <-chan Action {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.boxes[player]
}
