package server

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"github.com/weedbox/syncsaga"

	"github.com/cardroom/dealerd/server/handlers"
)

// Lobby fills the seats for the next hand. Players claim seats with
// the ready command; once every seat is taken the full callback fires
// with the seated names in claim order.
type Lobby struct {
	mu     sync.Mutex
	seats  int
	names  []string
	rg     *syncsaga.ReadyGroup
	onFull func(names []string)
	log    *logrus.Entry
}

// NewLobby creates a lobby for the given number of seats
func NewLobby(logger *logrus.Logger, seats int) *Lobby {
	l := &Lobby{
		seats: seats,
		rg:    syncsaga.NewReadyGroup(),
		log:   logger.WithField("component", "lobby"),
	}

	l.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		go l.completed()
	})

	l.resetLocked()
	return l
}

// OnFull installs the callback that starts a game. Set before players
// can connect.
func (l *Lobby) OnFull(fn func(names []string)) {
	l.onFull = fn
}

// Ready claims the next free seat for a player
func (l *Lobby) Ready(name string) handlers.SeatResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	if funk.ContainsString(l.names, name) {
		return handlers.AlreadySeated
	}
	if len(l.names) >= l.seats {
		return handlers.LobbyFull
	}

	seat := len(l.names)
	l.names = append(l.names, name)
	l.rg.Ready(int64(seat))
	l.log.WithFields(logrus.Fields{"player": name, "seat": seat}).Info("seat claimed")
	return handlers.Seated
}

// Reset empties the lobby for the next hand
func (l *Lobby) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetLocked()
}

func (l *Lobby) resetLocked() {
	l.names = nil
	l.rg.Stop()
	l.rg.ResetParticipants()
	for seat := 0; seat < l.seats; seat++ {
		l.rg.Add(int64(seat), false)
	}
	l.rg.Start()
}

func (l *Lobby) completed() {
	l.mu.Lock()
	names := make([]string, len(l.names))
	copy(names, l.names)
	l.mu.Unlock()

	l.log.WithField("players", names).Info("lobby full")
	if l.onFull != nil {
		l.onFull(names)
	}
}
