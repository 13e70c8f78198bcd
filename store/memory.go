package store

import (
	"context"
	"sync"
)

// Memory is the default store: mutex-guarded maps, no durability.
type Memory struct {
	mu        sync.Mutex
	passwords map[string]string
	stats     map[string]*Stats
	pending   map[string]string
	shared    map[string]any
	names     []string // registration order, for stable listings
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		passwords: make(map[string]string),
		stats:     make(map[string]*Stats),
		pending:   make(map[string]string),
		shared:    make(map[string]any),
	}
}

func (m *Memory) CreateAccount(_ context.Context, name, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.passwords[name]; ok {
		return ErrNameTaken
	}
	m.passwords[name] = password
	m.stats[name] = &Stats{Name: name}
	m.names = append(m.names, name)
	return nil
}

func (m *Memory) Authenticate(_ context.Context, name, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.passwords[name]
	if !ok {
		return ErrNoAccount
	}
	if stored != password {
		return ErrBadPassword
	}
	return nil
}

func (m *Memory) PlayerNames(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.names))
	copy(out, m.names)
	return out, nil
}

func (m *Memory) PlayerStats(_ context.Context, name string) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stats[name]
	if !ok {
		return Stats{}, ErrNoAccount
	}
	return *s, nil
}

func (m *Memory) WritePendingAction(_ context.Context, player, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[player] = value
	return nil
}

func (m *Memory) ReadPendingAction(_ context.Context, player string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.pending[player]
	return v, ok, nil
}

func (m *Memory) ClearPendingAction(_ context.Context, player string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, player)
	return nil
}

func (m *Memory) SetSharedField(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shared[key] = value
	return nil
}

func (m *Memory) SharedGame(_ context.Context) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]any, len(m.shared))
	for k, v := range m.shared {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) ResetSharedGame(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shared = make(map[string]any)
	return nil
}

func (m *Memory) RecordFolded(_ context.Context, player string, moneyLost int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.statsLocked(player)
	s.GamesPlayed++
	s.Losses++
	s.MoneyLost += moneyLost
	return nil
}

func (m *Memory) RecordResult(_ context.Context, winner string, losses map[string]int, pot int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for player, lost := range losses {
		s := m.statsLocked(player)
		s.GamesPlayed++
		if player == winner {
			s.Wins++
			s.MoneyWon += pot
		} else {
			s.Losses++
		}
		s.MoneyLost += lost
	}
	return nil
}

// statsLocked returns the stats row for a player, creating one for
// players who never registered. Caller holds the mutex.
func (m *Memory) statsLocked(name string) *Stats {
	s, ok := m.stats[name]
	if !ok {
		s = &Stats{Name: name}
		m.stats[name] = s
		m.names = append(m.names, name)
	}
	return s
}
