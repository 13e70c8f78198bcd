package connection

import (
	"net"
	"sync"
)

// Client represents one connected socket
type Client struct {
	ID   string
	Conn net.Conn
	Send chan []byte // encoded frames, drained by the write pump

	mu   sync.Mutex
	name string // account name once logged in
}

// SetName binds the client to an account after register/login
func (c *Client) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

// Name returns the bound account name, empty before login
func (c *Client) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Manager tracks all client connections and routes outbound frames.
// Registration and removal go through channels so a single goroutine
// owns the lifecycle; lookups take the read lock only long enough to
// pick a send channel, never across socket writes.
type Manager struct {
	clients    map[string]*Client // client ID -> client
	playerMap  map[string]string  // account name -> client ID
	Register   chan *Client
	Unregister chan *Client
	onDrop     func(name string)
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		playerMap:  make(map[string]string),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// OnDrop installs a hook called with the account name of every named
// client that disconnects. Set before Start.
func (m *Manager) OnDrop(fn func(name string)) {
	m.onDrop = fn
}

// Start processes connection events until the server stops
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.Register:
			m.mutex.Lock()
			m.clients[client.ID] = client
			m.mutex.Unlock()
		case client := <-m.Unregister:
			name := client.Name()
			m.mutex.Lock()
			if _, ok := m.clients[client.ID]; ok {
				if name != "" {
					delete(m.playerMap, name)
				}
				delete(m.clients, client.ID)
				close(client.Send)
			}
			m.mutex.Unlock()
			if name != "" && m.onDrop != nil {
				m.onDrop(name)
			}
		}
	}
}

// BindPlayer maps an account name to a client so the game can reach
// the player by name.
func (m *Manager) BindPlayer(name string, client *Client) {
	client.SetName(name)
	m.mutex.Lock()
	m.playerMap[name] = client.ID
	m.mutex.Unlock()
}

// SendToPlayer queues a frame for a named player. Returns false if the
// player is not connected or their queue is full.
func (m *Manager) SendToPlayer(name string, frame []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	connID, ok := m.playerMap[name]
	if !ok {
		return false
	}
	client, ok := m.clients[connID]
	if !ok {
		return false
	}

	select {
	case client.Send <- frame:
		return true
	default:
		return false
	}
}

// BroadcastPlayers queues a frame for every named (logged-in) client.
// Slow clients with full queues miss the frame rather than stall the
// game.
func (m *Manager) BroadcastPlayers(frame []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, connID := range m.playerMap {
		client, ok := m.clients[connID]
		if !ok {
			continue
		}
		select {
		case client.Send <- frame:
		default:
		}
	}
}
