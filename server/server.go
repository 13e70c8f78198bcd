package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cardroom/dealerd/config"
	"github.com/cardroom/dealerd/game"
	"github.com/cardroom/dealerd/server/connection"
	"github.com/cardroom/dealerd/server/handlers"
	"github.com/cardroom/dealerd/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server owns everything: config, store, connections, lobby, and the
// game currently running. One game at a time.
type Server struct {
	cfg       config.Config
	log       *logrus.Logger
	store     store.Store
	connMgr   *connection.Manager
	cmdRouter *handlers.CommandRouter
	lobby     *Lobby

	mu      sync.Mutex
	current *game.Inbox // inbox of the running game, nil between hands
}

// NewServer wires a server from its collaborators
func NewServer(cfg config.Config, logger *logrus.Logger, st store.Store) *Server {
	s := &Server{
		cfg:     cfg,
		log:     logger,
		store:   st,
		connMgr: connection.NewManager(),
		lobby:   NewLobby(logger, cfg.Players),
	}
	s.cmdRouter = handlers.NewCommandRouter(logger, st, s.connMgr, s.lobby, s)
	s.lobby.OnFull(s.startGame)
	s.connMgr.OnDrop(s.playerDropped)
	return s
}

// Start listens for players and, when configured, spectators. It
// blocks until the listener fails or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go s.connMgr.Start()

	if s.cfg.WebAddr != "" {
		go s.serveSpectators()
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	s.log.WithField("addr", s.cfg.Addr).Info("listening for players")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		s.handleConn(ctx, conn)
	}
}

// handleConn registers a client and starts its pumps
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	client := &connection.Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	s.log.WithFields(logrus.Fields{"client": client.ID, "remote": conn.RemoteAddr()}).Info("client connected")

	s.connMgr.Register <- client
	go s.readPump(ctx, client)
	go s.writePump(client)
}

// readPump reads frames off the socket and routes them
func (s *Server) readPump(ctx context.Context, client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		payload, err := connection.ReadFrame(client.Conn)
		if err != nil {
			s.log.WithField("client", client.ID).WithError(err).Debug("read pump closing")
			return
		}
		if len(payload) == 0 {
			continue
		}
		s.cmdRouter.HandleCommand(ctx, client, payload)
	}
}

// writePump drains the send queue onto the socket
func (s *Server) writePump(client *connection.Client) {
	defer client.Conn.Close()

	for frame := range client.Send {
		if _, err := client.Conn.Write(frame); err != nil {
			s.log.WithField("client", client.ID).WithError(err).Debug("write pump closing")
			return
		}
	}
}

// startGame launches the game task once the lobby fills
func (s *Server) startGame(names []string) {
	inbox := game.NewInbox(names)
	g := game.New(s.log, s.store, s, inbox, names, s.cfg)

	s.mu.Lock()
	s.current = inbox
	s.mu.Unlock()

	go func() {
		g.Run(context.Background())

		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		s.lobby.Reset()
	}()
}

// playerDropped forwards a disconnect to the running game as a quit
func (s *Server) playerDropped(name string) {
	s.mu.Lock()
	inbox := s.current
	s.mu.Unlock()
	if inbox != nil {
		inbox.Deliver(name, game.Action{Quit: true})
		s.log.WithField("player", name).Info("disconnected during hand, queued quit")
	}
}

// DeliverBet hands a bet to the running game
func (s *Server) DeliverBet(name string, amount int) {
	s.mu.Lock()
	inbox := s.current
	s.mu.Unlock()
	if inbox != nil {
		inbox.Deliver(name, game.Action{Bet: amount})
	}
}

// DeliverSwap hands swap positions to the running game
func (s *Server) DeliverSwap(name string, positions []int) {
	s.mu.Lock()
	inbox := s.current
	s.mu.Unlock()
	if inbox != nil {
		inbox.Deliver(name, game.Action{Swap: positions})
	}
}

// Broadcast implements game.Broadcaster over the player connections
func (s *Server) Broadcast(payload map[string]any) {
	frame, ok := s.encode(payload)
	if !ok {
		return
	}
	s.connMgr.BroadcastPlayers(frame)
}

// SendTo implements game.Broadcaster for a single player
func (s *Server) SendTo(player string, payload map[string]any) {
	frame, ok := s.encode(payload)
	if !ok {
		return
	}
	s.connMgr.SendToPlayer(player, frame)
}

func (s *Server) encode(payload map[string]any) ([]byte, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.WithError(err).Warn("payload marshal failed")
		return nil, false
	}
	frame, err := connection.EncodeFrame(data)
	if err != nil {
		s.log.WithField("size", len(data)).Warn("payload exceeds frame size, dropping")
		return nil, false
	}
	return frame, true
}

// serveSpectators exposes the shared game record over a websocket feed
func (s *Server) serveSpectators() {
	mux := http.NewServeMux()
	mux.HandleFunc("/spectate", s.handleSpectatorSocket)

	s.log.WithField("addr", s.cfg.WebAddr).Info("listening for spectators")
	if err := http.ListenAndServe(s.cfg.WebAddr, mux); err != nil {
		s.log.WithError(err).Error("spectator listener failed")
	}
}

// handleSpectatorSocket pushes the shared game record once a second
func (s *Server) handleSpectatorSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("spectator upgrade failed")
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		record, err := s.store.SharedGame(r.Context())
		if err != nil {
			s.log.WithError(err).Warn("spectator snapshot failed")
			continue
		}
		if err := conn.WriteJSON(record); err != nil {
			return
		}
	}
}
