package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/pcheek13/MMM-LiveStats/internal/gamedata"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // display clients connect from arbitrary origins
	},
}

// Notification envelopes mirror the two cycle outcomes: subscribers receive
// either GAME_DATA or GAME_ERROR, never both for one cycle.
const (
	notificationGameData  = "GAME_DATA"
	notificationGameError = "GAME_ERROR"
)

type notification struct {
	Type    string `json:"type"`
	League  string `json:"league"`
	Payload any    `json:"payload"`
}

// Server broadcasts each fetch cycle's result to websocket subscribers.
// It implements the scheduler's Sink interface.
type Server struct {
	hub    *Hub
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a websocket server; Start launches the hub and listener.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		hub:    NewHub(),
		logger: logger,
	}
}

// Start runs the hub and listens on the given port. It blocks like
// http.ListenAndServe.
func (s *Server) Start(port string) error {
	go s.hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/gamedata", s.handleGameData)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	s.logger.Info("websocket server listening", "port", port)
	return s.server.ListenAndServe()
}

func (s *Server) handleGameData(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// PublishGameData broadcasts a success payload to all subscribers.
func (s *Server) PublishGameData(ctx context.Context, league leagues.Key, payload *gamedata.Payload) error {
	return s.broadcast(notification{Type: notificationGameData, League: string(league), Payload: payload})
}

// PublishGameError broadcasts an error payload to all subscribers.
func (s *Server) PublishGameError(ctx context.Context, league leagues.Key, payload *gamedata.ErrorPayload) error {
	return s.broadcast(notification{Type: notificationGameError, League: string(league), Payload: payload})
}

func (s *Server) broadcast(n notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	s.hub.Broadcast(data)
	return nil
}

// Shutdown gracefully shuts down the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
