package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Server serves the read-only HTTP API around the latest cycle result.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer wires the routes around a Handler.
func NewServer(port string, handler *Handler) *Server {
	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/gamedata", handler.GetGameData).Methods("GET")
	api.HandleFunc("/status", handler.GetStatus).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the HTTP listener.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
