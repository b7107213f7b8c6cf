package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/gamedata"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
	"github.com/pcheek13/MMM-LiveStats/internal/scheduler"
)

// StatusReporter exposes the scheduler's health for the status endpoint.
type StatusReporter interface {
	Status() scheduler.Status
}

// Handler serves the most recent cycle result over HTTP. It implements the
// scheduler's Sink interface, so results arrive the same way they do for
// every other surface.
type Handler struct {
	status StatusReporter

	mu         sync.RWMutex
	league     leagues.Key
	latest     *gamedata.Payload
	latestErr  *gamedata.ErrorPayload
	receivedAt time.Time
}

// NewHandler creates a Handler. The status reporter is attached afterwards
// because the scheduler is constructed with this handler as one of its
// sinks.
func NewHandler() *Handler {
	return &Handler{}
}

// SetStatusReporter attaches the scheduler whose health the status and
// health endpoints report.
func (h *Handler) SetStatusReporter(status StatusReporter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
}

func (h *Handler) statusSnapshot() scheduler.Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.status == nil {
		return scheduler.Status{}
	}
	return h.status.Status()
}

// PublishGameData records the latest success payload.
func (h *Handler) PublishGameData(ctx context.Context, league leagues.Key, payload *gamedata.Payload) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.league = league
	h.latest = payload
	h.latestErr = nil
	h.receivedAt = time.Now()
	return nil
}

// PublishGameError records the latest error payload.
func (h *Handler) PublishGameError(ctx context.Context, league leagues.Key, payload *gamedata.ErrorPayload) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.league = league
	h.latest = nil
	h.latestErr = payload
	h.receivedAt = time.Now()
	return nil
}

// HealthCheck reports process liveness and loop readiness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.statusSnapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"ready":  status.IsReady(),
	})
}

// GetGameData serves the most recent cycle result: the success payload, the
// error payload, or 404 before the first cycle completes.
func (h *Handler) GetGameData(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	league := h.league
	latest := h.latest
	latestErr := h.latestErr
	receivedAt := h.receivedAt
	h.mu.RUnlock()

	switch {
	case latest != nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"league":     league,
			"receivedAt": receivedAt,
			"data":       latest,
		})
	case latestErr != nil:
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"league":     league,
			"receivedAt": receivedAt,
			"error":      latestErr,
		})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]string{"message": "no game data yet"},
		})
	}
}

// GetStatus serves the scheduler's health snapshot.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statusSnapshot())
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
