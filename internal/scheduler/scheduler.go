package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/gamedata"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

// Sink receives the outcome of each fetch cycle: exactly one of a success
// payload or an error payload per cycle. Sink failures are logged and never
// fail the cycle.
type Sink interface {
	PublishGameData(ctx context.Context, league leagues.Key, payload *gamedata.Payload) error
	PublishGameError(ctx context.Context, league leagues.Key, payload *gamedata.ErrorPayload) error
}

// Status describes the recent health of the update loop.
type Status struct {
	League              leagues.Key `json:"league"`
	UpdateInterval      string      `json:"updateInterval"`
	ConsecutiveFailures int         `json:"consecutiveFailures"`
	LastError           string      `json:"lastError,omitempty"`
	LastAttempt         time.Time   `json:"lastAttempt"`
	LastSuccess         time.Time   `json:"lastSuccess"`
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Scheduler owns the single active resolved configuration and its timer.
// Reconfiguration tears down the previous timer, swaps the configuration
// atomically and starts a new loop; there is never concurrent mutation. A
// cycle runs to completion before the next tick fires, and a failed cycle
// only marks status — the next tick retries from scratch.
type Scheduler struct {
	service *gamedata.Service
	sinks   []Sink
	logger  *slog.Logger

	mu     sync.Mutex
	cfg    *config.Resolved
	cancel context.CancelFunc

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Scheduler publishing to the given sinks.
func New(service *gamedata.Service, logger *slog.Logger, sinks ...Sink) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		service: service,
		sinks:   sinks,
		logger:  logger,
	}
}

// Configure replaces the active configuration and restarts the update loop.
// Any in-flight loop is cancelled first; the new loop runs an immediate
// cycle and then ticks at the configured interval.
func (s *Scheduler) Configure(ctx context.Context, cfg *config.Resolved) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cfg = cfg
	s.cancel = cancel

	s.statusMu.Lock()
	s.status = Status{League: cfg.League, UpdateInterval: cfg.UpdateInterval.String()}
	s.statusMu.Unlock()

	s.logger.Info("scheduler configured",
		"league", cfg.League,
		"team", cfg.FavoriteTeamID,
		"interval", cfg.UpdateInterval,
	)

	go s.run(loopCtx, cfg)
}

// Stop cancels the active loop. It is safe to call repeatedly.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Status returns a snapshot of the loop's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// run is the update loop for one configuration. Cycles are sequential
// within the loop, so a cycle is never re-entered.
func (s *Scheduler) run(ctx context.Context, cfg *config.Resolved) {
	s.runCycle(ctx, cfg)

	ticker := time.NewTicker(cfg.UpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("update loop stopped", "league", cfg.League)
			return
		case <-ticker.C:
			s.runCycle(ctx, cfg)
		}
	}
}

// runCycle performs one fetch and publishes the result. The cycle is bounded
// by the update interval so it can never block past the next tick's floor.
func (s *Scheduler) runCycle(ctx context.Context, cfg *config.Resolved) {
	start := time.Now()
	s.recordAttempt(start)

	cycleCtx, cancel := context.WithTimeout(ctx, cfg.UpdateInterval)
	defer cancel()

	payload, err := s.service.FetchGameData(cycleCtx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.recordFailure(err)
		s.logger.Error("fetch cycle failed",
			"league", cfg.League,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		s.publishError(cycleCtx, cfg.League, &gamedata.ErrorPayload{Message: err.Error()})
		return
	}

	s.recordSuccess(start)
	s.logger.Info("fetch cycle complete",
		"league", cfg.League,
		"live", payload.LiveGame != nil,
		"upcoming", len(payload.UpcomingGames),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	for _, sink := range s.sinks {
		if err := sink.PublishGameData(cycleCtx, cfg.League, payload); err != nil {
			s.logger.Warn("sink publish failed", "league", cfg.League, "error", err)
		}
	}
}

func (s *Scheduler) publishError(ctx context.Context, league leagues.Key, payload *gamedata.ErrorPayload) {
	for _, sink := range s.sinks {
		if err := sink.PublishGameError(ctx, league, payload); err != nil {
			s.logger.Warn("sink error publish failed", "league", league, "error", err)
		}
	}
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
}
