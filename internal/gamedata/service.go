package gamedata

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/espn"
)

// Fetcher is the upstream capability the service consumes: three JSON
// resources keyed by sport path and team or event id.
type Fetcher interface {
	FetchTeamSchedule(ctx context.Context, sportPath, teamID string) (map[string]any, error)
	FetchTeamInfo(ctx context.Context, sportPath, teamID string) (map[string]any, error)
	FetchEventSummary(ctx context.Context, sportPath, eventID string) (map[string]any, error)
}

// TeamInfoCache caches team-info payloads between cycles. A nil cache
// degrades to direct fetches.
type TeamInfoCache interface {
	GetTeamInfo(ctx context.Context, sportPath, teamID string) (map[string]any, bool)
	SetTeamInfo(ctx context.Context, sportPath, teamID string, payload map[string]any)
}

// Service runs one fetch cycle per call: schedule and team info are fetched
// concurrently, the schedule is classified, and a success payload is
// assembled. Only an upstream transport failure surfaces as an error;
// malformed fields degrade to defaults inside the assembly components.
type Service struct {
	fetcher Fetcher
	cache   TeamInfoCache
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCache attaches a team-info cache.
func WithCache(cache TeamInfoCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithClock overrides the schedule classification clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService constructs a Service around an upstream fetcher.
func NewService(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchGameData runs one cycle for the given resolved configuration and
// returns the success payload, or an error when the upstream fetch fails.
// The team-info fetch is best-effort: its failure never fails the cycle.
func (s *Service) FetchGameData(ctx context.Context, cfg *config.Resolved) (*Payload, error) {
	var (
		wg       sync.WaitGroup
		schedule map[string]any
		teamInfo map[string]any
		schedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		schedule, schedErr = s.fetcher.FetchTeamSchedule(ctx, cfg.SportPath, cfg.FavoriteTeamID)
	}()
	go func() {
		defer wg.Done()
		teamInfo = s.fetchTeamInfo(ctx, cfg)
	}()
	wg.Wait()

	if schedErr != nil {
		return nil, schedErr
	}

	profile := BuildTeamProfile(cfg, teamInfo)

	classified := ClassifySchedule(espn.ExtractArray(schedule, "events"), s.now(), cfg.MaxUpcoming)

	upcoming := make([]UpcomingGame, 0, len(classified.UpcomingEvents))
	for _, event := range classified.UpcomingEvents {
		if game := FormatUpcoming(event, profile); game != nil {
			upcoming = append(upcoming, *game)
		}
	}

	var liveGame *LiveGame
	if classified.LiveEvent != nil {
		eventID := espn.ExtractString(classified.LiveEvent, "id")
		summary, err := s.fetcher.FetchEventSummary(ctx, cfg.SportPath, eventID)
		if err != nil {
			return nil, err
		}
		liveGame = AssembleLiveGame(classified.LiveEvent, summary, profile, cfg)
	}

	return &Payload{
		FavoriteTeam:  profile.StripForClient(),
		LiveGame:      liveGame,
		UpcomingGames: upcoming,
	}, nil
}

// fetchTeamInfo returns the favorite team's info payload, consulting the
// cache first. Failures are logged and swallowed; the profile builder works
// from configuration alone when no payload is available.
func (s *Service) fetchTeamInfo(ctx context.Context, cfg *config.Resolved) map[string]any {
	if cfg.FavoriteTeamID == "" {
		return nil
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetTeamInfo(ctx, cfg.SportPath, cfg.FavoriteTeamID); ok {
			return cached
		}
	}

	teamInfo, err := s.fetcher.FetchTeamInfo(ctx, cfg.SportPath, cfg.FavoriteTeamID)
	if err != nil {
		s.logger.Warn("team info fetch failed",
			"league", cfg.League,
			"team", cfg.FavoriteTeamID,
			"error", err,
		)
		return nil
	}

	if s.cache != nil {
		s.cache.SetTeamInfo(ctx, cfg.SportPath, cfg.FavoriteTeamID, teamInfo)
	}
	return teamInfo
}
