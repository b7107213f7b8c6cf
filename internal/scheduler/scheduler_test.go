package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/gamedata"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

type stubFetcher struct {
	scheduleErr error
}

func (f *stubFetcher) FetchTeamSchedule(ctx context.Context, sportPath, teamID string) (map[string]any, error) {
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	return map[string]any{"events": []any{}}, nil
}

func (f *stubFetcher) FetchTeamInfo(ctx context.Context, sportPath, teamID string) (map[string]any, error) {
	return map[string]any{"team": map[string]any{"displayName": "Indiana Fever"}}, nil
}

func (f *stubFetcher) FetchEventSummary(ctx context.Context, sportPath, eventID string) (map[string]any, error) {
	return map[string]any{}, nil
}

type published struct {
	league  leagues.Key
	payload *gamedata.Payload
	errMsg  string
}

type channelSink struct {
	results chan published
}

func newChannelSink() *channelSink {
	return &channelSink{results: make(chan published, 8)}
}

func (s *channelSink) PublishGameData(ctx context.Context, league leagues.Key, payload *gamedata.Payload) error {
	s.results <- published{league: league, payload: payload}
	return nil
}

func (s *channelSink) PublishGameError(ctx context.Context, league leagues.Key, payload *gamedata.ErrorPayload) error {
	s.results <- published{league: league, errMsg: payload.Message}
	return nil
}

func (s *channelSink) wait(t *testing.T) published {
	t.Helper()
	select {
	case result := <-s.results:
		return result
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a publish")
		return published{}
	}
}

func testConfig() *config.Resolved {
	return &config.Resolved{
		League:                  leagues.WNBA,
		SportPath:               "basketball/wnba",
		FavoriteTeamID:          "ind",
		FavoriteTeamDisplayName: "Indiana Fever",
		UpdateInterval:          time.Minute,
		MaxUpcoming:             3,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfigureRunsImmediateCycle(t *testing.T) {
	sink := newChannelSink()
	service := gamedata.NewService(&stubFetcher{}, testLogger())
	sched := New(service, testLogger(), sink)
	defer sched.Stop()

	sched.Configure(context.Background(), testConfig())

	result := sink.wait(t)
	if result.league != leagues.WNBA {
		t.Fatalf("unexpected league: %s", result.league)
	}
	if result.payload == nil || result.payload.FavoriteTeam == nil {
		t.Fatalf("expected a success payload, got %+v", result)
	}

	status := sched.Status()
	if status.League != leagues.WNBA || status.LastSuccess.IsZero() {
		t.Fatalf("unexpected status: %+v", status)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after a successful cycle")
	}
}

func TestFailedCyclePublishesErrorPayload(t *testing.T) {
	sink := newChannelSink()
	service := gamedata.NewService(&stubFetcher{scheduleErr: errors.New("upstream down")}, testLogger())
	sched := New(service, testLogger(), sink)
	defer sched.Stop()

	sched.Configure(context.Background(), testConfig())

	result := sink.wait(t)
	if result.errMsg != "upstream down" {
		t.Fatalf("expected error payload, got %+v", result)
	}

	status := sched.Status()
	if status.ConsecutiveFailures != 1 || status.LastError != "upstream down" {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.IsReady() {
		t.Fatalf("must not be ready without a success")
	}
}

func TestReconfigureReplacesLoop(t *testing.T) {
	sink := newChannelSink()
	service := gamedata.NewService(&stubFetcher{}, testLogger())
	sched := New(service, testLogger(), sink)
	defer sched.Stop()

	sched.Configure(context.Background(), testConfig())
	sink.wait(t)

	nhlCfg := testConfig()
	nhlCfg.League = leagues.NHL
	nhlCfg.SportPath = "hockey/nhl"
	nhlCfg.FavoriteTeamID = "chi"
	sched.Configure(context.Background(), nhlCfg)

	result := sink.wait(t)
	if result.league != leagues.NHL {
		t.Fatalf("expected the new league, got %s", result.league)
	}
	if sched.Status().League != leagues.NHL {
		t.Fatalf("status not reset: %+v", sched.Status())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	service := gamedata.NewService(&stubFetcher{}, testLogger())
	sched := New(service, testLogger(), newChannelSink())

	sched.Configure(context.Background(), testConfig())
	sched.Stop()
	sched.Stop()
}

func TestStatusIsReady(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{Status{}, false},
		{Status{LastSuccess: time.Now()}, true},
		{Status{LastSuccess: time.Now(), ConsecutiveFailures: 2}, true},
		{Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}, false},
	}
	for i, c := range cases {
		if got := c.status.IsReady(); got != c.want {
			t.Fatalf("case %d: expected %v, got %v", i, c.want, got)
		}
	}
}
