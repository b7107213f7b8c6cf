package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/espn"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

const (
	// DefaultUpdateInterval applies when no usable interval is configured.
	DefaultUpdateInterval = 5 * time.Minute
	// MinUpdateInterval is the floor for the polling cadence; anything
	// faster hammers the upstream API for data that changes by the minute.
	MinUpdateInterval = time.Minute
	// DefaultMaxUpcoming is the upcoming-game list bound when unset.
	DefaultMaxUpcoming = 3
)

// Resolved is the per-cycle configuration derived from a Raw config. Every
// field is populated; normalization never fails. It is owned by the
// scheduler and rebuilt whenever the raw configuration changes.
type Resolved struct {
	League    leagues.Key
	SportPath string

	AvailableLeagueOrder []leagues.Key
	LeagueFavorites      map[leagues.Key]string

	TeamPreset string
	Team       leagues.Team
	// RawTeam holds the team object supplied directly in configuration, if
	// any. Its fields feed the favorite team's identifier set.
	RawTeam map[string]any

	FavoriteTeamID               string
	FavoriteTeamDisplayName      string
	FavoriteTeamShortDisplayName string

	HeaderText     string
	UpdateInterval time.Duration
	MaxUpcoming    int
}

type resolvedPreset struct {
	key  string
	team leagues.Team
}

// Normalize resolves a Raw configuration into a Resolved one. Missing or
// invalid fields fall back to documented defaults; unknown leagues and
// presets degrade rather than error.
func Normalize(raw *Raw) *Resolved {
	if raw == nil {
		raw = &Raw{}
	}

	favorites := normalizeLeagueFavorites(raw.LeagueFavorites)

	orderSource := raw.AvailableLeagueOrder
	if orderSource == nil {
		orderSource = raw.AvailableLeagues
	}
	order := normalizeLeagueOrder(orderSource)

	leagueKey := strings.ToLower(strings.TrimSpace(raw.League))
	if !leagues.IsSupported(leagueKey) {
		leagueKey = string(order[0])
	}

	league, _ := leagues.Get(leagueKey)

	resolved := &Resolved{
		League:               league.Key,
		SportPath:            league.SportPath,
		AvailableLeagueOrder: order,
		LeagueFavorites:      make(map[leagues.Key]string, len(favorites)),
	}
	for lk, preset := range favorites {
		resolved.LeagueFavorites[lk] = preset.key
	}

	// Team selection tiers: preset key, then raw team object, then league
	// default. The first tier yielding a non-empty team wins.
	team := leagues.Team{}
	if preset, ok := favorites[league.Key]; ok {
		resolved.TeamPreset = preset.key
		team = preset.team
	} else if key, presetTeam, ok := leagues.ResolvePreset(league.Key, raw.TeamPreset); ok {
		resolved.TeamPreset = key
		team = presetTeam
	} else if len(raw.Team) > 0 {
		resolved.RawTeam = raw.Team
		team = leagues.Team{
			ID:               espn.ExtractString(raw.Team, "id"),
			DisplayName:      espn.ExtractString(raw.Team, "displayName"),
			ShortDisplayName: espn.ExtractString(raw.Team, "shortDisplayName"),
		}
	}
	if team.IsZero() {
		team = league.DefaultTeam
	}
	resolved.Team = team

	fallbackDisplayName := espn.FirstString(league.DefaultTeam.DisplayName, "Favorite Team")
	fallbackShortDisplayName := espn.FirstString(league.DefaultTeam.ShortDisplayName, fallbackDisplayName)

	resolved.FavoriteTeamID = espn.FirstString(team.ID, league.DefaultTeam.ID)
	resolved.FavoriteTeamDisplayName = espn.FirstString(team.DisplayName, fallbackDisplayName)
	resolved.FavoriteTeamShortDisplayName = espn.FirstString(team.ShortDisplayName, fallbackShortDisplayName, resolved.FavoriteTeamDisplayName)

	resolved.MaxUpcoming = normalizeLimit(raw.MaxUpcoming)
	resolved.UpdateInterval = normalizeInterval(raw.UpdateInterval)

	resolved.HeaderText = raw.HeaderText
	if resolved.HeaderText == "" {
		resolved.HeaderText = fmt.Sprintf("%s Live Stats", resolved.FavoriteTeamDisplayName)
	}

	return resolved
}

// normalizeLeagueFavorites resolves the per-league preset map, dropping
// unknown leagues and unknown presets. Leagues without a usable entry are
// simply absent; the team selection tiers cover them.
func normalizeLeagueFavorites(favorites map[string]string) map[leagues.Key]resolvedPreset {
	result := make(map[leagues.Key]resolvedPreset)
	for leagueKey, presetKey := range favorites {
		normalized := strings.ToLower(strings.TrimSpace(leagueKey))
		league, ok := leagues.Get(normalized)
		if !ok {
			continue
		}
		if key, team, ok := leagues.ResolvePreset(league.Key, presetKey); ok {
			result[league.Key] = resolvedPreset{key: key, team: team}
		}
	}
	return result
}

// normalizeLeagueOrder derives the available-league order from a free-form
// value: a comma/semicolon/whitespace-delimited string or an array. Unknown
// leagues are dropped; an empty result yields all supported leagues in
// catalog order.
func normalizeLeagueOrder(value any) []leagues.Key {
	var candidates []string
	switch v := value.(type) {
	case string:
		candidates = strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
	case []any:
		for _, item := range v {
			candidates = append(candidates, espn.Stringify(item))
		}
	case []string:
		candidates = v
	}

	var order []leagues.Key
	seen := make(map[leagues.Key]bool)
	for _, candidate := range candidates {
		league, ok := leagues.Get(candidate)
		if !ok || seen[league.Key] {
			continue
		}
		seen[league.Key] = true
		order = append(order, league.Key)
	}

	if len(order) == 0 {
		return leagues.Keys()
	}
	return order
}

func normalizeInterval(value any) time.Duration {
	ms := espn.ParseInt(value)
	if ms <= 0 {
		return DefaultUpdateInterval
	}
	interval := time.Duration(ms) * time.Millisecond
	if interval < MinUpdateInterval {
		return MinUpdateInterval
	}
	return interval
}

func normalizeLimit(value any) int {
	limit := espn.ParseInt(value)
	if limit <= 0 {
		return DefaultMaxUpcoming
	}
	return limit
}
