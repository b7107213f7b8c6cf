package gamedata

import (
	"testing"

	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

func TestIdentifierSetNormalizesAndDropsEmpties(t *testing.T) {
	set := NewIdentifierSet("  IND  ", "Indiana Fever", "", nil, float64(282))

	if len(set) != 3 {
		t.Fatalf("expected 3 identifiers, got %d: %v", len(set), set)
	}
	for _, v := range []any{"ind", "IND", "indiana fever", "282", 282} {
		if !set.Has(v) {
			t.Fatalf("expected set to contain %v", v)
		}
	}
	if set.Has("") || set.Has(nil) {
		t.Fatalf("empty values must never match")
	}
}

func TestIdentifierSetIntersects(t *testing.T) {
	a := NewIdentifierSet("ind", "indiana fever")
	b := NewIdentifierSet("IND", "pacers")
	c := NewIdentifierSet("sea", "storm")

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Fatalf("expected overlap between %v and %v", a, b)
	}
	if a.Intersects(c) {
		t.Fatalf("unexpected overlap between %v and %v", a, c)
	}
	if a.Intersects(NewIdentifierSet()) {
		t.Fatalf("empty set must not intersect")
	}
}

func TestResolveIdentifiersCollectsAllSources(t *testing.T) {
	cfg := &config.Resolved{
		League:                       leagues.WNBA,
		FavoriteTeamID:               "lv",
		FavoriteTeamDisplayName:      "Las Vegas Aces",
		FavoriteTeamShortDisplayName: "Aces",
		RawTeam: map[string]any{
			"slug":         "las-vegas-aces",
			"abbreviation": "LVA",
		},
	}
	upstream := map[string]any{
		"id":       float64(17),
		"nickname": "Aces",
		"location": "Las Vegas",
		"alternateIds": map[string]any{
			"sdr": "4433",
		},
		"alternateIdentifiers": []any{"vegas"},
	}

	set := ResolveIdentifiers(cfg, upstream)

	for _, want := range []string{
		"lv", "las vegas aces", "aces",
		"las-vegas-aces", "lva",
		"17", "las vegas", "4433", "vegas",
		// catalog aliases for the lv team id
		"lva", "aces",
		// league default team bleeds in as a low-value candidate
		"ind", "indiana fever",
	} {
		if !set.Has(want) {
			t.Fatalf("expected identifier %q in %v", want, set)
		}
	}
}

func TestResolveIdentifiersNeverEmptyForConfiguredTeam(t *testing.T) {
	cfg := &config.Resolved{League: leagues.NHL, FavoriteTeamID: "chi"}
	set := ResolveIdentifiers(cfg, nil)
	if !set.Has("chi") {
		t.Fatalf("expected team id in set, got %v", set)
	}
}

func TestMatchCompetitorsByIdentifierOverlap(t *testing.T) {
	competition := map[string]any{
		"competitors": []any{
			map[string]any{
				"homeAway": "home",
				"team":     map[string]any{"abbreviation": "SEA", "displayName": "Seattle Storm"},
			},
			map[string]any{
				"homeAway": "away",
				"team":     map[string]any{"abbreviation": "IND", "displayName": "Indiana Fever"},
			},
		},
	}

	favorite, opponent := MatchCompetitors(competition, NewIdentifierSet("ind"))
	if favorite == nil || opponent == nil {
		t.Fatalf("expected both sides, got favorite=%v opponent=%v", favorite, opponent)
	}
	if got := favorite["homeAway"]; got != "away" {
		t.Fatalf("expected away favorite, got %v", got)
	}
	if got := opponent["homeAway"]; got != "home" {
		t.Fatalf("expected home opponent, got %v", got)
	}
}

func TestMatchCompetitorsFallsBackToHomeThenFirst(t *testing.T) {
	competition := map[string]any{
		"competitors": []any{
			map[string]any{"homeAway": "away", "team": map[string]any{"abbreviation": "AAA"}},
			map[string]any{"homeAway": "home", "team": map[string]any{"abbreviation": "BBB"}},
		},
	}

	favorite, opponent := MatchCompetitors(competition, NewIdentifierSet("zzz"))
	if got := favorite["homeAway"]; got != "home" {
		t.Fatalf("expected home fallback, got %v", got)
	}
	if got := opponent["homeAway"]; got != "away" {
		t.Fatalf("expected away opponent, got %v", got)
	}

	noHome := map[string]any{
		"competitors": []any{
			map[string]any{"homeAway": "away", "team": map[string]any{"abbreviation": "AAA"}},
			map[string]any{"homeAway": "away", "team": map[string]any{"abbreviation": "BBB"}},
		},
	}
	favorite, opponent = MatchCompetitors(noHome, NewIdentifierSet("zzz"))
	if favorite["team"].(map[string]any)["abbreviation"] != "AAA" {
		t.Fatalf("expected first-competitor fallback, got %v", favorite)
	}
	if opponent == nil {
		t.Fatalf("expected an opponent")
	}
}

func TestMatchCompetitorsEmptyAndSingle(t *testing.T) {
	favorite, opponent := MatchCompetitors(map[string]any{}, NewIdentifierSet("ind"))
	if favorite != nil || opponent != nil {
		t.Fatalf("expected nil pair for empty list")
	}

	single := map[string]any{
		"competitors": []any{
			map[string]any{"team": map[string]any{"abbreviation": "IND"}},
		},
	}
	favorite, opponent = MatchCompetitors(single, NewIdentifierSet("ind"))
	if favorite == nil {
		t.Fatalf("expected a favorite for a single-competitor list")
	}
	if opponent != nil {
		t.Fatalf("expected nil opponent, got %v", opponent)
	}
}
