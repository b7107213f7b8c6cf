package gamedata

import (
	"strings"

	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/espn"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

// IdentifierSet is a set of normalized text tokens that collectively denote
// one team identity across the upstream API's inconsistent representations:
// ids, slugs, abbreviations, display names, aliases. Matching two teams means
// intersecting their sets.
type IdentifierSet map[string]struct{}

// NewIdentifierSet builds a set from scalar values, dropping empties.
func NewIdentifierSet(values ...any) IdentifierSet {
	set := make(IdentifierSet)
	for _, v := range values {
		set.Add(v)
	}
	return set
}

// Add inserts a value after normalization (stringified, trimmed,
// lower-cased). Nil and empty values are dropped.
func (s IdentifierSet) Add(value any) {
	normalized := strings.ToLower(strings.TrimSpace(espn.Stringify(value)))
	if normalized == "" {
		return
	}
	s[normalized] = struct{}{}
}

// Has reports whether the normalized form of value is in the set.
func (s IdentifierSet) Has(value any) bool {
	normalized := strings.ToLower(strings.TrimSpace(espn.Stringify(value)))
	if normalized == "" {
		return false
	}
	_, ok := s[normalized]
	return ok
}

// Intersects reports whether the two sets share any identifier.
func (s IdentifierSet) Intersects(other IdentifierSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for v := range small {
		if _, ok := large[v]; ok {
			return true
		}
	}
	return false
}

// Merge unions any number of sets into a new set.
func Merge(sets ...IdentifierSet) IdentifierSet {
	merged := make(IdentifierSet)
	for _, set := range sets {
		for v := range set {
			merged[v] = struct{}{}
		}
	}
	return merged
}

// addTeamIdentifiers collects every field of an upstream team record that
// can stand in for its identity. Absence of any field is fine; empty values
// are dropped by Add.
func addTeamIdentifiers(set IdentifierSet, team map[string]any) {
	for _, key := range []string{
		"abbreviation",
		"shortDisplayName",
		"displayName",
		"slug",
		"id",
		"uid",
		"name",
		"location",
		"nickname",
	} {
		set.Add(team[key])
	}

	if alternateIDs, ok := team["alternateIds"].(map[string]any); ok {
		for _, v := range alternateIDs {
			set.Add(v)
		}
	}
	if alternates, ok := team["alternateIdentifiers"].([]any); ok {
		for _, v := range alternates {
			set.Add(v)
		}
	}
}

// ResolveIdentifiers builds the favorite team's identifier set from the
// resolved configuration, the upstream team record (if fetched), and the
// league's configured aliases. The set always contains at least the
// configured team id.
func ResolveIdentifiers(cfg *config.Resolved, upstreamTeam map[string]any) IdentifierSet {
	set := make(IdentifierSet)

	set.Add(cfg.FavoriteTeamID)
	set.Add(cfg.FavoriteTeamDisplayName)
	set.Add(cfg.FavoriteTeamShortDisplayName)

	for _, key := range []string{"id", "slug", "abbreviation", "displayName", "shortDisplayName"} {
		set.Add(cfg.RawTeam[key])
	}

	league, ok := leagues.Get(string(cfg.League))
	if ok {
		set.Add(league.DefaultTeam.ID)
		set.Add(league.DefaultTeam.DisplayName)
		set.Add(league.DefaultTeam.ShortDisplayName)
	}

	addTeamIdentifiers(set, upstreamTeam)

	for _, alias := range leagues.Aliases(cfg.League, cfg.FavoriteTeamID) {
		set.Add(alias)
	}

	return set
}

// CompetitorIdentifiers builds the identifier set for one competitor from
// its embedded team record.
func CompetitorIdentifiers(competitor map[string]any) IdentifierSet {
	set := make(IdentifierSet)
	if competitor == nil {
		return set
	}

	set.Add(competitor["id"])
	set.Add(competitor["uid"])
	addTeamIdentifiers(set, espn.ExtractMap(competitor, "team"))

	return set
}

// MatchCompetitors picks the favorite and opponent out of a competition's
// competitor list. The favorite is the first competitor whose identifiers
// intersect the given set; failing that, the competitor flagged home;
// failing that, the first competitor. The opponent is the first competitor
// that is not the favorite. Both are nil only when the list is empty.
//
// The home/first fallback is deliberate best-effort behavior: it keeps a
// favorite/opponent pairing available even when upstream naming drifts far
// enough that no identifier overlaps, at the cost of occasionally
// mis-assigning the sides.
func MatchCompetitors(competition map[string]any, identifiers IdentifierSet) (favorite, opponent map[string]any) {
	competitors := espn.ExtractArray(competition, "competitors")
	if len(competitors) == 0 {
		return nil, nil
	}

	favoriteIdx := -1
	for i, c := range competitors {
		comp, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if CompetitorIdentifiers(comp).Intersects(identifiers) {
			favoriteIdx = i
			break
		}
	}
	if favoriteIdx == -1 {
		for i, c := range competitors {
			comp, ok := c.(map[string]any)
			if !ok {
				continue
			}
			if espn.ExtractString(comp, "homeAway") == "home" {
				favoriteIdx = i
				break
			}
		}
	}
	if favoriteIdx == -1 {
		favoriteIdx = 0
	}

	favorite, _ = competitors[favoriteIdx].(map[string]any)
	for i, c := range competitors {
		if i == favoriteIdx {
			continue
		}
		if comp, ok := c.(map[string]any); ok {
			opponent = comp
			break
		}
	}

	return favorite, opponent
}
