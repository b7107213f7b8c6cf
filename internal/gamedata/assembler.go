package gamedata

import (
	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/espn"
)

// BuildTeamProfile resolves the favorite team's identity for one fetch
// cycle from the resolved configuration and the upstream team-info payload
// (which may be nil; team info is best-effort). The profile's identifier set
// is reused for competitor matching later in the same cycle.
func BuildTeamProfile(cfg *config.Resolved, teamInfo map[string]any) *TeamProfile {
	// The team-info endpoint wraps the record in a "team" object on some
	// sports and not on others.
	team := espn.ExtractMap(teamInfo, "team")
	if len(team) == 0 {
		team = teamInfo
	}

	logos := espn.ExtractArray(team, "logos")
	if len(logos) == 0 {
		logos = espn.ExtractArray(teamInfo, "logos")
	}

	recordData, ok := team["record"]
	if !ok {
		recordData = teamInfo["record"]
	}

	return &TeamProfile{
		ID:               espn.FirstString(espn.ExtractString(team, "id"), cfg.FavoriteTeamID),
		Slug:             espn.ExtractString(team, "slug"),
		Abbreviation:     espn.ExtractString(team, "abbreviation"),
		DisplayName:      espn.FirstString(espn.ExtractString(team, "displayName"), espn.ExtractString(team, "name"), cfg.FavoriteTeamDisplayName),
		ShortDisplayName: espn.FirstString(espn.ExtractString(team, "shortDisplayName"), espn.ExtractString(team, "abbreviation"), cfg.FavoriteTeamShortDisplayName),
		Logo:             ExtractLogo(logos),
		Record:           ParseRecord(recordData),
		Identifiers:      ResolveIdentifiers(cfg, team),
	}
}

// StripForClient reduces a profile to the favorite-team summary included in
// success payloads.
func (p *TeamProfile) StripForClient() *FavoriteTeam {
	if p == nil {
		return nil
	}
	return &FavoriteTeam{
		DisplayName:      p.DisplayName,
		ShortDisplayName: p.ShortDisplayName,
		Logo:             p.Logo,
		Record:           p.Record,
	}
}

// ExtractLogo picks the primary logo href from an upstream logo list,
// preferring entries tagged "full" or "primary".
func ExtractLogo(logos []any) string {
	var first map[string]any
	for _, l := range logos {
		logo, ok := l.(map[string]any)
		if !ok {
			continue
		}
		if first == nil {
			first = logo
		}
		for _, rel := range espn.ExtractArray(logo, "rel") {
			if s := espn.Stringify(rel); s == "full" || s == "primary" {
				return espn.ExtractString(logo, "href")
			}
		}
	}
	return espn.ExtractString(first, "href")
}

// AssembleLiveGame builds the normalized live game from a schedule event,
// its detailed summary payload and the favorite-team profile. Competition,
// venue and status data prefer the summary and fall back to the event's own
// embedded competition; nil is returned when neither carries competition
// data.
func AssembleLiveGame(event, summary map[string]any, profile *TeamProfile, cfg *config.Resolved) *LiveGame {
	var eventCompetition map[string]any
	if comps := espn.ExtractArray(event, "competitions"); len(comps) > 0 {
		eventCompetition, _ = comps[0].(map[string]any)
	}

	var summaryCompetition map[string]any
	if comps := espn.ExtractArray(espn.ExtractMap(summary, "header"), "competitions"); len(comps) > 0 {
		summaryCompetition, _ = comps[0].(map[string]any)
	}

	competition := summaryCompetition
	if competition == nil {
		competition = eventCompetition
	}
	if competition == nil {
		return nil
	}

	favorite, opponent := MatchCompetitors(competition, profile.Identifiers)

	venueSource := competition
	if len(espn.ExtractMap(venueSource, "venue")) == 0 {
		venueSource = eventCompetition
	}
	venue := espn.FirstString(
		espn.ExtractString(espn.ExtractMap(venueSource, "venue"), "fullName"),
		espn.ExtractString(espn.ExtractMap(venueSource, "venue"), "displayName"),
	)

	statColumns := ColumnsForLeague(cfg.League)

	players := extractPlayerStats(
		espn.ExtractArray(espn.ExtractMap(summary, "boxscore"), "players"),
		profile,
		favorite,
		opponent,
		statColumns,
		PlayerLimit(cfg.League),
	)

	statusSource := summaryCompetition
	if statusSource == nil {
		statusSource = eventCompetition
	}
	if statusSource == nil {
		statusSource = event
	}
	statusType := espn.ExtractMap(espn.ExtractMap(statusSource, "status"), "type")
	status := espn.FirstString(
		espn.ExtractString(statusType, "detail"),
		espn.ExtractString(statusType, "shortDetail"),
		espn.ExtractString(espn.ExtractMap(espn.ExtractMap(event, "status"), "type"), "detail"),
		"Live",
	)

	return &LiveGame{
		EventID:     espn.ExtractString(event, "id"),
		Status:      status,
		StartTime:   espn.FirstString(espn.ExtractString(competition, "date"), espn.ExtractString(event, "date")),
		Venue:       venue,
		Favorite:    mapCompetitorTeam(favorite, profile),
		Opponent:    mapCompetitorTeam(opponent, nil),
		Players:     players,
		StatColumns: statColumns,
	}
}

// FormatUpcoming renders one future event from the favorite team's
// perspective. It returns nil when the event carries no competition data.
func FormatUpcoming(event map[string]any, profile *TeamProfile) *UpcomingGame {
	comps := espn.ExtractArray(event, "competitions")
	if len(comps) == 0 {
		return nil
	}
	competition, ok := comps[0].(map[string]any)
	if !ok {
		return nil
	}

	favorite, opponent := MatchCompetitors(competition, profile.Identifiers)

	opponentName := "Opponent"
	var opponentLogo string
	if opponent != nil {
		team := espn.ExtractMap(opponent, "team")
		opponentName = espn.FirstString(
			espn.ExtractString(team, "displayName"),
			espn.ExtractString(team, "shortDisplayName"),
			espn.ExtractString(team, "name"),
			"Opponent",
		)
		opponentLogo = ExtractLogo(espn.ExtractArray(team, "logos"))
	}

	venue := espn.FirstString(
		espn.ExtractString(espn.ExtractMap(competition, "venue"), "fullName"),
		espn.ExtractString(espn.ExtractMap(competition, "venue"), "displayName"),
	)

	return &UpcomingGame{
		ID:           espn.ExtractString(event, "id"),
		Date:         espn.ExtractString(event, "date"),
		Opponent:     opponentName,
		OpponentLogo: opponentLogo,
		Venue:        venue,
		IsHome:       favorite != nil && espn.ExtractString(favorite, "homeAway") == "home",
	}
}

// mapCompetitorTeam converts a competitor into the emitted team snapshot,
// filling gaps from the favorite-team profile when one is supplied.
func mapCompetitorTeam(competitor map[string]any, fallback *TeamProfile) *TeamSnapshot {
	if competitor == nil {
		if fallback == nil {
			return nil
		}
		return &TeamSnapshot{
			ID:               fallback.ID,
			DisplayName:      fallback.DisplayName,
			ShortDisplayName: fallback.ShortDisplayName,
			Score:            "0",
			Logo:             fallback.Logo,
			Record:           fallback.Record,
		}
	}

	team := espn.ExtractMap(competitor, "team")

	snapshot := &TeamSnapshot{
		ID:               espn.ExtractString(team, "id"),
		DisplayName:      espn.FirstString(espn.ExtractString(team, "displayName"), espn.ExtractString(team, "shortDisplayName"), espn.ExtractString(team, "name")),
		ShortDisplayName: espn.FirstString(espn.ExtractString(team, "shortDisplayName"), espn.ExtractString(team, "abbreviation")),
		Logo:             ExtractLogo(espn.ExtractArray(team, "logos")),
		Record:           ParseRecord(team["record"]),
	}

	snapshot.Score = "0"
	if score, ok := competitor["score"]; ok && score != nil {
		snapshot.Score = espn.Stringify(score)
	}

	if fallback != nil {
		snapshot.ID = espn.FirstString(snapshot.ID, fallback.ID)
		snapshot.DisplayName = espn.FirstString(snapshot.DisplayName, fallback.DisplayName)
		snapshot.ShortDisplayName = espn.FirstString(snapshot.ShortDisplayName, fallback.ShortDisplayName)
		snapshot.Logo = espn.FirstString(snapshot.Logo, fallback.Logo)
		if snapshot.Record == nil {
			snapshot.Record = fallback.Record
		}
	}

	return snapshot
}

// extractPlayerStats pulls per-side player lines from the box score. The
// favorite side matches on the profile's identifiers merged with the matched
// competitor's own, so a team recognized once in the schedule stays
// recognized even when the summary labels it differently. A side with no
// matching entry yields an empty list.
func extractPlayerStats(playersData []any, profile *TeamProfile, favorite, opponent map[string]any, columns []StatColumn, limit int) SidePlayers {
	if len(playersData) == 0 {
		return SidePlayers{Favorite: []Player{}, Opponent: []Player{}}
	}

	favoriteIdentifiers := Merge(profile.Identifiers, CompetitorIdentifiers(favorite))
	opponentIdentifiers := CompetitorIdentifiers(opponent)

	return SidePlayers{
		Favorite: extractSidePlayers(playersData, favoriteIdentifiers, columns, limit),
		Opponent: extractSidePlayers(playersData, opponentIdentifiers, columns, limit),
	}
}

// extractSidePlayers finds the box-score entry whose team matches the
// identifier set and extracts its athletes' stat lines. The player cap is
// applied after extraction.
func extractSidePlayers(playersData []any, identifiers IdentifierSet, columns []StatColumn, limit int) []Player {
	if len(identifiers) == 0 {
		return []Player{}
	}

	var teamEntry map[string]any
	for _, e := range playersData {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		team := espn.ExtractMap(entry, "team")
		candidates := make(IdentifierSet)
		addTeamIdentifiers(candidates, team)
		if candidates.Intersects(identifiers) {
			teamEntry = entry
			break
		}
	}
	if teamEntry == nil {
		return []Player{}
	}

	var statsEntry map[string]any
	for _, s := range espn.ExtractArray(teamEntry, "statistics") {
		entry, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if len(espn.ExtractArray(entry, "athletes")) > 0 {
			statsEntry = entry
			break
		}
	}
	if statsEntry == nil {
		return []Player{}
	}

	labels := espn.ExtractArray(statsEntry, "labels")

	var players []Player
	for _, a := range espn.ExtractArray(statsEntry, "athletes") {
		athleteEntry, ok := a.(map[string]any)
		if !ok {
			continue
		}
		statLine := MapStatLine(labels, espn.ExtractArray(athleteEntry, "stats"))
		info := espn.ExtractMap(athleteEntry, "athlete")

		players = append(players, Player{
			ID:       espn.ExtractString(info, "id"),
			Name:     espn.FirstString(espn.ExtractString(info, "displayName"), espn.ExtractString(info, "shortName"), "Unknown"),
			Position: espn.ExtractString(espn.ExtractMap(info, "position"), "abbreviation"),
			Stats:    ExtractColumns(statLine, columns),
		})
	}

	if limit > 0 && len(players) > limit {
		players = players[:limit]
	}
	if players == nil {
		players = []Player{}
	}
	return players
}
