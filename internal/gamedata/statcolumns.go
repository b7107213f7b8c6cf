package gamedata

import (
	"github.com/pcheek13/MMM-LiveStats/internal/espn"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

// Player-list caps applied after stat extraction. The cap bounds which
// players are shown, not which are scored.
const (
	basketballPlayerLimit = 8
	defaultPlayerLimit    = 10
)

// ColumnsForLeague returns the built-in stat-column schema for a league,
// used when the live event does not supply its own.
func ColumnsForLeague(league leagues.Key) []StatColumn {
	if league == leagues.NHL {
		return []StatColumn{
			{Key: "goals", Label: "G", Sources: []string{"G", "Goals"}},
			{Key: "assists", Label: "A", Sources: []string{"A", "Assists"}},
			{Key: "points", Label: "P", Sources: []string{"P", "Points"}},
			{Key: "shots", Label: "SOG", Sources: []string{"SOG", "Shots", "Shots on Goal"}},
			{Key: "pim", Label: "PIM", Sources: []string{"PIM", "Penalty Minutes"}},
		}
	}

	return []StatColumn{
		{Key: "points", Label: "PTS", Sources: []string{"PTS", "Points"}},
		{Key: "rebounds", Label: "REB", Sources: []string{"REB", "Rebounds"}},
		{Key: "assists", Label: "AST", Sources: []string{"AST", "Assists"}},
		{Key: "steals", Label: "STL", Sources: []string{"STL", "Steals"}},
		{Key: "fouls", Label: "PF", Sources: []string{"PF", "Fouls", "Personal Fouls"}},
	}
}

// PlayerLimit returns how many players of one side are surfaced for a
// league: basketball rotations are short, other sports dress more skaters.
func PlayerLimit(league leagues.Key) int {
	if leagues.IsBasketball(league) {
		return basketballPlayerLimit
	}
	return defaultPlayerLimit
}

// MapStatLine zips a box score's label list with one athlete's stat values
// into a label-keyed line. Extra labels or values are ignored.
func MapStatLine(labels []any, stats []any) map[string]any {
	line := make(map[string]any, len(labels))
	for i, label := range labels {
		key := espn.Stringify(label)
		if key == "" || i >= len(stats) {
			continue
		}
		line[key] = stats[i]
	}
	return line
}

// ResolveStatValue tries a column's candidate source labels in priority
// order against a statistic line and returns the first present, non-null
// value as a string, or "" when no candidate is present. Label matching is
// exact: the upstream box score decides its own casing.
func ResolveStatValue(statLine map[string]any, sources []string) string {
	for _, source := range sources {
		if v, ok := statLine[source]; ok && v != nil {
			return espn.Stringify(v)
		}
	}
	return ""
}

// ExtractColumns applies a schema to one statistic line, producing the
// per-column values for a player. Columns with an empty source list fall
// back to their label. Running it twice over the same line yields identical
// output.
func ExtractColumns(statLine map[string]any, columns []StatColumn) map[string]string {
	stats := make(map[string]string, len(columns))
	for _, column := range columns {
		sources := column.Sources
		if len(sources) == 0 {
			sources = []string{column.Label}
		}
		stats[column.Key] = ResolveStatValue(statLine, sources)
	}
	return stats
}
