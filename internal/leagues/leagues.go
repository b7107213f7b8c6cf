package leagues

import "strings"

// Key identifies a supported league.
type Key string

const (
	NCAAMBB Key = "ncaa_mbb"
	NBA     Key = "nba"
	NHL     Key = "nhl"
	WNBA    Key = "wnba"
)

// Team is the static identity of a team inside the catalog.
type Team struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}

// IsZero reports whether the team carries no identity at all.
func (t Team) IsZero() bool {
	return t.ID == "" && t.DisplayName == "" && t.ShortDisplayName == ""
}

// League describes one supported league: its upstream sport path, the team
// used when configuration names none, and optional free-text aliases keyed by
// team id. The catalog is immutable and defined at process start.
type League struct {
	Key         Key
	Name        string
	SportPath   string
	DefaultTeam Team
	Aliases     map[string][]string
}

var catalog = []League{
	{
		Key:       NCAAMBB,
		Name:      "NCAA Men's Basketball",
		SportPath: "basketball/mens-college-basketball",
		DefaultTeam: Team{
			ID:               "282",
			DisplayName:      "Indiana State Sycamores",
			ShortDisplayName: "Indiana State",
		},
	},
	{
		Key:       NBA,
		Name:      "NBA",
		SportPath: "basketball/nba",
		DefaultTeam: Team{
			ID:               "ind",
			DisplayName:      "Indiana Pacers",
			ShortDisplayName: "Pacers",
		},
	},
	{
		Key:       NHL,
		Name:      "NHL",
		SportPath: "hockey/nhl",
		DefaultTeam: Team{
			ID:               "chi",
			DisplayName:      "Chicago Blackhawks",
			ShortDisplayName: "Blackhawks",
		},
	},
	{
		Key:       WNBA,
		Name:      "WNBA",
		SportPath: "basketball/wnba",
		DefaultTeam: Team{
			ID:               "ind",
			DisplayName:      "Indiana Fever",
			ShortDisplayName: "Indiana Fever",
		},
		Aliases: map[string][]string{
			"lv": {"lva", "las vegas aces", "aces"},
			"ny": {"nya", "nyl", "new york liberty"},
			"la": {"la", "lasparks", "los angeles sparks"},
		},
	},
}

var presets = map[Key]map[string]Team{
	NCAAMBB: {
		"indiana_state":  {ID: "282", DisplayName: "Indiana State Sycamores", ShortDisplayName: "Indiana State"},
		"purdue":         {ID: "2509", DisplayName: "Purdue Boilermakers", ShortDisplayName: "Purdue"},
		"kansas":         {ID: "2305", DisplayName: "Kansas Jayhawks", ShortDisplayName: "Kansas"},
		"duke":           {ID: "150", DisplayName: "Duke Blue Devils", ShortDisplayName: "Duke"},
		"north_carolina": {ID: "153", DisplayName: "North Carolina Tar Heels", ShortDisplayName: "North Carolina"},
		"gonzaga":        {ID: "2250", DisplayName: "Gonzaga Bulldogs", ShortDisplayName: "Gonzaga"},
		"uconn":          {ID: "41", DisplayName: "UConn Huskies", ShortDisplayName: "UConn"},
	},
	NBA: {
		"indiana_pacers":        {ID: "ind", DisplayName: "Indiana Pacers", ShortDisplayName: "Pacers"},
		"boston_celtics":        {ID: "bos", DisplayName: "Boston Celtics", ShortDisplayName: "Celtics"},
		"denver_nuggets":        {ID: "den", DisplayName: "Denver Nuggets", ShortDisplayName: "Nuggets"},
		"los_angeles_lakers":    {ID: "lal", DisplayName: "Los Angeles Lakers", ShortDisplayName: "Lakers"},
		"golden_state_warriors": {ID: "gs", DisplayName: "Golden State Warriors", ShortDisplayName: "Warriors"},
		"miami_heat":            {ID: "mia", DisplayName: "Miami Heat", ShortDisplayName: "Heat"},
		"new_york_knicks":       {ID: "ny", DisplayName: "New York Knicks", ShortDisplayName: "Knicks"},
	},
	NHL: {
		"chicago_blackhawks":   {ID: "chi", DisplayName: "Chicago Blackhawks", ShortDisplayName: "Blackhawks"},
		"detroit_red_wings":    {ID: "det", DisplayName: "Detroit Red Wings", ShortDisplayName: "Red Wings"},
		"colorado_avalanche":   {ID: "col", DisplayName: "Colorado Avalanche", ShortDisplayName: "Avalanche"},
		"toronto_maple_leafs":  {ID: "tor", DisplayName: "Toronto Maple Leafs", ShortDisplayName: "Maple Leafs"},
		"boston_bruins":        {ID: "bos", DisplayName: "Boston Bruins", ShortDisplayName: "Bruins"},
		"edmonton_oilers":      {ID: "edm", DisplayName: "Edmonton Oilers", ShortDisplayName: "Oilers"},
		"vegas_golden_knights": {ID: "vgk", DisplayName: "Vegas Golden Knights", ShortDisplayName: "Golden Knights"},
	},
	WNBA: {
		"indiana_fever":      {ID: "ind", DisplayName: "Indiana Fever", ShortDisplayName: "Indiana Fever"},
		"atlanta_dream":      {ID: "atl", DisplayName: "Atlanta Dream", ShortDisplayName: "Dream"},
		"chicago_sky":        {ID: "chi", DisplayName: "Chicago Sky", ShortDisplayName: "Sky"},
		"connecticut_sun":    {ID: "conn", DisplayName: "Connecticut Sun", ShortDisplayName: "Sun"},
		"dallas_wings":       {ID: "dal", DisplayName: "Dallas Wings", ShortDisplayName: "Wings"},
		"las_vegas_aces":     {ID: "lv", DisplayName: "Las Vegas Aces", ShortDisplayName: "Aces"},
		"los_angeles_sparks": {ID: "la", DisplayName: "Los Angeles Sparks", ShortDisplayName: "Sparks"},
		"minnesota_lynx":     {ID: "min", DisplayName: "Minnesota Lynx", ShortDisplayName: "Lynx"},
		"new_york_liberty":   {ID: "ny", DisplayName: "New York Liberty", ShortDisplayName: "Liberty"},
		"phoenix_mercury":    {ID: "phx", DisplayName: "Phoenix Mercury", ShortDisplayName: "Mercury"},
		"seattle_storm":      {ID: "sea", DisplayName: "Seattle Storm", ShortDisplayName: "Storm"},
		"washington_mystics": {ID: "wsh", DisplayName: "Washington Mystics", ShortDisplayName: "Mystics"},
	},
}

// All returns the supported leagues in catalog order.
func All() []League {
	out := make([]League, len(catalog))
	copy(out, catalog)
	return out
}

// Keys returns the supported league keys in catalog order.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for _, l := range catalog {
		keys = append(keys, l.Key)
	}
	return keys
}

// Get looks up a league by key (case-insensitive).
func Get(key string) (League, bool) {
	normalized := Key(strings.ToLower(strings.TrimSpace(key)))
	for _, l := range catalog {
		if l.Key == normalized {
			return l, true
		}
	}
	return League{}, false
}

// IsSupported reports whether key names a league in the catalog.
func IsSupported(key string) bool {
	_, ok := Get(key)
	return ok
}

// Aliases returns the configured free-text aliases for a team id in a league.
func Aliases(league Key, teamID string) []string {
	l, ok := Get(string(league))
	if !ok || l.Aliases == nil {
		return nil
	}
	return l.Aliases[strings.ToLower(teamID)]
}

// NormalizePresetKey collapses a free-form preset name onto the catalog key
// form: lower-cased, runs of non-alphanumerics become a single underscore,
// leading and trailing underscores stripped. "Indiana Fever" -> "indiana_fever".
func NormalizePresetKey(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	lastUnderscore := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// ResolvePreset resolves a free-form preset key against a league's preset
// table. It returns the normalized key and the preset team, or ok=false when
// the preset is unknown or empty.
func ResolvePreset(league Key, presetKey string) (string, Team, bool) {
	if presetKey == "" {
		return "", Team{}, false
	}
	normalized := NormalizePresetKey(presetKey)
	table, ok := presets[league]
	if !ok {
		return "", Team{}, false
	}
	team, ok := table[normalized]
	if !ok {
		return "", Team{}, false
	}
	return normalized, team, true
}

// IsBasketball reports whether the league plays basketball. Basketball
// leagues show a tighter live-stats player list than other sports.
func IsBasketball(league Key) bool {
	switch league {
	case NBA, WNBA, NCAAMBB:
		return true
	}
	return false
}
