package gamedata

// Record is a team's win/loss record. Wins or losses may be unknown
// individually; a record with neither is never produced (ParseRecord returns
// nil instead).
type Record struct {
	Wins    *int   `json:"wins"`
	Losses  *int   `json:"losses"`
	Summary string `json:"summary"`
}

// StatColumn describes how one output statistic is pulled from an upstream
// box-score label. Sources are tried in priority order; the first label
// present in the statistic line wins.
type StatColumn struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Sources []string `json:"sources,omitempty"`
}

// TeamSnapshot is one side of a live game as emitted to collaborators.
type TeamSnapshot struct {
	ID               string  `json:"id"`
	DisplayName      string  `json:"displayName"`
	ShortDisplayName string  `json:"shortDisplayName"`
	Score            string  `json:"score"`
	Logo             string  `json:"logo"`
	Record           *Record `json:"record"`
}

// Player is one athlete's extracted statistic line, keyed by StatColumn key.
type Player struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Position string            `json:"position,omitempty"`
	Stats    map[string]string `json:"stats"`
}

// SidePlayers holds the per-side player lists of a live game. A side with no
// matching box-score entry has an empty list, which collaborators render as
// "stats not available" rather than an error.
type SidePlayers struct {
	Favorite []Player `json:"favorite"`
	Opponent []Player `json:"opponent"`
}

// LiveGame is the normalized in-progress game for the favorite team.
type LiveGame struct {
	EventID     string        `json:"eventId"`
	Status      string        `json:"status"`
	StartTime   string        `json:"startTime"`
	Venue       string        `json:"venue"`
	Favorite    *TeamSnapshot `json:"favorite"`
	Opponent    *TeamSnapshot `json:"opponent"`
	Players     SidePlayers   `json:"players"`
	StatColumns []StatColumn  `json:"statColumns"`
}

// UpcomingGame is one future scheduled game, seen from the favorite team's
// perspective.
type UpcomingGame struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Opponent     string `json:"opponent"`
	OpponentLogo string `json:"opponentLogo"`
	Venue        string `json:"venue"`
	IsHome       bool   `json:"isHome"`
}

// FavoriteTeam is the stripped favorite-team summary included in every
// success payload.
type FavoriteTeam struct {
	DisplayName      string  `json:"displayName"`
	ShortDisplayName string  `json:"shortDisplayName"`
	Logo             string  `json:"logo"`
	Record           *Record `json:"record"`
}

// Payload is the success output of one fetch cycle: at most one live game
// and a bounded, date-ordered list of upcoming games.
type Payload struct {
	FavoriteTeam  *FavoriteTeam  `json:"favoriteTeam"`
	LiveGame      *LiveGame      `json:"liveGame"`
	UpcomingGames []UpcomingGame `json:"upcomingGames"`
}

// ErrorPayload is the failure output of one fetch cycle. It is the only
// other shape a cycle can produce.
type ErrorPayload struct {
	Message string `json:"message"`
}

// TeamProfile is the resolved identity of the configured favorite team for
// one fetch cycle. Its identifier set is reused for competitor matching
// later in the same cycle; it is never persisted.
type TeamProfile struct {
	ID               string
	Slug             string
	Abbreviation     string
	DisplayName      string
	ShortDisplayName string
	Logo             string
	Record           *Record
	Identifiers      IdentifierSet
}
