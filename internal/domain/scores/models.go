package scores

// GameState mirrors the coarse lifecycle states reported by the stats API.
type GameState string

const (
	StatePreview GameState = "Preview"
	StateLive    GameState = "Live"
	StateFinal   GameState = "Final"
)

// Game is the normalized shape of one scheduled game. Embedded scores are
// pointers because the schedule reports null until a game has started.
type Game struct {
	ID            int       `json:"id"`
	State         GameState `json:"state"`
	DetailedState string    `json:"detailedState"`
	AwayTeam      string    `json:"awayTeam"`
	AwayScore     *int      `json:"awayScore"`
	HomeTeam      string    `json:"homeTeam"`
	HomeScore     *int      `json:"homeScore"`
}

// HasEmbeddedScores reports whether the schedule carried a score for both sides.
func (g Game) HasEmbeddedScores() bool {
	return g.AwayScore != nil && g.HomeScore != nil
}

// SideLine holds one side's box-score totals.
type SideLine struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// LineScore is the detailed box score for a single game.
type LineScore struct {
	Away  SideLine  `json:"away"`
	Home  SideLine  `json:"home"`
	State GameState `json:"state"`
}

// ScoreDetail is the per-team result record persisted each cycle.
type ScoreDetail struct {
	Runs   int       `json:"runs"`
	Hits   int       `json:"hits"`
	Errors int       `json:"errors"`
	Status GameState `json:"status"`
	Record string    `json:"record"`
}

// Snapshot maps team name to its ScoreDetail for one cycle. It is rebuilt
// from scratch every cycle and never merged with a prior one.
type Snapshot map[string]ScoreDetail

// Standings maps team name to a season win-loss string such as "52-32".
type Standings map[string]string

// Record returns the win-loss string for a team, or fallback when the team
// is absent from the standings.
func (s Standings) Record(team, fallback string) string {
	if rec, ok := s[team]; ok {
		return rec
	}
	return fallback
}
