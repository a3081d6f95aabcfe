package providers

import (
	"context"

	"mlb-scores-service/internal/domain/scores"
)

// ScheduleProvider fetches the slate of games for a date. The date, when
// provided, is a YYYY-MM-DD string; an empty date means "today" in the
// provider's reference timezone. Implementations absorb transport failures
// and return an empty slate rather than an error: callers must treat an
// empty result as "no data available", never as "no games today".
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) []scores.Game
}

// LineScoreProvider fetches the detailed box score for one game. Unlike the
// schedule, failures here surface as errors so callers can fall back per game.
type LineScoreProvider interface {
	FetchLineScore(ctx context.Context, gameID int) (scores.LineScore, error)
}

// StandingsProvider fetches season win-loss records for every team. Either
// league partition failing fails the whole call; no partial map is returned.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) (scores.Standings, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	LineScoreProvider
	StandingsProvider
}
