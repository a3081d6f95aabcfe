package aggregator

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"mlb-scores-service/internal/domain/scores"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/providers"
)

// outcome names the three ways one game's scores can be resolved.
type outcome int

const (
	// outcomeLineScore: the detailed box score was fetched.
	outcomeLineScore outcome = iota
	// outcomeFallback: the line-score fetch failed and the schedule's
	// embedded scores were used instead (hits and errors unknown).
	outcomeFallback
	// outcomeSkipped: no usable data for this game this cycle.
	outcomeSkipped
)

// Aggregator merges schedule, line-score and standings data into the
// per-team snapshot persisted each cycle.
type Aggregator struct {
	provider providers.DataProvider
	logger   *slog.Logger
}

// New constructs an Aggregator.
func New(provider providers.DataProvider, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		provider: provider,
		logger:   logger,
	}
}

// Aggregate fetches the slate for the given date (empty means today) and
// builds the snapshot. Schedule and standings are fetched concurrently; a
// standings failure fails the whole cycle since no partial records are safe
// to publish.
func (a *Aggregator) Aggregate(ctx context.Context, date string) (scores.Snapshot, error) {
	var (
		games     []scores.Game
		standings scores.Standings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games = a.provider.FetchSchedule(gctx, date)
		return nil
	})
	g.Go(func() error {
		var err error
		standings, err = a.provider.FetchStandings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return a.build(ctx, games, standings), nil
}

// AggregateGames builds the snapshot for an already-fetched slate, fetching
// only standings. Used by the gated cycle, which needs the slate itself for
// its decision.
func (a *Aggregator) AggregateGames(ctx context.Context, games []scores.Game) (scores.Snapshot, error) {
	standings, err := a.provider.FetchStandings(ctx)
	if err != nil {
		return nil, err
	}
	return a.build(ctx, games, standings), nil
}

func (a *Aggregator) build(ctx context.Context, games []scores.Game, standings scores.Standings) scores.Snapshot {
	snapshot := make(scores.Snapshot, len(games)*2)

	var fromLine, fromFallback, skipped int
	for _, game := range games {
		switch a.resolve(ctx, game, standings, snapshot) {
		case outcomeLineScore:
			fromLine++
		case outcomeFallback:
			fromFallback++
		case outcomeSkipped:
			skipped++
		}
	}

	logging.Info(a.logger, "snapshot built",
		logging.FieldCount, len(snapshot),
		"from_linescore", fromLine,
		"from_fallback", fromFallback,
		"skipped", skipped,
	)
	return snapshot
}

// resolve produces ScoreDetail entries for one game's teams. A line-score
// failure is isolated to this game: the fallback uses the schedule's
// embedded scores when both sides carry one, otherwise the game's teams are
// omitted this cycle. The record default differs between the two paths
// ("0-0" vs empty string); both literals are preserved as published.
func (a *Aggregator) resolve(ctx context.Context, game scores.Game, standings scores.Standings, snapshot scores.Snapshot) outcome {
	line, err := a.provider.FetchLineScore(ctx, game.ID)
	if err == nil {
		snapshot[game.AwayTeam] = scores.ScoreDetail{
			Runs:   line.Away.Runs,
			Hits:   line.Away.Hits,
			Errors: line.Away.Errors,
			Status: game.State,
			Record: standings.Record(game.AwayTeam, "0-0"),
		}
		snapshot[game.HomeTeam] = scores.ScoreDetail{
			Runs:   line.Home.Runs,
			Hits:   line.Home.Hits,
			Errors: line.Home.Errors,
			Status: game.State,
			Record: standings.Record(game.HomeTeam, "0-0"),
		}
		return outcomeLineScore
	}

	logging.Warn(a.logger, "linescore fetch failed; falling back to schedule scores",
		logging.FieldGameID, game.ID,
		"error", err,
	)

	if !game.HasEmbeddedScores() {
		return outcomeSkipped
	}

	snapshot[game.AwayTeam] = scores.ScoreDetail{
		Runs:   *game.AwayScore,
		Status: game.State,
		Record: standings.Record(game.AwayTeam, ""),
	}
	snapshot[game.HomeTeam] = scores.ScoreDetail{
		Runs:   *game.HomeScore,
		Status: game.State,
		Record: standings.Record(game.HomeTeam, ""),
	}
	return outcomeFallback
}
