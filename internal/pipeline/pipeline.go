package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mlb-scores-service/internal/aggregator"
	"mlb-scores-service/internal/domain/scores"
	"mlb-scores-service/internal/gate"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/storage"
	"mlb-scores-service/internal/timeutil"
)

// Config carries the pipeline's collaborators. Provider, Sink and LeagueID
// are required; the rest default sensibly.
type Config struct {
	Provider   providers.DataProvider
	Sink       storage.Sink
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	LeagueID   string
	CutoffHour int
	Now        func() time.Time
}

// Pipeline runs one ingestion cycle per invocation: fetch, aggregate,
// persist. The three Run methods differ only in date selection and in which
// writes they perform.
type Pipeline struct {
	provider   providers.DataProvider
	agg        *aggregator.Aggregator
	sink       storage.Sink
	logger     *slog.Logger
	metrics    *metrics.Recorder
	leagueID   string
	cutoffHour int
	now        func() time.Time
}

// New constructs a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	cutoff := cfg.CutoffHour
	if cutoff < 0 {
		cutoff = timeutil.DefaultCutoffHour
	}
	return &Pipeline{
		provider:   cfg.Provider,
		agg:        aggregator.New(cfg.Provider, cfg.Logger),
		sink:       cfg.Sink,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		leagueID:   cfg.LeagueID,
		cutoffHour: cutoff,
		now:        now,
	}
}

// RunLive aggregates today's slate and unconditionally refreshes the latest
// view. Failures are reported in the result body rather than as an error so
// the platform response shape stays stable.
func (p *Pipeline) RunLive(ctx context.Context) Result {
	start := time.Now()

	snap, err := p.agg.Aggregate(ctx, "")
	if err != nil {
		logging.Error(p.logger, "live cycle aggregation failed", err)
		p.metrics.RecordCycle(time.Since(start), err)
		return failureResult(ErrorCategoryFetch)
	}

	if err := p.sink.StoreLatest(ctx, p.leagueID, snap); err != nil {
		logging.Error(p.logger, "live cycle store failed", err,
			logging.FieldLeague, p.leagueID,
		)
		p.metrics.RecordCycle(time.Since(start), err)
		return failureResult(ErrorCategoryStore)
	}

	logging.Info(p.logger, "live cycle complete",
		logging.FieldLeague, p.leagueID,
		logging.FieldCount, len(snap),
	)
	p.metrics.RecordCycle(time.Since(start), nil)
	return successResult()
}

// RunDaily aggregates yesterday's completed slate and writes the full set:
// latest view, dated snapshot, and archive row. Any failure propagates so
// the invocation is marked failed and retried by the platform.
func (p *Pipeline) RunDaily(ctx context.Context) error {
	start := time.Now()
	date := timeutil.Yesterday(p.now())

	snap, err := p.agg.Aggregate(ctx, date)
	if err != nil {
		p.metrics.RecordCycle(time.Since(start), err)
		return fmt.Errorf("daily cycle for %s: %w", date, err)
	}

	err = p.persist(ctx, date, snap, gate.Action{WriteLatest: true, WriteSnapshot: true, WriteArchive: true})
	p.metrics.RecordCycle(time.Since(start), err)
	if err != nil {
		return fmt.Errorf("daily cycle for %s: %w", date, err)
	}

	logging.Info(p.logger, "daily cycle complete",
		logging.FieldLeague, p.leagueID,
		logging.FieldDate, date,
		logging.FieldCount, len(snap),
	)
	return nil
}

// RunGated fetches the slate once, derives the write set from its aggregate
// state, and performs only those writes. A slate with nothing started (or no
// games at all) produces no writes and no error.
func (p *Pipeline) RunGated(ctx context.Context) error {
	start := time.Now()
	date := timeutil.ScheduleDate(p.now(), p.cutoffHour)

	games := p.provider.FetchSchedule(ctx, date)
	action := gate.Decide(games)
	if action.None() {
		logging.Info(p.logger, "gated cycle: nothing to publish",
			logging.FieldDate, date,
			logging.FieldCount, len(games),
		)
		p.metrics.RecordCycle(time.Since(start), nil)
		return nil
	}

	snap, err := p.agg.AggregateGames(ctx, games)
	if err != nil {
		p.metrics.RecordCycle(time.Since(start), err)
		return fmt.Errorf("gated cycle for %s: %w", date, err)
	}

	err = p.persist(ctx, date, snap, action)
	p.metrics.RecordCycle(time.Since(start), err)
	if err != nil {
		return fmt.Errorf("gated cycle for %s: %w", date, err)
	}

	logging.Info(p.logger, "gated cycle complete",
		logging.FieldLeague, p.leagueID,
		logging.FieldDate, date,
		logging.FieldCount, len(snap),
		"wrote_snapshot", action.WriteSnapshot,
		"wrote_archive", action.WriteArchive,
	)
	return nil
}

// persist performs the writes the action selects. All selected targets are
// attempted; failures are joined so one bad target never hides another.
func (p *Pipeline) persist(ctx context.Context, date string, snap scores.Snapshot, action gate.Action) error {
	var errs []error
	if action.WriteLatest {
		if err := p.sink.StoreLatest(ctx, p.leagueID, snap); err != nil {
			errs = append(errs, err)
		}
	}
	if action.WriteSnapshot {
		if err := p.sink.StoreSnapshot(ctx, p.leagueID, date, snap); err != nil {
			errs = append(errs, err)
		}
	}
	if action.WriteArchive {
		if err := p.sink.PutDailySnapshot(ctx, p.leagueID, date, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
