package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/pipeline"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/providers/fixture"
	"mlb-scores-service/internal/providers/statsapi"
	"mlb-scores-service/internal/storage"
)

// App bundles the wired collaborators for one deployable.
type App struct {
	Config         config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	MetricsHandler http.Handler
	Pipeline       *pipeline.Pipeline

	shutdown func(context.Context) error
}

// New wires a pipeline backed by the AWS sinks, for the Lambda entrypoints.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	recorder, handler, shutdown, err := metrics.Setup(ctx, telemetryConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("app: telemetry setup: %w", err)
	}

	var awsOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		awsOpts = append(awsOpts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOpts...)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("app: aws config: %w", err)
	}

	objects := storage.NewObjectStore(s3.NewFromConfig(awsCfg), cfg.ScoresBucket, recorder)
	archive := storage.NewArchiveTable(dynamodb.NewFromConfig(awsCfg), cfg.DailyTable, recorder)

	return build(cfg, logger, recorder, handler, shutdown, storage.Compose(objects, archive)), nil
}

// NewLocal wires a pipeline backed by the filesystem sink, for cmd/local.
func NewLocal(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	recorder, handler, shutdown, err := metrics.Setup(ctx, telemetryConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("app: telemetry setup: %w", err)
	}
	return build(cfg, logger, recorder, handler, shutdown, storage.NewFSStore(cfg.DataDir)), nil
}

func build(
	cfg config.Config,
	logger *slog.Logger,
	recorder *metrics.Recorder,
	handler http.Handler,
	shutdown func(context.Context) error,
	sink storage.Sink,
) *App {
	provider := buildProvider(cfg, logger, recorder)
	logging.Info(logger, "pipeline wired",
		logging.FieldProvider, cfg.Provider,
		logging.FieldLeague, cfg.LeagueID,
	)
	return &App{
		Config:         cfg,
		Logger:         logger,
		Metrics:        recorder,
		MetricsHandler: handler,
		Pipeline: pipeline.New(pipeline.Config{
			Provider:   provider,
			Sink:       sink,
			Logger:     logger,
			Metrics:    recorder,
			LeagueID:   cfg.LeagueID,
			CutoffHour: cfg.CutoffHour,
		}),
		shutdown: shutdown,
	}
}

func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	default:
		return statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.StatsAPI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.StatsAPI.Timeout},
			Logger:     logger,
			Metrics:    recorder,
			CutoffHour: cfg.CutoffHour,
		})
	}
}

func telemetryConfig(cfg config.Config) metrics.TelemetryConfig {
	return metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}
}

// Shutdown flushes telemetry. Safe to call on a nil App.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.shutdown == nil {
		return nil
	}
	return a.shutdown(ctx)
}
