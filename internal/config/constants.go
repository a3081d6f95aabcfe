package config

import "time"

const (
	envLeagueID     = "LEAGUE_ID"
	envScoresBucket = "SCORES_BUCKET"
	envDailyTable   = "DAILY_TABLE"
	envRegion       = "AWS_REGION"
	envCutoffHour   = "SCHEDULE_CUTOFF_HOUR"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envDataDir      = "SCORES_DATA_DIR"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Early-morning reference-zone hour before which the previous day's
	// slate is still fetched (games running past midnight).
	defaultCutoffHour = 5
	// Cadence for the local runner only; deployed entrypoints are scheduled
	// by the hosting platform.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultProvider     = "statsapi"
	defaultDataDir      = "data"
	defaultMetricsPort  = "9090"
)
