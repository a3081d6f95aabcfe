package config

import "os"

// Config holds runtime configuration for the pipeline.
type Config struct {
	LeagueID     string
	ScoresBucket string
	DailyTable   string
	Region       string
	CutoffHour   int
	PollInterval Duration
	Provider     string
	DataDir      string
	StatsAPI     StatsAPIConfig
	Metrics      MetricsConfig
}

// MissingEnvError reports a required environment variable that was not set.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variable " + e.Key
}

// Load reads configuration from environment variables and validates the
// storage identifiers eagerly, before any fetch or write is attempted.
func Load() (Config, error) {
	cfg := load()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadLocal reads configuration for the local runner, which persists to the
// filesystem and therefore has no required storage identifiers.
func LoadLocal() Config {
	return load()
}

func load() Config {
	return Config{
		LeagueID:     envOrDefault(envLeagueID, ""),
		ScoresBucket: envOrDefault(envScoresBucket, ""),
		DailyTable:   envOrDefault(envDailyTable, ""),
		Region:       envOrDefault(envRegion, ""),
		CutoffHour:   cutoffHourEnvOrDefault(envCutoffHour, defaultCutoffHour),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		DataDir:      envOrDefault(envDataDir, defaultDataDir),
		StatsAPI:     loadStatsAPI(),
		Metrics:      loadMetrics(),
	}
}

// Validate reports the first missing required identifier, if any.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{envLeagueID, c.LeagueID},
		{envScoresBucket, c.ScoresBucket},
		{envDailyTable, c.DailyTable},
	}
	for _, req := range required {
		if req.value == "" {
			return &MissingEnvError{Key: req.key}
		}
	}
	return nil
}

func cutoffHourEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val := intEnvOrDefault(key, defaultValue)
	if val > 23 {
		return defaultValue
	}
	return val
}
