package config

import "time"

const (
	envStatsAPIBaseURL = "STATSAPI_BASE_URL"
	envStatsAPITimeout = "STATSAPI_TIMEOUT"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
	defaultStatsAPITimeout = 10 * Duration(time.Second)
)

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL string
	Timeout Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		Timeout: durationEnvOrDefault(envStatsAPITimeout, defaultStatsAPITimeout),
	}
}
