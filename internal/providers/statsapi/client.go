package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mlb-scores-service/internal/domain/scores"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/timeutil"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	CutoffHour int
}

// Client fetches schedule, line-score and standings data from the MLB Stats
// API and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	cutoffHour int
	now        func() time.Time
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		cutoffHour: resolveCutoffHour(cfg.CutoffHour),
		now:        time.Now,
	}
}

// FetchSchedule retrieves the slate for the given date. Any transport
// failure or non-success status degrades to an empty slate so a transient
// schedule outage never blocks the pipeline.
func (c *Client) FetchSchedule(ctx context.Context, date string) []scores.Game {
	if date == "" {
		date = timeutil.ScheduleDate(c.now(), c.cutoffHour)
	}

	c.metrics.RecordFetchStart(metrics.EndpointSchedule)

	url := fmt.Sprintf("%s/schedule?sportId=%d&date=%s", c.baseURL, sportID, date)
	var payload scheduleResponse
	if err := c.getJSON(ctx, metrics.EndpointSchedule, url, &payload); err != nil {
		c.metrics.RecordFetchError(metrics.EndpointSchedule)
		logging.Warn(c.logger, "schedule fetch failed; continuing with empty slate",
			logging.FieldDate, date,
			"error", err,
		)
		return []scores.Game{}
	}

	games := flattenSchedule(payload)
	c.metrics.RecordGamesParsed(len(games))
	logging.Info(c.logger, "schedule fetched",
		logging.FieldDate, date,
		logging.FieldCount, len(games),
	)
	return games
}

// FetchLineScore retrieves the detailed box score for one game. Non-success
// statuses surface as errors identifying the status code so the caller can
// fall back per game.
func (c *Client) FetchLineScore(ctx context.Context, gameID int) (scores.LineScore, error) {
	c.metrics.RecordFetchStart(metrics.EndpointLineScore)

	url := fmt.Sprintf("%s/game/%d/linescore", c.baseURL, gameID)
	var payload linescoreResponse
	if err := c.getJSON(ctx, metrics.EndpointLineScore, url, &payload); err != nil {
		c.metrics.RecordFetchError(metrics.EndpointLineScore)
		return scores.LineScore{}, fmt.Errorf("%s: linescore fetch failed for game %d: %w", providerName, gameID, err)
	}
	return mapLineScore(payload), nil
}

// FetchStandings retrieves win-loss records for both league partitions
// concurrently and merges them. Either partition failing fails the whole
// call; no partial standings are ever returned.
func (c *Client) FetchStandings(ctx context.Context) (scores.Standings, error) {
	c.metrics.RecordFetchStart(metrics.EndpointStandings)

	parts := make([]scores.Standings, len(leagueIDs))
	g, ctx := errgroup.WithContext(ctx)
	for i, leagueID := range leagueIDs {
		i, leagueID := i, leagueID
		g.Go(func() error {
			part, err := c.fetchLeagueStandings(ctx, leagueID)
			if err != nil {
				return fmt.Errorf("%s: standings fetch failed for league %d: %w", providerName, leagueID, err)
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.metrics.RecordFetchError(metrics.EndpointStandings)
		return nil, err
	}

	merged := make(scores.Standings)
	for _, part := range parts {
		for team, record := range part {
			merged[team] = record
		}
	}
	return merged, nil
}

func (c *Client) fetchLeagueStandings(ctx context.Context, leagueID int) (scores.Standings, error) {
	url := fmt.Sprintf("%s/standings?leagueId=%d", c.baseURL, leagueID)
	var payload standingsResponse
	if err := c.getJSON(ctx, metrics.EndpointStandings, url, &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, url string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.metrics.RecordFetchStatus(endpoint, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}
