package pipeline

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlb-scores-service/internal/domain/scores"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/testutil"
)

// fixedNow is 2025-07-04 02:00 UTC, which is 2025-07-03 21:00 in the fixed
// reference zone: after the cutoff, so the slate date is 2025-07-03.
var fixedNow = time.Date(2025, 7, 4, 2, 0, 0, 0, time.UTC)

func newTestPipeline(provider *testutil.Provider, sink *testutil.Sink) *Pipeline {
	return New(Config{
		Provider: provider,
		Sink:     sink,
		Logger:   testutil.DiscardLogger(),
		Metrics:  metrics.NewRecorder(),
		LeagueID: "mlb",
		Now:      func() time.Time { return fixedNow },
	})
}

func liveProvider() *testutil.Provider {
	return &testutil.Provider{
		ScheduleFn: func(context.Context, string) []scores.Game {
			return []scores.Game{
				testutil.Game(1001, scores.StateLive, "Atlanta Braves", 5, "New York Mets", 3),
			}
		},
		LineScoreFn: func(_ context.Context, gameID int) (scores.LineScore, error) {
			return scores.LineScore{
				Away:  scores.SideLine{Runs: 5, Hits: 9, Errors: 0},
				Home:  scores.SideLine{Runs: 3, Hits: 7, Errors: 1},
				State: scores.StateLive,
			}, nil
		},
		StandingsFn: func(context.Context) (scores.Standings, error) {
			return scores.Standings{
				"Atlanta Braves": "52-30",
				"New York Mets":  "45-37",
			}, nil
		},
	}
}

func TestRunLiveStoresLatest(t *testing.T) {
	provider := liveProvider()
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	result := p.RunLive(context.Background())
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.True(t, result.Body.Success)
	assert.Empty(t, result.Body.Error)

	writes := sink.LatestWrites()
	require.Len(t, writes, 1)
	assert.Equal(t, "mlb", writes[0].LeagueID)
	assert.Equal(t, scores.ScoreDetail{
		Runs: 5, Hits: 9, Errors: 0,
		Status: scores.StateLive,
		Record: "52-30",
	}, writes[0].Snapshot["Atlanta Braves"])

	assert.Empty(t, sink.SnapshotWrites())
	assert.Empty(t, sink.ArchiveWrites())
}

func TestRunLiveFetchFailureReportsFetchError(t *testing.T) {
	provider := liveProvider()
	provider.StandingsFn = func(context.Context) (scores.Standings, error) {
		return nil, errors.New("standings fetch failed for league 103")
	}
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	result := p.RunLive(context.Background())
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.False(t, result.Body.Success)
	assert.Equal(t, ErrorCategoryFetch, result.Body.Error)
	assert.Empty(t, sink.LatestWrites())
}

func TestRunLiveStoreFailureReportsStoreError(t *testing.T) {
	sink := &testutil.Sink{LatestErr: errors.New("access denied")}
	p := newTestPipeline(liveProvider(), sink)

	result := p.RunLive(context.Background())
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Equal(t, ErrorCategoryStore, result.Body.Error)
}

func TestRunDailyWritesFullSetForYesterday(t *testing.T) {
	provider := liveProvider()
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	require.NoError(t, p.RunDaily(context.Background()))

	// Reference-zone date of fixedNow is 2025-07-03; yesterday is the 2nd.
	assert.Equal(t, []string{"2025-07-02"}, provider.ScheduleDates())

	require.Len(t, sink.LatestWrites(), 1)
	snapWrites := sink.SnapshotWrites()
	require.Len(t, snapWrites, 1)
	assert.Equal(t, "2025-07-02", snapWrites[0].Date)
	archiveWrites := sink.ArchiveWrites()
	require.Len(t, archiveWrites, 1)
	assert.Equal(t, "2025-07-02", archiveWrites[0].Date)
	assert.Equal(t, snapWrites[0].Snapshot, archiveWrites[0].Snapshot)
}

func TestRunDailyPropagatesStoreFailure(t *testing.T) {
	sink := &testutil.Sink{ArchiveErr: errors.New("throughput exceeded")}
	p := newTestPipeline(liveProvider(), sink)

	err := p.RunDaily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025-07-02")
	assert.Contains(t, err.Error(), "throughput exceeded")

	// The other targets were still attempted.
	assert.Len(t, sink.LatestWrites(), 1)
	assert.Len(t, sink.SnapshotWrites(), 1)
}

func TestRunGatedAllFinalWritesEverything(t *testing.T) {
	provider := liveProvider()
	provider.ScheduleFn = func(context.Context, string) []scores.Game {
		return []scores.Game{
			testutil.Game(1001, scores.StateFinal, "Atlanta Braves", 5, "New York Mets", 3),
		}
	}
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	require.NoError(t, p.RunGated(context.Background()))

	assert.Equal(t, []string{"2025-07-03"}, provider.ScheduleDates())
	assert.Len(t, sink.LatestWrites(), 1)
	snapWrites := sink.SnapshotWrites()
	require.Len(t, snapWrites, 1)
	assert.Equal(t, "2025-07-03", snapWrites[0].Date)
	assert.Len(t, sink.ArchiveWrites(), 1)
}

func TestRunGatedLiveSlateWritesLatestOnly(t *testing.T) {
	provider := liveProvider()
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	require.NoError(t, p.RunGated(context.Background()))

	assert.Len(t, sink.LatestWrites(), 1)
	assert.Empty(t, sink.SnapshotWrites())
	assert.Empty(t, sink.ArchiveWrites())
}

func TestRunGatedIdleSlateSkipsAggregation(t *testing.T) {
	provider := liveProvider()
	provider.ScheduleFn = func(context.Context, string) []scores.Game {
		return []scores.Game{
			testutil.GameNoScores(1001, scores.StatePreview, "Atlanta Braves", "New York Mets"),
		}
	}
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	require.NoError(t, p.RunGated(context.Background()))

	assert.Empty(t, sink.LatestWrites())
	assert.Empty(t, sink.SnapshotWrites())
	assert.Empty(t, sink.ArchiveWrites())
	assert.Zero(t, provider.StandingsCalls())
}

func TestRunGatedEmptySlateDoesNothing(t *testing.T) {
	provider := &testutil.Provider{}
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	require.NoError(t, p.RunGated(context.Background()))
	assert.Empty(t, sink.LatestWrites())
	assert.Zero(t, provider.StandingsCalls())
}

func TestRunGatedFetchesScheduleOnce(t *testing.T) {
	provider := liveProvider()
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	require.NoError(t, p.RunGated(context.Background()))
	assert.Len(t, provider.ScheduleDates(), 1)
}

func TestRunGatedAggregationFailurePropagates(t *testing.T) {
	provider := liveProvider()
	provider.StandingsFn = func(context.Context) (scores.Standings, error) {
		return nil, errors.New("standings fetch failed for league 104")
	}
	sink := &testutil.Sink{}
	p := newTestPipeline(provider, sink)

	err := p.RunGated(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "league 104")
	assert.Empty(t, sink.LatestWrites())
}
