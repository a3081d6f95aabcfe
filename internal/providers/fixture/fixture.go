package fixture

import (
	"context"
	"fmt"

	"mlb-scores-service/internal/domain/scores"
)

// Provider returns a static slate useful for local runs and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

func intp(v int) *int { return &v }

// FetchSchedule returns a deterministic slate: one live game, one not yet
// started. The date is ignored.
func (p *Provider) FetchSchedule(ctx context.Context, date string) []scores.Game {
	_ = ctx
	_ = date

	return []scores.Game{
		{
			ID:            1001,
			State:         scores.StateLive,
			DetailedState: "In Progress",
			AwayTeam:      "Braves",
			AwayScore:     intp(5),
			HomeTeam:      "Mets",
			HomeScore:     intp(3),
		},
		{
			ID:            1002,
			State:         scores.StatePreview,
			DetailedState: "Pre-Game",
			AwayTeam:      "Cubs",
			HomeTeam:      "Cardinals",
		},
	}
}

// FetchLineScore returns a deterministic box score for the live fixture game.
// Other IDs error so fallback paths stay reachable locally.
func (p *Provider) FetchLineScore(ctx context.Context, gameID int) (scores.LineScore, error) {
	_ = ctx
	if gameID != 1001 {
		return scores.LineScore{}, fmt.Errorf("fixture: no linescore for game %d", gameID)
	}
	return scores.LineScore{
		Away:  scores.SideLine{Runs: 5, Hits: 9, Errors: 1},
		Home:  scores.SideLine{Runs: 3, Hits: 6, Errors: 0},
		State: scores.StateLive,
	}, nil
}

// FetchStandings returns a deterministic set of records.
func (p *Provider) FetchStandings(ctx context.Context) (scores.Standings, error) {
	_ = ctx
	return scores.Standings{
		"Braves":    "48-36",
		"Mets":      "44-40",
		"Cubs":      "41-43",
		"Cardinals": "39-45",
	}, nil
}
