package testutil

import (
	"context"
	"sync"

	"mlb-scores-service/internal/domain/scores"
)

// Provider is a configurable test double for providers.DataProvider.
// Unset functions fall back to empty results.
type Provider struct {
	ScheduleFn  func(ctx context.Context, date string) []scores.Game
	LineScoreFn func(ctx context.Context, gameID int) (scores.LineScore, error)
	StandingsFn func(ctx context.Context) (scores.Standings, error)

	mu             sync.Mutex
	scheduleDates  []string
	lineScoreCalls []int
	standingsCalls int
}

func (p *Provider) FetchSchedule(ctx context.Context, date string) []scores.Game {
	p.mu.Lock()
	p.scheduleDates = append(p.scheduleDates, date)
	p.mu.Unlock()
	if p.ScheduleFn != nil {
		return p.ScheduleFn(ctx, date)
	}
	return []scores.Game{}
}

func (p *Provider) FetchLineScore(ctx context.Context, gameID int) (scores.LineScore, error) {
	p.mu.Lock()
	p.lineScoreCalls = append(p.lineScoreCalls, gameID)
	p.mu.Unlock()
	if p.LineScoreFn != nil {
		return p.LineScoreFn(ctx, gameID)
	}
	return scores.LineScore{}, nil
}

func (p *Provider) FetchStandings(ctx context.Context) (scores.Standings, error) {
	p.mu.Lock()
	p.standingsCalls++
	p.mu.Unlock()
	if p.StandingsFn != nil {
		return p.StandingsFn(ctx)
	}
	return scores.Standings{}, nil
}

// ScheduleDates returns the dates FetchSchedule was called with.
func (p *Provider) ScheduleDates() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.scheduleDates...)
}

// LineScoreCalls returns the game IDs FetchLineScore was called with.
func (p *Provider) LineScoreCalls() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.lineScoreCalls...)
}

// StandingsCalls returns how many times FetchStandings was called.
func (p *Provider) StandingsCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.standingsCalls
}
