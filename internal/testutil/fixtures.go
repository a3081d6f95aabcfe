package testutil

import "mlb-scores-service/internal/domain/scores"

// Intp returns a pointer to v, for schedule-embedded score literals.
func Intp(v int) *int { return &v }

// Game builds a schedule game with embedded scores.
func Game(id int, state scores.GameState, away string, awayScore int, home string, homeScore int) scores.Game {
	return scores.Game{
		ID:        id,
		State:     state,
		AwayTeam:  away,
		AwayScore: Intp(awayScore),
		HomeTeam:  home,
		HomeScore: Intp(homeScore),
	}
}

// GameNoScores builds a schedule game whose embedded scores are still null.
func GameNoScores(id int, state scores.GameState, away, home string) scores.Game {
	return scores.Game{
		ID:       id,
		State:    state,
		AwayTeam: away,
		HomeTeam: home,
	}
}
