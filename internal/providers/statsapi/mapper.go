package statsapi

import (
	"fmt"

	"mlb-scores-service/internal/domain/scores"
)

// flattenSchedule collapses the nested dates/games structure into one
// ordered slice of games.
func flattenSchedule(payload scheduleResponse) []scores.Game {
	games := make([]scores.Game, 0)
	for _, date := range payload.Dates {
		for _, game := range date.Games {
			games = append(games, mapGame(game))
		}
	}
	return games
}

func mapGame(g gameResponse) scores.Game {
	return scores.Game{
		ID:            g.GamePk,
		State:         mapState(g.Status.AbstractGameState),
		DetailedState: g.Status.DetailedState,
		AwayTeam:      g.Teams.Away.Team.Name,
		AwayScore:     g.Teams.Away.Score,
		HomeTeam:      g.Teams.Home.Team.Name,
		HomeScore:     g.Teams.Home.Score,
	}
}

func mapLineScore(payload linescoreResponse) scores.LineScore {
	return scores.LineScore{
		Away: scores.SideLine{
			Runs:   payload.Teams.Away.Runs,
			Hits:   payload.Teams.Away.Hits,
			Errors: payload.Teams.Away.Errors,
		},
		Home: scores.SideLine{
			Runs:   payload.Teams.Home.Runs,
			Hits:   payload.Teams.Home.Hits,
			Errors: payload.Teams.Home.Errors,
		},
		State: mapState(payload.Status.AbstractGameState),
	}
}

func mapStandings(payload standingsResponse) scores.Standings {
	standings := make(scores.Standings)
	for _, group := range payload.Records {
		for _, record := range group.TeamRecords {
			standings[record.Team.Name] = fmt.Sprintf("%d-%d", record.Wins, record.Losses)
		}
	}
	return standings
}

// mapState normalizes the upstream abstract game state. Unknown values are
// treated as Preview so a new upstream state never looks like a live or
// finished game.
func mapState(raw string) scores.GameState {
	switch raw {
	case "Live":
		return scores.StateLive
	case "Final":
		return scores.StateFinal
	default:
		return scores.StatePreview
	}
}
