package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mlb-scores-service/internal/domain/scores"
)

func slate(states ...scores.GameState) []scores.Game {
	games := make([]scores.Game, 0, len(states))
	for i, state := range states {
		games = append(games, scores.Game{ID: i + 1, State: state})
	}
	return games
}

func TestDecideAllFinalWritesEverything(t *testing.T) {
	action := Decide(slate(scores.StateFinal, scores.StateFinal, scores.StateFinal))
	assert.Equal(t, Action{WriteLatest: true, WriteSnapshot: true, WriteArchive: true}, action)
	assert.False(t, action.None())
}

func TestDecideAnyLiveWritesLatestOnly(t *testing.T) {
	cases := map[string][]scores.Game{
		"live and preview": slate(scores.StateLive, scores.StatePreview),
		"live and final":   slate(scores.StateLive, scores.StateFinal),
		"single live":      slate(scores.StateLive),
	}
	for name, games := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Action{WriteLatest: true}, Decide(games))
		})
	}
}

func TestDecideAllPreviewWritesNothing(t *testing.T) {
	action := Decide(slate(scores.StatePreview, scores.StatePreview))
	assert.True(t, action.None())
}

func TestDecideEmptySlateWritesNothing(t *testing.T) {
	// Off-season behaves like a slate that has not started.
	assert.True(t, Decide(nil).None())
	assert.True(t, Decide([]scores.Game{}).None())
}

func TestDecidePreviewAndFinalMixWritesNothing(t *testing.T) {
	// A postponed-looking mix with nothing in progress publishes nothing.
	action := Decide(slate(scores.StateFinal, scores.StatePreview))
	assert.True(t, action.None())
}
