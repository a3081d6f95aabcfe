package gate

import "mlb-scores-service/internal/domain/scores"

// Action is the set of persistence writes one cycle should perform.
type Action struct {
	WriteLatest   bool
	WriteSnapshot bool
	WriteArchive  bool
}

// None reports whether the cycle should write nothing.
func (a Action) None() bool {
	return !a.WriteLatest && !a.WriteSnapshot && !a.WriteArchive
}

// Decide inspects the slate's aggregate state and picks the action set:
// every game final means the day is done and the full set is written; a
// slate with at least one live game refreshes only the latest view; a slate
// that has not started yet (or is empty, as in the off-season) writes
// nothing so an all-null placeholder is never published.
func Decide(games []scores.Game) Action {
	if len(games) == 0 {
		return Action{}
	}

	anyLive := false
	allFinal := true
	for _, game := range games {
		switch game.State {
		case scores.StateLive:
			anyLive = true
			allFinal = false
		case scores.StateFinal:
		default:
			allFinal = false
		}
	}

	if allFinal {
		return Action{WriteLatest: true, WriteSnapshot: true, WriteArchive: true}
	}
	if anyLive {
		return Action{WriteLatest: true}
	}
	return Action{}
}
