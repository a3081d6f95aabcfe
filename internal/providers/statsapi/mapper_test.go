package statsapi

import (
	"testing"

	"mlb-scores-service/internal/domain/scores"
)

func TestMapStateNormalizesKnownValues(t *testing.T) {
	cases := []struct {
		raw      string
		expected scores.GameState
	}{
		{"Preview", scores.StatePreview},
		{"Live", scores.StateLive},
		{"Final", scores.StateFinal},
		{"Delayed", scores.StatePreview},
		{"", scores.StatePreview},
	}

	for _, tc := range cases {
		if got := mapState(tc.raw); got != tc.expected {
			t.Fatalf("mapState(%q) = %s, expected %s", tc.raw, got, tc.expected)
		}
	}
}

func TestMapStandingsFormatsRecords(t *testing.T) {
	payload := standingsResponse{
		Records: []recordGroupResponse{
			{TeamRecords: []teamRecordResponse{
				{Wins: 10, Losses: 5},
			}},
		},
	}
	payload.Records[0].TeamRecords[0].Team.Name = "Guardians"

	standings := mapStandings(payload)
	if standings["Guardians"] != "10-5" {
		t.Fatalf("expected 10-5, got %s", standings["Guardians"])
	}
}

func TestFlattenSchedulePreservesOrder(t *testing.T) {
	payload := scheduleResponse{
		Dates: []dateResponse{
			{Games: []gameResponse{{GamePk: 1}, {GamePk: 2}}},
			{Games: []gameResponse{{GamePk: 3}}},
		},
	}

	games := flattenSchedule(payload)
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, id := range []int{1, 2, 3} {
		if games[i].ID != id {
			t.Fatalf("expected game %d at index %d, got %d", id, i, games[i].ID)
		}
	}
}
