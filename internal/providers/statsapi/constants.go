package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultCutoffHour  = 5

	sportID = 1

	americanLeagueID = 103
	nationalLeagueID = 104
)

var leagueIDs = []int{americanLeagueID, nationalLeagueID}
