package statsapi

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk int            `json:"gamePk"`
	Status statusResponse `json:"status"`
	Teams  struct {
		Away sideResponse `json:"away"`
		Home sideResponse `json:"home"`
	} `json:"teams"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type sideResponse struct {
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
	Score *int `json:"score"`
}

type linescoreResponse struct {
	Teams struct {
		Away lineSideResponse `json:"away"`
		Home lineSideResponse `json:"home"`
	} `json:"teams"`
	Status statusResponse `json:"status"`
}

type lineSideResponse struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

type standingsResponse struct {
	Records []recordGroupResponse `json:"records"`
}

type recordGroupResponse struct {
	TeamRecords []teamRecordResponse `json:"teamRecords"`
}

type teamRecordResponse struct {
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}
