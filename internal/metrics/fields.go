package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrEndpoint = "endpoint"
	AttrStatus   = "status"
	AttrTarget   = "target"
)

// Endpoint names used as metric attributes by the statsapi client.
const (
	EndpointSchedule  = "schedule"
	EndpointLineScore = "linescore"
	EndpointStandings = "standings"
)

// Target names used as metric attributes by the storage sinks.
const (
	TargetLatest   = "latest"
	TargetSnapshot = "snapshot"
	TargetArchive  = "archive"
)
