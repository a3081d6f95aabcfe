package pipeline

import "net/http"

// Error categories reported by the live run. Consumers key alerting off
// these strings, so they are part of the contract.
const (
	ErrorCategoryFetch = "fetch-error"
	ErrorCategoryStore = "store-error"
)

// Body is the serialized outcome of a live run.
type Body struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Result is what the live entrypoint returns to the invoking platform.
type Result struct {
	StatusCode int  `json:"statusCode"`
	Body       Body `json:"body"`
}

func successResult() Result {
	return Result{
		StatusCode: http.StatusOK,
		Body:       Body{Success: true},
	}
}

func failureResult(category string) Result {
	return Result{
		StatusCode: http.StatusInternalServerError,
		Body:       Body{Success: false, Error: category},
	}
}
