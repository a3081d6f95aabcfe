package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	starts     int
	errors     int
	lastStatus int
}

type storeStats struct {
	writes      int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and
// storage writes. All methods are nil-safe so observability can never break
// the pipeline itself.
type Recorder struct {
	mu          sync.Mutex
	fetches     map[string]*fetchStats
	stores      map[string]*storeStats
	gamesParsed int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetches: make(map[string]*fetchStats),
		stores:  make(map[string]*storeStats),
		otel:    otel,
	}
}

// RecordFetchStart counts the beginning of an upstream fetch.
func (r *Recorder) RecordFetchStart(endpoint string) {
	if r == nil {
		return
	}
	stats := r.ensureFetch(endpoint)
	r.mu.Lock()
	stats.starts++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFetchStart(endpoint)
	}
}

// RecordFetchStatus records the HTTP status observed for an upstream fetch.
func (r *Recorder) RecordFetchStatus(endpoint string, status int) {
	if r == nil {
		return
	}
	stats := r.ensureFetch(endpoint)
	r.mu.Lock()
	stats.lastStatus = status
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFetchStatus(endpoint, status)
	}
}

// RecordFetchError counts a transport-level fetch failure.
func (r *Recorder) RecordFetchError(endpoint string) {
	if r == nil {
		return
	}
	stats := r.ensureFetch(endpoint)
	r.mu.Lock()
	stats.errors++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFetchError(endpoint)
	}
}

// RecordGamesParsed counts games extracted from a schedule response.
func (r *Recorder) RecordGamesParsed(count int) {
	if r == nil || count < 0 {
		return
	}
	r.mu.Lock()
	r.gamesParsed += count
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGamesParsed(count)
	}
}

// RecordStoreWrite tracks one persistence write and its outcome.
func (r *Recorder) RecordStoreWrite(target string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	stats := r.ensureStore(target)
	r.mu.Lock()
	stats.writes++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordStoreWrite(target, duration, err)
	}
}

// RecordCycle tracks one pipeline cycle and its outcome.
func (r *Recorder) RecordCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordCycle(duration, err)
}

// FetchStarts returns the total fetch starts recorded for an endpoint.
func (r *Recorder) FetchStarts(endpoint string) int {
	return r.FetchSnapshot(endpoint).Starts
}

// FetchErrors returns the total fetch failures recorded for an endpoint.
func (r *Recorder) FetchErrors(endpoint string) int {
	return r.FetchSnapshot(endpoint).Errors
}

// LastFetchStatus returns the most recent HTTP status seen for an endpoint.
func (r *Recorder) LastFetchStatus(endpoint string) int {
	return r.FetchSnapshot(endpoint).LastStatus
}

// GamesParsed returns the running count of games parsed from schedules.
func (r *Recorder) GamesParsed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gamesParsed
}

// StoreWrites returns the total writes recorded for a storage target.
func (r *Recorder) StoreWrites(target string) int {
	return r.StoreSnapshot(target).Writes
}

// StoreErrors returns the total failed writes recorded for a storage target.
func (r *Recorder) StoreErrors(target string) int {
	return r.StoreSnapshot(target).Errors
}

// FetchSnapshot is a copy of the current fetch stats for one endpoint.
type FetchSnapshot struct {
	Starts     int
	Errors     int
	LastStatus int
}

func (r *Recorder) FetchSnapshot(endpoint string) FetchSnapshot {
	if r == nil {
		return FetchSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.fetches[endpoint]; ok && stats != nil {
		return FetchSnapshot{Starts: stats.starts, Errors: stats.errors, LastStatus: stats.lastStatus}
	}
	return FetchSnapshot{}
}

// StoreSnapshot is a copy of the current write stats for one storage target.
type StoreSnapshot struct {
	Writes      int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) StoreSnapshot(target string) StoreSnapshot {
	if r == nil {
		return StoreSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stores[target]; ok && stats != nil {
		return StoreSnapshot{Writes: stats.writes, Errors: stats.errors, LastLatency: stats.lastLatency}
	}
	return StoreSnapshot{}
}

func (r *Recorder) ensureFetch(endpoint string) *fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.fetches[endpoint]
	if !ok {
		stats = &fetchStats{}
		r.fetches[endpoint] = stats
	}
	return stats
}

func (r *Recorder) ensureStore(target string) *storeStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stores[target]
	if !ok {
		stats = &storeStats{}
		r.stores[target] = stats
	}
	return stats
}
