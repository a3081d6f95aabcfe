package testutil

import (
	"context"
	"sync"

	"mlb-scores-service/internal/domain/scores"
)

// LatestWrite records one StoreLatest call.
type LatestWrite struct {
	LeagueID string
	Snapshot scores.Snapshot
}

// DatedWrite records one StoreSnapshot or PutDailySnapshot call.
type DatedWrite struct {
	LeagueID string
	Date     string
	Snapshot scores.Snapshot
}

// Sink is a configurable test double for the storage interfaces.
type Sink struct {
	LatestErr   error
	SnapshotErr error
	ArchiveErr  error

	mu             sync.Mutex
	latestWrites   []LatestWrite
	snapshotWrites []DatedWrite
	archiveWrites  []DatedWrite
}

func (s *Sink) StoreLatest(ctx context.Context, leagueID string, snap scores.Snapshot) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LatestErr != nil {
		return s.LatestErr
	}
	s.latestWrites = append(s.latestWrites, LatestWrite{LeagueID: leagueID, Snapshot: snap})
	return nil
}

func (s *Sink) StoreSnapshot(ctx context.Context, leagueID, date string, snap scores.Snapshot) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SnapshotErr != nil {
		return s.SnapshotErr
	}
	s.snapshotWrites = append(s.snapshotWrites, DatedWrite{LeagueID: leagueID, Date: date, Snapshot: snap})
	return nil
}

func (s *Sink) PutDailySnapshot(ctx context.Context, leagueID, date string, snap scores.Snapshot) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ArchiveErr != nil {
		return s.ArchiveErr
	}
	s.archiveWrites = append(s.archiveWrites, DatedWrite{LeagueID: leagueID, Date: date, Snapshot: snap})
	return nil
}

// LatestWrites returns a copy of the recorded StoreLatest calls.
func (s *Sink) LatestWrites() []LatestWrite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LatestWrite(nil), s.latestWrites...)
}

// SnapshotWrites returns a copy of the recorded StoreSnapshot calls.
func (s *Sink) SnapshotWrites() []DatedWrite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DatedWrite(nil), s.snapshotWrites...)
}

// ArchiveWrites returns a copy of the recorded PutDailySnapshot calls.
func (s *Sink) ArchiveWrites() []DatedWrite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DatedWrite(nil), s.archiveWrites...)
}
