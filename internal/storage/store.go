package storage

import (
	"context"
	"fmt"

	"mlb-scores-service/internal/domain/scores"
)

// LatestWriter overwrites the single "current" snapshot for a league.
type LatestWriter interface {
	StoreLatest(ctx context.Context, leagueID string, snap scores.Snapshot) error
}

// SnapshotWriter persists a dated copy of a league's snapshot.
type SnapshotWriter interface {
	StoreSnapshot(ctx context.Context, leagueID, date string, snap scores.Snapshot) error
}

// ArchiveWriter upserts a league's daily snapshot into the tabular archive.
type ArchiveWriter interface {
	PutDailySnapshot(ctx context.Context, leagueID, date string, snap scores.Snapshot) error
}

// Sink combines all persistence capabilities.
type Sink interface {
	LatestWriter
	SnapshotWriter
	ArchiveWriter
}

// ObjectWriter is the pair of capabilities an object store provides.
type ObjectWriter interface {
	LatestWriter
	SnapshotWriter
}

type composite struct {
	LatestWriter
	SnapshotWriter
	ArchiveWriter
}

// Compose joins an object store and an archive table into one Sink.
func Compose(objects ObjectWriter, archive ArchiveWriter) Sink {
	return composite{
		LatestWriter:   objects,
		SnapshotWriter: objects,
		ArchiveWriter:  archive,
	}
}

// LatestKey returns the object key of a league's current snapshot.
func LatestKey(leagueID string) string {
	return fmt.Sprintf("leagues/%s/latest.json", leagueID)
}

// SnapshotKey returns the object key of a league's snapshot for a date.
func SnapshotKey(leagueID, date string) string {
	return fmt.Sprintf("leagues/%s/%s.json", leagueID, date)
}
