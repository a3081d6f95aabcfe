package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mlb-scores-service/internal/domain/scores"
)

// FSStore is a local-filesystem Sink for development runs. It mirrors the
// object-store key layout under a base directory and stands in for the
// archive table with an archive/ subtree.
type FSStore struct {
	basePath string
	now      func() time.Time
}

// NewFSStore constructs a store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{
		basePath: basePath,
		now:      time.Now,
	}
}

// BasePath exposes the store root path (primarily for testing).
func (f *FSStore) BasePath() string {
	if f == nil {
		return ""
	}
	return f.basePath
}

func (f *FSStore) StoreLatest(_ context.Context, leagueID string, snap scores.Snapshot) error {
	return f.write(LatestKey(leagueID), snap)
}

func (f *FSStore) StoreSnapshot(_ context.Context, leagueID, date string, snap scores.Snapshot) error {
	return f.write(SnapshotKey(leagueID, date), snap)
}

// PutDailySnapshot writes the archive row as a file carrying the same
// fields the table would hold.
func (f *FSStore) PutDailySnapshot(_ context.Context, leagueID, date string, snap scores.Snapshot) error {
	row := struct {
		LeagueID     string          `json:"leagueId"`
		SnapshotDate string          `json:"snapshotDate"`
		Payload      scores.Snapshot `json:"payload"`
		Timestamp    int64           `json:"timestamp"`
	}{
		LeagueID:     leagueID,
		SnapshotDate: date,
		Payload:      snap,
		Timestamp:    f.now().UnixMilli(),
	}
	key := filepath.Join("leagues", leagueID, "archive", date+".json")
	return f.write(key, row)
}

func (f *FSStore) write(key string, payload any) error {
	if f == nil {
		return fmt.Errorf("storage: fs store not configured")
	}
	target := filepath.Join(f.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
