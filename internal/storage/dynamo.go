package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"mlb-scores-service/internal/domain/scores"
	"mlb-scores-service/internal/metrics"
)

// dynamoAPI is the subset of the DynamoDB client used by ArchiveTable.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// archiveItem is the table row shape: (leagueId, snapshotDate) is the
// primary key, payload holds the full snapshot.
type archiveItem struct {
	LeagueID     string          `dynamodbav:"leagueId"`
	SnapshotDate string          `dynamodbav:"snapshotDate"`
	Payload      scores.Snapshot `dynamodbav:"payload"`
	Timestamp    int64           `dynamodbav:"timestamp"`
}

// ArchiveTable upserts daily snapshots into a DynamoDB table.
type ArchiveTable struct {
	client  dynamoAPI
	table   string
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewArchiveTable constructs an ArchiveTable writing to the given table.
func NewArchiveTable(client dynamoAPI, table string, recorder *metrics.Recorder) *ArchiveTable {
	return &ArchiveTable{
		client:  client,
		table:   table,
		metrics: recorder,
		now:     time.Now,
	}
}

// PutDailySnapshot upserts the row keyed by (leagueID, date). Last write
// wins; there is no cross-write atomicity with the object store.
func (a *ArchiveTable) PutDailySnapshot(ctx context.Context, leagueID, date string, snap scores.Snapshot) error {
	item, err := attributevalue.MarshalMap(archiveItem{
		LeagueID:     leagueID,
		SnapshotDate: date,
		Payload:      snap,
		Timestamp:    a.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("storage: marshal archive item for %s/%s: %w", leagueID, date, err)
	}

	start := time.Now()
	_, err = a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      item,
	})
	a.metrics.RecordStoreWrite(metrics.TargetArchive, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("storage: put item %s/%s into %s: %w", leagueID, date, a.table, err)
	}
	return nil
}
