package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlb-scores-service/internal/metrics"
)

type fakeDynamo struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestPutDailySnapshotWritesKeyedItem(t *testing.T) {
	fake := &fakeDynamo{}
	recorder := metrics.NewRecorder()
	table := NewArchiveTable(fake, "daily-scores", recorder)
	table.now = func() time.Time { return time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC) }

	err := table.PutDailySnapshot(context.Background(), "mlb", "2025-07-03", sampleSnapshot())
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)

	input := fake.inputs[0]
	assert.Equal(t, "daily-scores", *input.TableName)

	var item archiveItem
	require.NoError(t, attributevalue.UnmarshalMap(input.Item, &item))
	assert.Equal(t, "mlb", item.LeagueID)
	assert.Equal(t, "2025-07-03", item.SnapshotDate)
	assert.Equal(t, sampleSnapshot(), item.Payload)
	assert.Equal(t, time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC).UnixMilli(), item.Timestamp)

	assert.Equal(t, 1, recorder.StoreWrites(metrics.TargetArchive))
}

func TestPutDailySnapshotFailureIsWrapped(t *testing.T) {
	fake := &fakeDynamo{err: errors.New("throughput exceeded")}
	recorder := metrics.NewRecorder()
	table := NewArchiveTable(fake, "daily-scores", recorder)

	err := table.PutDailySnapshot(context.Background(), "mlb", "2025-07-03", sampleSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily-scores")
	assert.Contains(t, err.Error(), "throughput exceeded")
	assert.Equal(t, 1, recorder.StoreErrors(metrics.TargetArchive))
}
