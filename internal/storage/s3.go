package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"mlb-scores-service/internal/domain/scores"
	"mlb-scores-service/internal/metrics"
)

const contentTypeJSON = "application/json"

// s3API is the subset of the S3 client used by ObjectStore.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ObjectStore persists snapshots as JSON objects in an S3 bucket.
type ObjectStore struct {
	client  s3API
	bucket  string
	metrics *metrics.Recorder
}

// NewObjectStore constructs an ObjectStore writing to the given bucket.
func NewObjectStore(client s3API, bucket string, recorder *metrics.Recorder) *ObjectStore {
	return &ObjectStore{
		client:  client,
		bucket:  bucket,
		metrics: recorder,
	}
}

// StoreLatest unconditionally overwrites the league's current snapshot.
func (o *ObjectStore) StoreLatest(ctx context.Context, leagueID string, snap scores.Snapshot) error {
	return o.put(ctx, metrics.TargetLatest, LatestKey(leagueID), snap)
}

// StoreSnapshot writes the league's dated snapshot copy.
func (o *ObjectStore) StoreSnapshot(ctx context.Context, leagueID, date string, snap scores.Snapshot) error {
	return o.put(ctx, metrics.TargetSnapshot, SnapshotKey(leagueID, date), snap)
}

func (o *ObjectStore) put(ctx context.Context, target, key string, snap scores.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: marshal snapshot for %s: %w", key, err)
	}

	start := time.Now()
	_, err = o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(o.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeJSON),
	})
	o.metrics.RecordStoreWrite(target, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("storage: put s3://%s/%s: %w", o.bucket, key, err)
	}
	return nil
}
