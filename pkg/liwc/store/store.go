package store

import (
	"context"
	"time"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/feature"
)

// Store is the interface for persisting and querying analysis records
type Store interface {
	Close() error

	UpsertRecord(ctx context.Context, r Record) error
	GetRecord(ctx context.Context, id string) (Record, error)
	GetRecordsByRun(ctx context.Context, runID string) ([]Record, error)
	AllSubjects(ctx context.Context) ([]string, error)
}

// Record is a stored feature vector for one analyzed subject
type Record struct {
	ID        string
	RunID     string
	Subject   string
	CreatedAt time.Time
	WordCount int
	Features  *feature.Vector
}
