package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/internalerr"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]store.Record),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertRecord inserts or updates a record, keyed by ID.
func (s *Store) UpsertRecord(ctx context.Context, r store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		return nil
	}
	s.records[r.ID] = copyRecord(r)
	return nil
}

// GetRecord returns a record by ID.
func (s *Store) GetRecord(ctx context.Context, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.records[id]; ok {
		return copyRecord(rec), nil
	}
	return store.Record{}, fmt.Errorf("record %s: %w", id, internalerr.ErrNotFound)
}

// GetRecordsByRun returns all records for a run sorted by ID.
func (s *Store) GetRecordsByRun(ctx context.Context, runID string) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []store.Record
	for _, rec := range s.records {
		if rec.RunID == runID {
			records = append(records, copyRecord(rec))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// AllSubjects returns the distinct subjects across all records.
func (s *Store) AllSubjects(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.records))
	var subjects []string
	for _, rec := range s.records {
		if _, ok := seen[rec.Subject]; ok {
			continue
		}
		seen[rec.Subject] = struct{}{}
		subjects = append(subjects, rec.Subject)
	}
	sort.Strings(subjects)
	return subjects, nil
}

func copyRecord(r store.Record) store.Record {
	out := r
	if r.Features != nil {
		out.Features = r.Features.Clone()
	}
	return out
}
