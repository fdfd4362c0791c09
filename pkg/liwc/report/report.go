package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/feature"
)

// Builder constructs analysis records for a single run
type Builder struct {
	runID   string
	entropy *ulid.MonotonicEntropy
}

// New creates a record builder with a fresh run ID
func New() *Builder {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return &Builder{
		runID:   ulid.MustNew(ulid.Now(), entropy).String(),
		entropy: entropy,
	}
}

// RunID identifies all records built by this builder
func (b *Builder) RunID() string {
	return b.runID
}

// Record pairs an analyzed subject with its feature vector
type Record struct {
	ID        string          `json:"id"`
	RunID     string          `json:"run_id"`
	Subject   string          `json:"subject"`
	CreatedAt time.Time       `json:"created_at"`
	WordCount int             `json:"word_count,omitempty"`
	Features  *feature.Vector `json:"features"`
}

// Build creates a record from an analyzed subject
func (b *Builder) Build(subject string, vec *feature.Vector) Record {
	rec := Record{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		RunID:     b.runID,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
		Features:  vec,
	}
	if wc, ok := vec.Get("WC"); ok {
		rec.WordCount = int(wc)
	}
	return rec
}
