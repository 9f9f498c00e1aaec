package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okian/lovecalc/internal/domain/model"
)

// MemoryStore keeps submissions in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records []model.Submission
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert appends a copy of sub and assigns it an id.
func (s *MemoryStore) Insert(ctx context.Context, sub *model.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectIDFromTimestamp(s.now())
	}

	s.mu.Lock()
	s.records = append(s.records, *sub)
	s.mu.Unlock()
	return nil
}

// Count returns the number of stored submissions.
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// All returns a snapshot of every stored submission in insertion order.
func (s *MemoryStore) All() []model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Submission, len(s.records))
	copy(out, s.records)
	return out
}
