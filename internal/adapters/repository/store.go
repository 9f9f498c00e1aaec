// Package repository defines the submission store interface and its implementations.
package repository

import (
	"context"

	"github.com/okian/lovecalc/internal/domain/model"
)

// Store is an append-only collection of submissions.
type Store interface {
	// Insert writes s as a new record and sets s.ID. Existing records are
	// never modified; duplicates are stored as separate records.
	Insert(ctx context.Context, s *model.Submission) error

	// Count returns the number of stored submissions.
	Count(ctx context.Context) (int64, error)
}
