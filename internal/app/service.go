// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/okian/lovecalc/internal/adapters/repository"
	"github.com/okian/lovecalc/internal/domain/model"
	"github.com/okian/lovecalc/internal/domain/scoring"
	"github.com/okian/lovecalc/pkg/logger"
	"github.com/okian/lovecalc/pkg/metrics"
)

// Rejection reasons reported to metrics.
const (
	reasonMissingFields = "missing_fields"
	reasonScoreMismatch = "score_mismatch"
	reasonInvalid       = "invalid"
)

// Service validates and records love calculations.
type Service struct {
	store       repository.Store
	logger      logger.Logger
	now         func() time.Time
	verifyScore bool
	connected   func() bool
	validate    *validator.Validate
}

// Stats is a point-in-time view of the service.
type Stats struct {
	Submissions      int64 `json:"submissions"`
	StorageConnected bool  `json:"storageConnected"`
}

// New constructs a Service. Without WithStore submissions are kept in memory.
func New(opts ...Option) *Service {
	s := &Service{
		logger:   logger.Nop(),
		now:      time.Now,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	return s
}

// Submit validates req and stores it as a new Submission.
//
// Names are trimmed before validation. calculatedPercentage is stored as
// supplied unless score verification is enabled. Errors wrap ErrValidation
// when nothing was written because of the input, or ErrStorage when the
// write itself failed.
func (s *Service) Submit(ctx context.Context, req Request) (model.Submission, error) {
	req = req.trimmed()

	if err := s.check(req); err != nil {
		s.logger.Warn(ctx, "submission rejected", logger.Error(err))
		return model.Submission{}, err
	}

	sub := model.NewSubmission(req.YourName, int(req.YourAge), req.CrushName, *req.CalculatedPercentage, s.now())
	if err := s.store.Insert(ctx, &sub); err != nil {
		metrics.RecordSubmissionFailed()
		s.logger.Error(ctx, "failed to save submission", logger.Error(err))
		return model.Submission{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	metrics.RecordSubmissionSaved(sub.CalculatedPercentage)
	s.logger.Info(ctx, "submission saved",
		logger.String("id", sub.ID.Hex()),
		logger.Int("calculatedPercentage", sub.CalculatedPercentage),
	)
	return sub, nil
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *Service) check(req Request) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			metrics.RecordSubmissionRejected(reasonMissingFields)
			return fmt.Errorf("%w: %w: %s", ErrValidation, ErrMissingFields, strings.Join(fields, ", "))
		}
		metrics.RecordSubmissionRejected(reasonInvalid)
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if s.verifyScore {
		if want := scoring.Score(req.YourName, req.CrushName); want != *req.CalculatedPercentage {
			metrics.RecordSubmissionRejected(reasonScoreMismatch)
			return fmt.Errorf("%w: %w: got %d, want %d", ErrValidation, ErrScoreMismatch, *req.CalculatedPercentage, want)
		}
	}
	return nil
}

// Stats reports the number of stored submissions and whether storage is
// connected. The count is skipped while the backend is disconnected so a
// stats call never triggers a connection.
func (s *Service) Stats(ctx context.Context) Stats {
	st := Stats{StorageConnected: true}
	if s.connected != nil {
		st.StorageConnected = s.connected()
	}
	if !st.StorageConnected {
		return st
	}

	n, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to count submissions", logger.Error(err))
		return st
	}
	st.Submissions = n
	return st
}
