package service

import (
	"time"

	"github.com/okian/lovecalc/internal/adapters/repository"
	"github.com/okian/lovecalc/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets where submissions are written.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used to stamp submissions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithVerifyScore makes Submit recompute the percentage from the names and
// reject submissions that disagree.
func WithVerifyScore(enabled bool) Option {
	return func(s *Service) {
		s.verifyScore = enabled
	}
}

// WithConnectionState reports whether the storage backend is connected.
// Stats only counts stored submissions while it returns true.
func WithConnectionState(connected func() bool) Option {
	return func(s *Service) {
		s.connected = connected
	}
}
