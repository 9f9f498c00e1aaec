package repository

import (
	"time"

	"github.com/okian/lovecalc/pkg/logger"
)

// MongoOption applies a configuration option to the MongoStore.
type MongoOption func(*MongoStore)

// WithWriteTimeout bounds a single insert. Zero leaves the request context alone.
func WithWriteTimeout(d time.Duration) MongoOption {
	return func(s *MongoStore) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) MongoOption {
	return func(s *MongoStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used by the memory store.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)
