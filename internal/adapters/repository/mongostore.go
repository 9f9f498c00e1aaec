package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/okian/lovecalc/internal/domain/model"
	"github.com/okian/lovecalc/pkg/logger"
	"github.com/okian/lovecalc/pkg/metrics"
)

// CollectionProvider hands out the submissions collection, connecting if needed.
type CollectionProvider interface {
	Collection(ctx context.Context) (*mongo.Collection, error)
}

// MongoStore persists submissions in a MongoDB collection.
type MongoStore struct {
	provider     CollectionProvider
	writeTimeout time.Duration
	logger       logger.Logger
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore creates a store on top of provider.
func NewMongoStore(provider CollectionProvider, opts ...MongoOption) *MongoStore {
	s := &MongoStore{
		provider: provider,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert writes sub and records the generated id on it.
func (s *MongoStore) Insert(ctx context.Context, sub *model.Submission) error {
	coll, err := s.provider.Collection(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := coll.InsertOne(ctx, sub)
	metrics.RecordStoreInsertLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInsert, err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = id
	}
	s.logger.Debug(ctx, "submission inserted", logger.String("id", sub.ID.Hex()))
	return nil
}

// Count returns the number of documents in the collection.
func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	coll, err := s.provider.Collection(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCount, err)
	}
	return n, nil
}
