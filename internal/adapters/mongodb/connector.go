package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/okian/lovecalc/pkg/lazy"
	"github.com/okian/lovecalc/pkg/logger"
	"github.com/okian/lovecalc/pkg/metrics"
)

// Defaults for the submissions store.
const (
	DefaultDatabase   = "lovecalc"
	DefaultCollection = "loveCalculations"
	DefaultTimeout    = 5 * time.Second
)

// Dialer establishes a ready-to-use client for uri.
type Dialer func(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error)

// Connector establishes the MongoDB client on first use and shares it for
// the life of the process. Concurrent first users wait on the same
// establishment; a failed establishment is dropped so the next call retries.
type Connector struct {
	uri        string
	database   string
	collection string
	timeout    time.Duration
	dial       Dialer
	logger     logger.Logger

	client *lazy.Value[*mongo.Client]
}

// NewConnector creates a connector. Nothing is dialled until first use.
func NewConnector(opts ...Option) *Connector {
	c := &Connector{
		database:   DefaultDatabase,
		collection: DefaultCollection,
		timeout:    DefaultTimeout,
		dial:       Dial,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = lazy.New(c.connect)
	return c
}

func (c *Connector) connect(ctx context.Context) (*mongo.Client, error) {
	metrics.RecordConnectAttempt()
	if c.uri == "" {
		metrics.RecordConnectFailure()
		c.logger.Error(ctx, "storage not configured", logger.Error(ErrMissingURI))
		return nil, ErrMissingURI
	}

	start := time.Now()
	client, err := c.dial(ctx, c.uri, c.timeout)
	if err != nil {
		metrics.RecordConnectFailure()
		c.logger.Error(ctx, "database connection failed", logger.Error(err))
		return nil, err
	}

	metrics.SetConnectionUp(true)
	c.logger.Info(ctx, "new database connection established",
		logger.String("database", c.database),
		logger.Any("elapsed", time.Since(start)),
	)
	return client, nil
}

// Client returns the shared client, establishing it if needed.
func (c *Connector) Client(ctx context.Context) (*mongo.Client, error) {
	if c.client.Loaded() {
		c.logger.Debug(ctx, "using cached database connection")
	}
	return c.client.Get(ctx)
}

// Collection returns the submissions collection on the shared client.
func (c *Connector) Collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := c.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.database).Collection(c.collection), nil
}

// Connected reports whether a client is currently established.
func (c *Connector) Connected() bool {
	return c.client.Loaded()
}

// Close disconnects the client if one was established.
func (c *Connector) Close(ctx context.Context) error {
	client, ok := c.client.Reset()
	if !ok {
		return nil
	}
	metrics.SetConnectionUp(false)
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect: %w", err)
	}
	return nil
}

// Dial connects to uri and pings the primary so that an unreachable server
// fails the establishment instead of the first write.
func Dial(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	return client, nil
}
