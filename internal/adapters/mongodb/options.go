// Package mongodb owns the lazily established MongoDB client.
package mongodb

import (
	"time"

	"github.com/okian/lovecalc/pkg/logger"
)

// Option applies a configuration option to the Connector.
type Option func(*Connector)

// WithURI sets the connection string. An empty URI is reported on first use.
func WithURI(uri string) Option {
	return func(c *Connector) {
		c.uri = uri
	}
}

// WithDatabase sets the database name. Empty keeps DefaultDatabase.
func WithDatabase(name string) Option {
	return func(c *Connector) {
		if name != "" {
			c.database = name
		}
	}
}

// WithCollection sets the submissions collection name.
func WithCollection(name string) Option {
	return func(c *Connector) {
		if name != "" {
			c.collection = name
		}
	}
}

// WithTimeout bounds server selection and the initial ping.
func WithTimeout(d time.Duration) Option {
	return func(c *Connector) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDialer replaces the function that establishes the client.
func WithDialer(d Dialer) Option {
	return func(c *Connector) {
		if d != nil {
			c.dial = d
		}
	}
}

// WithLogger sets the connector logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Connector) {
		if l != nil {
			c.logger = l
		}
	}
}
