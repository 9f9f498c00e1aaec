// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and the environment.
// - External errors are wrapped with this package's sentinel errors.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// MongoURI is the storage connection string. It is not required at
	// startup; a missing value fails the first submission instead.
	MongoURI string `koanf:"mongodb_uri"`

	// Database and Collection name where submissions are stored.
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`

	// ConnectTimeoutMS bounds server selection and the initial ping.
	ConnectTimeoutMS int `koanf:"connect_timeout_ms"`

	// WriteTimeoutMS bounds a single insert; 0 disables the extra bound.
	WriteTimeoutMS int `koanf:"write_timeout_ms"`

	// VerifyScore makes the API recompute the percentage from the names and
	// reject submissions whose calculatedPercentage does not match.
	VerifyScore bool `koanf:"verify_score"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		Database:         "lovecalc",
		Collection:       "loveCalculations",
		ConnectTimeoutMS: 5000,
		WriteTimeoutMS:   10000,
		VerifyScore:      false,
	}
}

// ConnectTimeout returns ConnectTimeoutMS as a duration.
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMS) * time.Millisecond
}

// WriteTimeout returns WriteTimeoutMS as a duration.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMS) * time.Millisecond
}
