package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment keys read outside the LOVECALC_ prefix mapping.
const (
	envPrefix   = "LOVECALC_"
	envConfig   = "LOVECALC_CONFIG"
	envDotEnv   = "LOVECALC_ENV_FILE"
	envMongoURI = "MONGODB_URI"
	defaultEnv  = ".env"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LOVECALC_CONFIG is set
//  3. MONGODB_URI
//  4. env (prefix LOVECALC_)
//
// Before anything is read, a dotenv file is loaded into the process
// environment: LOVECALC_ENV_FILE if set, otherwise ./.env when present.
// Variables already set in the environment are not overridden.
func Load(_ context.Context) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	base := New()
	k := koanf.New(".")

	if path := os.Getenv(envConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	if uri := os.Getenv(envMongoURI); uri != "" {
		if err := k.Set("mongodb_uri", uri); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Map env keys like LOVECALC_CONNECT_TIMEOUT_MS -> connect_timeout_ms (flat keys)
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants that defaults alone cannot guarantee.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.Collection) == "":
		return fmt.Errorf("%w: collection must not be empty", ErrInvalidConfig)
	case c.ConnectTimeoutMS <= 0:
		return fmt.Errorf("%w: connect_timeout_ms must be positive", ErrInvalidConfig)
	case c.WriteTimeoutMS < 0:
		return fmt.Errorf("%w: write_timeout_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

func loadDotEnv() error {
	path, explicit := os.LookupEnv(envDotEnv)
	if !explicit || path == "" {
		path = defaultEnv
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: dotenv %s: %w", ErrLoadConfig, path, err)
	}
	return nil
}
