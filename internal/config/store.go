package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Snapshot store backends.
const (
	StoreNone   = "none"
	StoreBadger = "badger"
	StoreRedis  = "redis"
)

// StoreConfig selects where replay sessions cache board snapshots.
type StoreConfig struct {
	// Backend is none, badger or redis.
	Backend string `yaml:"backend"`

	// Path is the badger directory. Empty keeps the database in memory.
	Path string `yaml:"path"`

	// RedisURL is a redis:// URL, required for the redis backend.
	RedisURL string `yaml:"redis_url"`

	// TTL bounds how long redis keeps a snapshot. Zero means no expiry.
	TTL time.Duration `yaml:"ttl"`
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Backend: StoreNone,
		TTL:     24 * time.Hour,
	}
}

// Validate checks the backend name and its required settings.
func (s *StoreConfig) Validate() error {
	switch s.Backend {
	case StoreNone, StoreBadger:
	case StoreRedis:
		if s.RedisURL == "" {
			return fmt.Errorf("redis store needs a URL: %w", errors.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("store backend %q: %w", s.Backend, errors.ErrInvalidConfig)
	}
	if s.TTL < 0 {
		return fmt.Errorf("store ttl %v: %w", s.TTL, errors.ErrInvalidConfig)
	}
	return nil
}
