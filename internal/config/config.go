// Package config provides configuration for pgn-replay.
//
// Values are layered: NewConfig defaults, then a YAML file (Load), then
// PGN_REPLAY_* environment variables (ApplyEnv), then command-line flags
// applied by the binary.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by ApplyEnv.
const EnvPrefix = "PGN_REPLAY_"

// Config holds all program configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	Render RenderConfig `yaml:"render"`

	// Workers is the number of goroutines used by batch checking.
	Workers int `yaml:"workers"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Engine:  *NewEngineConfig(),
		Log:     *NewLogConfig(),
		Store:   *NewStoreConfig(),
		Render:  *NewRenderConfig(),
		Workers: runtime.NumCPU(),
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto c. An empty document changes nothing.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// ApplyEnv overrides fields from PGN_REPLAY_* variables. Empty variables are
// ignored; values that do not parse are reported.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"LOG_LEVEL":     &c.Log.Level,
		"LOG_FORMAT":    &c.Log.Format,
		"LOG_FILE":      &c.Log.File,
		"STORE":         &c.Store.Backend,
		"STORE_PATH":    &c.Store.Path,
		"REDIS_URL":     &c.Store.RedisURL,
		"RENDER_FORMAT": &c.Render.Format,
		"SPRITE_SHEET":  &c.Render.SpriteSheet,
	}
	for name, field := range strs {
		if v := getenv(name); v != "" {
			*field = v
		}
	}

	bools := map[string]*bool{
		"STRICT":      &c.Engine.Strict,
		"COORDINATES": &c.Render.Coordinates,
	}
	for name, field := range bools {
		if v := getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return envError(name, v)
			}
			*field = b
		}
	}

	ints := map[string]*int{
		"SQUARE_SIZE": &c.Render.SquareSize,
		"WORKERS":     &c.Workers,
	}
	for name, field := range ints {
		if v := getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return envError(name, v)
			}
			*field = n
		}
	}

	if v := getenv("STORE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("STORE_TTL", v)
		}
		c.Store.TTL = d
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

func getenv(name string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + name))
}

func envError(name, value string) error {
	return fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, value, errors.ErrInvalidConfig)
}
