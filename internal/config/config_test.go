package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Engine.Strict {
		t.Error("Strict should be false by default")
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" || cfg.Log.File != "" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Store.Backend != StoreNone || cfg.Store.TTL != 24*time.Hour {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Render.Format != RenderText || cfg.Render.SquareSize != 60 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if !cfg.Render.Coordinates || !cfg.Render.ShowTurn {
		t.Error("Coordinates and ShowTurn should be true by default")
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"json logs", func(c *Config) { c.Log.Format = "json" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"badger in memory", func(c *Config) { c.Store.Backend = StoreBadger }, false},
		{"redis without url", func(c *Config) { c.Store.Backend = StoreRedis }, true},
		{"redis with url", func(c *Config) {
			c.Store.Backend = StoreRedis
			c.Store.RedisURL = "redis://localhost:6379/0"
		}, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "mongo" }, true},
		{"negative ttl", func(c *Config) { c.Store.TTL = -time.Second }, true},
		{"png", func(c *Config) { c.Render.Format = RenderPNG }, false},
		{"bad render format", func(c *Config) { c.Render.Format = "svg" }, true},
		{"square too small", func(c *Config) { c.Render.SquareSize = MinSquareSize - 1 }, true},
		{"square too large", func(c *Config) { c.Render.SquareSize = MaxSquareSize + 1 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, pgnerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.yaml")
	data := `engine:
  strict: true
log:
  level: debug
store:
  backend: redis
  redis_url: redis://cache:6379/2
  ttl: 90m
render:
  format: png
  square_size: 48
workers: 3
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := NewConfig()
	want.Engine.Strict = true
	want.Log.Level = "debug"
	want.Store = StoreConfig{Backend: StoreRedis, RedisURL: "redis://cache:6379/2", TTL: 90 * time.Minute}
	want.Render.Format = RenderPNG
	want.Render.SquareSize = 48
	want.Workers = 3

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	path := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  strickt: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, pgnerrors.ErrInvalidConfig) {
		t.Errorf("unknown key error = %v, want ErrInvalidConfig", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Decode(strings.NewReader("")); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(NewConfig(), cfg); diff != "" {
		t.Errorf("empty document changed config (-want +got):\n%s", diff)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PGN_REPLAY_STRICT", "true")
	t.Setenv("PGN_REPLAY_LOG_LEVEL", "info")
	t.Setenv("PGN_REPLAY_STORE", "badger")
	t.Setenv("PGN_REPLAY_STORE_PATH", " /var/cache/replay ")
	t.Setenv("PGN_REPLAY_STORE_TTL", "2h")
	t.Setenv("PGN_REPLAY_SQUARE_SIZE", "32")
	t.Setenv("PGN_REPLAY_COORDINATES", "false")
	t.Setenv("PGN_REPLAY_WORKERS", "")

	cfg := NewConfig()
	workers := cfg.Workers
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if !cfg.Engine.Strict {
		t.Error("Strict not applied")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Store.Backend != StoreBadger || cfg.Store.Path != "/var/cache/replay" || cfg.Store.TTL != 2*time.Hour {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Render.SquareSize != 32 || cfg.Render.Coordinates {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Workers != workers {
		t.Errorf("empty variable changed Workers to %d", cfg.Workers)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"PGN_REPLAY_STRICT":      "maybe",
		"PGN_REPLAY_WORKERS":     "many",
		"PGN_REPLAY_STORE_TTL":   "forever",
		"PGN_REPLAY_SQUARE_SIZE": "1.5",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			err := NewConfig().ApplyEnv()
			if !errors.Is(err, pgnerrors.ErrInvalidConfig) {
				t.Fatalf("ApplyEnv() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error %q does not name %s", err, name)
			}
		})
	}
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithStrict(true).
		WithLogLevel("debug").
		WithJSONLogs(true).
		WithRedisStore("redis://localhost:6379/0", time.Minute).
		WithPNG(40).
		WithSpriteSheet("pieces.png").
		WithCoordinates(false).
		WithWorkers(2).
		Build()

	want := &Config{
		Engine:  EngineConfig{Strict: true},
		Log:     LogConfig{Level: "debug", Format: "json"},
		Store:   StoreConfig{Backend: StoreRedis, RedisURL: "redis://localhost:6379/0", TTL: time.Minute},
		Render:  RenderConfig{Format: RenderPNG, SquareSize: 40, SpriteSheet: "pieces.png", ShowTurn: true},
		Workers: 2,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("builder mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config should validate: %v", err)
	}

	badger := NewConfigBuilder().WithBadgerStore("").WithJSONLogs(false).Build()
	if badger.Store.Backend != StoreBadger || badger.Store.Path != "" || badger.Log.Format != "console" {
		t.Errorf("badger config = %+v %+v", badger.Store, badger.Log)
	}
}
