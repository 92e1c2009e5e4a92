package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStrict enables strict origin resolution.
func (b *ConfigBuilder) WithStrict(enabled bool) *ConfigBuilder {
	b.cfg.Engine.Strict = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithJSONLogs switches the log encoder to JSON.
func (b *ConfigBuilder) WithJSONLogs(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Log.Format = "json"
	} else {
		b.cfg.Log.Format = "console"
	}
	return b
}

// WithBadgerStore caches snapshots in badger. An empty path keeps them in
// memory.
func (b *ConfigBuilder) WithBadgerStore(path string) *ConfigBuilder {
	b.cfg.Store.Backend = StoreBadger
	b.cfg.Store.Path = path
	return b
}

// WithRedisStore caches snapshots in redis.
func (b *ConfigBuilder) WithRedisStore(url string, ttl time.Duration) *ConfigBuilder {
	b.cfg.Store.Backend = StoreRedis
	b.cfg.Store.RedisURL = url
	b.cfg.Store.TTL = ttl
	return b
}

// WithPNG switches rendering to PNG with the given square size.
func (b *ConfigBuilder) WithPNG(squareSize int) *ConfigBuilder {
	b.cfg.Render.Format = RenderPNG
	b.cfg.Render.SquareSize = squareSize
	return b
}

// WithSpriteSheet sets the piece sprite sheet.
func (b *ConfigBuilder) WithSpriteSheet(path string) *ConfigBuilder {
	b.cfg.Render.SpriteSheet = path
	return b
}

// WithCoordinates controls file and rank labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Render.Coordinates = enabled
	return b
}

// WithWorkers sets the batch worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}
