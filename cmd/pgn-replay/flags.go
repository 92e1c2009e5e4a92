// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/pgn-replay-go/internal/config"
)

// cliFlags holds the parsed command-line options. Flags override the config
// file and environment only when given explicitly.
type cliFlags struct {
	// Configuration
	configFile *string

	// Modes
	check       *bool
	verify      *bool
	interactive *bool
	version     *bool

	// Position selection
	ply     *int
	gameNum *int
	fen     *bool
	strict  *bool

	// Rendering
	pngFile     *string
	squareSize  *int
	spriteSheet *string
	coordinates *bool

	// Snapshot store
	storeBackend *string
	storePath    *string
	redisURL     *string

	// Logging
	logLevel *string
	logJSON  *bool
	logFile  *string

	// Performance
	workers *int
}

// newFlags registers the options on fs.
func newFlags(fs *flag.FlagSet) *cliFlags {
	return &cliFlags{
		configFile: fs.String("config", "", "YAML configuration file"),

		check:       fs.Bool("check", false, "Replay every game and report the first bad move of each"),
		verify:      fs.Bool("verify", false, "Like -check, and compare every position with a full rules engine"),
		interactive: fs.Bool("i", false, "Step through a game interactively, reading commands from stdin"),
		version:     fs.Bool("version", false, "Show version"),

		ply:     fs.Int("ply", -1, "Show the position after N plies (-1 = end of game)"),
		gameNum: fs.Int("game", 0, "Only use game N of the input (1-indexed, 0 = all; -i uses the first)"),
		fen:     fs.Bool("fen", false, "Print positions as FEN instead of a board"),
		strict:  fs.Bool("strict", false, "Reject ambiguous moves and moves through occupied squares"),

		pngFile:     fs.String("png", "", "Write the position as a PNG image to this file"),
		squareSize:  fs.Int("square", 0, "PNG square size in pixels"),
		spriteSheet: fs.String("sprites", "", "PNG sprite sheet for pieces (600x200, kings to pawns, white row first)"),
		coordinates: fs.Bool("coords", true, "Draw file and rank labels"),

		storeBackend: fs.String("store", "", "Snapshot store: none, badger, redis"),
		storePath:    fs.String("store-path", "", "Badger directory (empty = in memory)"),
		redisURL:     fs.String("redis-url", "", "Redis URL for the redis store"),

		logLevel: fs.String("log-level", "", "Log level: debug, info, warn, error"),
		logJSON:  fs.Bool("log-json", false, "Write logs as JSON"),
		logFile:  fs.String("log-file", "", "Also append logs to this file"),

		workers: fs.Int("j", 0, "Number of worker goroutines for -check (0 = config or CPU count)"),
	}
}

// applyFlags applies explicitly set command-line flags to the configuration.
func applyFlags(cfg *config.Config, f *cliFlags, fs *flag.FlagSet) {
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	applyEngineFlags(cfg, f, set)
	applyRenderFlags(cfg, f, set)
	applyStoreFlags(cfg, f, set)
	applyLogFlags(cfg, f, set)

	if set["j"] && *f.workers > 0 {
		cfg.Workers = *f.workers
	}
}

// applyEngineFlags configures move resolution.
func applyEngineFlags(cfg *config.Config, f *cliFlags, set map[string]bool) {
	if set["strict"] {
		cfg.Engine.Strict = *f.strict
	}
}

// applyRenderFlags configures board output.
func applyRenderFlags(cfg *config.Config, f *cliFlags, set map[string]bool) {
	if *f.pngFile != "" {
		cfg.Render.Format = config.RenderPNG
	}
	if set["square"] {
		cfg.Render.SquareSize = *f.squareSize
	}
	if set["sprites"] {
		cfg.Render.SpriteSheet = *f.spriteSheet
	}
	if set["coords"] {
		cfg.Render.Coordinates = *f.coordinates
	}
}

// applyStoreFlags configures the snapshot store.
func applyStoreFlags(cfg *config.Config, f *cliFlags, set map[string]bool) {
	if set["store"] {
		cfg.Store.Backend = *f.storeBackend
	}
	if set["store-path"] {
		cfg.Store.Path = *f.storePath
	}
	if set["redis-url"] {
		cfg.Store.RedisURL = *f.redisURL
		if !set["store"] {
			cfg.Store.Backend = config.StoreRedis
		}
	}
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, f *cliFlags, set map[string]bool) {
	if set["log-level"] {
		cfg.Log.Level = *f.logLevel
	}
	if set["log-json"] {
		if *f.logJSON {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if set["log-file"] {
		cfg.Log.File = *f.logFile
	}
}
