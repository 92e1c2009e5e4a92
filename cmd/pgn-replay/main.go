// pgn-replay replays chess move records: it prints or draws the position at
// any ply, checks whole files for moves it cannot resolve, and steps through
// a game interactively.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	"github.com/lgbarn/pgn-replay-go/internal/logging"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
	"github.com/lgbarn/pgn-replay-go/internal/store"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1 // some game or file could not be replayed
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries what every mode needs.
type app struct {
	cfg      *config.Config
	flags    *cliFlags
	logger   *zap.Logger
	resolver engine.Resolver
	store    store.Store
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pgn-replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := newFlags(fs)
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *f.version {
		fmt.Fprintf(stdout, "pgn-replay version %s\n", programVersion)
		return exitOK
	}

	cfg, err := loadConfig(f, fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger, closeLog, err := logging.NewWithWriter(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return exitUsage
	}
	defer closeLog() //nolint:errcheck // best effort on exit
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some platforms

	a := &app{
		cfg:      cfg,
		flags:    f,
		logger:   logger,
		resolver: engine.Resolver{Strict: cfg.Engine.Strict},
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}

	if *f.interactive && fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: -i needs an input file; commands are read from stdin")
		return exitUsage
	}

	games, readFailed := a.readInputs(fs.Args())
	games = selectGame(games, *f.gameNum)
	logger.Info("games read", zap.Int("games", len(games)), zap.Int("files", fs.NArg()))

	code := exitOK
	if readFailed {
		code = exitFailed
	}
	if len(games) == 0 {
		if *f.gameNum > 0 {
			fmt.Fprintf(stderr, "Error: no game %d in the input\n", *f.gameNum)
			return exitFailed
		}
		fmt.Fprintln(stderr, "No games found.")
		return code
	}

	var modeCode int
	switch {
	case *f.check || *f.verify:
		modeCode = a.check(games, *f.verify)
	default:
		st, err := store.Open(cfg.Store, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening snapshot store: %v\n", err)
			return exitUsage
		}
		if st != nil {
			defer st.Close() //nolint:errcheck // best effort on exit
			a.store = st
		}
		if *f.interactive {
			modeCode = a.interactive(games[0])
		} else {
			modeCode = a.print(games)
		}
	}

	if modeCode != exitOK {
		code = modeCode
	}
	return code
}

// loadConfig layers defaults, the config file, the environment and flags.
func loadConfig(f *cliFlags, fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.NewConfig()
	if *f.configFile != "" {
		loaded, err := config.Load(*f.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	applyFlags(cfg, f, fs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readInputs reads every named file, or stdin when there are none. A file
// that cannot be opened or read is reported and skipped; games read before
// a syntax error are kept.
func (a *app) readInputs(paths []string) ([]*chess.Game, bool) {
	if len(paths) == 0 {
		games, err := parser.NewReader(a.stdin, "stdin").ReadAllGames()
		if err != nil {
			fmt.Fprintf(a.stderr, "Error reading stdin: %v\n", err)
			return games, true
		}
		return games, false
	}

	var all []*chess.Game
	failed := false
	for _, path := range paths {
		games, err := parser.ReadFile(path)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error reading %s: %v\n", path, err)
			a.logger.Warn("read failed", zap.String("file", path), zap.Error(err))
			failed = true
		}
		all = append(all, games...)
	}
	return all, failed
}

// selectGame keeps only game n (1-indexed) when n is positive.
func selectGame(games []*chess.Game, n int) []*chess.Game {
	if n <= 0 {
		return games
	}
	if n > len(games) {
		return nil
	}
	return games[n-1 : n]
}

// renderConfig returns the render settings with the format replaced.
func (a *app) renderConfig(format string) config.RenderConfig {
	rc := a.cfg.Render
	rc.Format = format
	return rc
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: pgn-replay [options] [input-files...]\n\n")
	fmt.Fprintf(w, "Replays chess move records and shows the resulting positions.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nInteractive commands (-i):\n")
	fmt.Fprintf(w, "  n, <enter>  next ply\n")
	fmt.Fprintf(w, "  b           previous ply\n")
	fmt.Fprintf(w, "  g N         go to ply N\n")
	fmt.Fprintf(w, "  s, e        start or end of the game\n")
	fmt.Fprintf(w, "  q           quit\n")
	fmt.Fprintf(w, "\nEnvironment variables prefixed with %s override the config file.\n", config.EnvPrefix)
}
