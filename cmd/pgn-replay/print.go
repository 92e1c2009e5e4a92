package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/render"
	"github.com/lgbarn/pgn-replay-go/internal/replay"
)

// print shows every game at the requested ply: as a text board, a FEN line,
// or a PNG file per game.
func (a *app) print(games []*chess.Game) int {
	text, err := render.New(a.renderConfig(config.RenderText))
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitUsage
	}
	var image render.Renderer
	if a.cfg.Render.Format == config.RenderPNG {
		if image, err = render.New(a.cfg.Render); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitUsage
		}
	}

	code := exitOK
	for i, game := range games {
		s := a.newSession(game)
		target := *a.flags.ply
		if target < 0 {
			target = s.PlyCount()
		}
		if target > s.PlyCount() {
			fmt.Fprintf(a.stderr, "Error: %s, game %d has only %d plies\n", game.Name, a.gameNumber(i), s.PlyCount())
			code = exitFailed
			continue
		}
		if err := seekOrStop(s, target); err != nil {
			a.reportGameError(err, i)
			code = exitFailed
		}

		switch {
		case image != nil:
			path := pngPath(*a.flags.pngFile, i, len(games))
			if err := writeImage(image, path, s.Board()); err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n", err)
				code = exitFailed
				continue
			}
			fmt.Fprintf(a.stdout, "%s, game %d: ply %d written to %s\n", game.Name, a.gameNumber(i), s.Ply(), path)
		case *a.flags.fen:
			fmt.Fprintln(a.stdout, engine.BoardToFEN(s.Board()))
		default:
			if i > 0 {
				fmt.Fprintln(a.stdout)
			}
			fmt.Fprintf(a.stdout, "%s, game %d: ply %d of %d\n", game.Name, a.gameNumber(i), s.Ply(), s.PlyCount())
			if err := text.Render(a.stdout, s.Board()); err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n", err)
				return exitFailed
			}
		}
	}
	return code
}

// newSession starts a replay session with the configured resolver, logger
// and snapshot store.
func (a *app) newSession(game *chess.Game) *replay.Session {
	opts := []replay.Option{replay.WithResolver(a.resolver), replay.WithLogger(a.logger)}
	if a.store != nil {
		opts = append(opts, replay.WithStore(a.store))
	}
	return replay.New(game, opts...)
}

// gameNumber converts an index into the selected games to the number the
// user sees.
func (a *app) gameNumber(i int) int {
	if *a.flags.gameNum > 0 {
		return *a.flags.gameNum
	}
	return i + 1
}

// reportGameError prints a replay failure with the game number filled in.
func (a *app) reportGameError(err error, i int) {
	var ge *pgnerrors.GameError
	if stderrors.As(err, &ge) && ge.GameNum == 0 {
		ge.GameNum = a.gameNumber(i)
	}
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
}

// seekOrStop moves s to ply. When a move on the way cannot be resolved the
// session stops just before it and the error is returned.
func seekOrStop(s *replay.Session, ply int) error {
	err := s.Seek(ply)
	var ge *pgnerrors.GameError
	if stderrors.As(err, &ge) && ge.PlyNum > 0 {
		_ = s.Seek(ge.PlyNum - 1)
	}
	return err
}

// pngPath names the image for game i of n. A single game uses path as is;
// otherwise the game number goes before the extension.
func pngPath(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, filepath.Ext(path)), i+1, ext)
}

// writeImage renders b into a new file at path.
func writeImage(r render.Renderer, path string, b *chess.Board) error {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.Render(f, b); err != nil {
		f.Close() //nolint:errcheck,gosec // render error takes precedence
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
