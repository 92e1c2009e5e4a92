package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/render"
	"github.com/lgbarn/pgn-replay-go/internal/replay"
)

// stepper pairs a session with the renderers that show it.
type stepper struct {
	a       *app
	session *replay.Session
	text    render.Renderer
	image   render.Renderer
}

// interactive steps through one game, reading one command per line from
// stdin. The board is printed after every move, and written to the -png
// file as well when one is given.
func (a *app) interactive(game *chess.Game) int {
	text, err := render.New(a.renderConfig(config.RenderText))
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitUsage
	}
	st := &stepper{a: a, session: a.newSession(game), text: text}
	if a.cfg.Render.Format == config.RenderPNG {
		if st.image, err = render.New(a.cfg.Render); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitUsage
		}
	}

	if ply := *a.flags.ply; ply > 0 {
		if err := seekOrStop(st.session, min(ply, st.session.PlyCount())); err != nil {
			fmt.Fprintf(a.stdout, "%v\n", err)
		}
	}
	if err := st.show(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitFailed
	}

	scanner := bufio.NewScanner(a.stdin)
	for {
		fmt.Fprint(a.stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout)
			return exitOK
		}
		quit, err := st.command(strings.Fields(scanner.Text()))
		if quit {
			return exitOK
		}
		if err != nil {
			fmt.Fprintf(a.stdout, "%v\n", err)
			continue
		}
		if err := st.show(); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitFailed
		}
	}
}

// command runs one interactive command. An empty line steps forward.
func (st *stepper) command(fields []string) (quit bool, err error) {
	s := st.session
	if len(fields) == 0 {
		return false, s.Forward()
	}
	switch fields[0] {
	case "n", "f":
		return false, s.Forward()
	case "b":
		return false, s.Back()
	case "s", "r":
		s.Reset()
		return false, nil
	case "e":
		return false, seekOrStop(s, s.PlyCount())
	case "g":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: g <ply>")
		}
		ply, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("bad ply %q", fields[1])
		}
		return false, s.Seek(ply)
	case "q":
		return true, nil
	}
	return false, fmt.Errorf("unknown command %q (n, b, g N, s, e, q)", fields[0])
}

// show prints the position line and the board.
func (st *stepper) show() error {
	s := st.session
	next := s.NextToken()
	if next == "" {
		next = "end"
	}
	fmt.Fprintf(st.a.stdout, "ply %d of %d, next: %s\n", s.Ply(), s.PlyCount(), next)
	if err := st.text.Render(st.a.stdout, s.Board()); err != nil {
		return err
	}
	if st.image != nil {
		return writeImage(st.image, *st.a.flags.pngFile, s.Board())
	}
	return nil
}
