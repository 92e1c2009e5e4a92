package main

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/worker"
)

// check replays every game on the worker pool and prints one line per game
// in input order. With crossCheck each game is also compared with the
// reference engine.
func (a *app) check(games []*chess.Game, crossCheck bool) int {
	results := worker.Run(games,
		worker.ReplayFunc(a.resolver, crossCheck),
		worker.WithWorkers(a.cfg.Workers),
		worker.WithLogger(a.logger),
	)

	failed := 0
	for _, r := range results {
		if !a.reportResult(r) {
			failed++
		}
	}

	fmt.Fprintf(a.stderr, "%d game(s) checked, %d failed.\n", len(results), failed)
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

// reportResult prints the status line for one game and reports whether it
// passed.
func (a *app) reportResult(r worker.ProcessResult) bool {
	name := fmt.Sprintf("%s, game %d", r.Game.Name, a.gameNumber(r.Index))
	switch {
	case r.Err != nil:
		var ge *pgnerrors.GameError
		if stderrors.As(r.Err, &ge) {
			ge.GameNum = a.gameNumber(r.Index)
			fmt.Fprintf(a.stdout, "FAIL %v\n", ge)
		} else {
			fmt.Fprintf(a.stdout, "FAIL %s: %v\n", name, r.Err)
		}
		return false
	case r.Report != nil && !r.Report.OK():
		fmt.Fprintf(a.stdout, "DIFF %s: %s\n", name, r.Report)
		return false
	case r.Report != nil:
		fmt.Fprintf(a.stdout, "ok   %s: %s\n", name, r.Report)
	default:
		fmt.Fprintf(a.stdout, "ok   %s: %d plies\n", name, r.Plies)
	}
	return true
}
