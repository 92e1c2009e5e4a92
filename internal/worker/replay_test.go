package worker

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

const threeGames = `[Event "Scholar"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0

[Event "Broken"]

1. e4 e5 2. Nf6 *

[Event "Rook lift"]
[FEN "4k3/8/8/8/8/8/8/R3K2R w - - 0 1"]

1. Rf1 Kd7 *
`

func readAll(t *testing.T, record string) []*chess.Game {
	t.Helper()
	games, err := parser.NewReader(strings.NewReader(record), "batch").ReadAllGames()
	if err != nil {
		t.Fatalf("ReadAllGames: %v", err)
	}
	return games
}

func TestReplayFunc(t *testing.T) {
	games := readAll(t, threeGames)
	results := Run(games, ReplayFunc(engine.Resolver{}, false), WithWorkers(3))
	if len(results) != 3 {
		t.Fatalf("results = %d; want 3", len(results))
	}

	if results[0].Err != nil || results[0].Plies != 7 {
		t.Errorf("game 1: plies %d, err %v", results[0].Plies, results[0].Err)
	}
	if got := engine.PlacementFEN(results[0].Board); got != "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR" {
		t.Errorf("game 1 placement = %s", got)
	}

	var ge *pgnerrors.GameError
	if !errors.As(results[1].Err, &ge) {
		t.Fatalf("game 2 error = %v; want *GameError", results[1].Err)
	}
	if ge.GameNum != 2 || ge.PlyNum != 3 || ge.MoveText != "Nf6" {
		t.Errorf("GameError = game %d ply %d %q", ge.GameNum, ge.PlyNum, ge.MoveText)
	}
	if !errors.Is(results[1].Err, pgnerrors.ErrDisambiguation) {
		t.Errorf("game 2 error = %v; want ErrDisambiguation", results[1].Err)
	}
	if results[1].Plies != 2 {
		t.Errorf("game 2 plies = %d; want 2", results[1].Plies)
	}

	if results[2].Err != nil || results[2].Plies != 2 {
		t.Errorf("game 3: plies %d, err %v", results[2].Plies, results[2].Err)
	}
	for _, result := range results {
		if result.Report != nil {
			t.Errorf("game %d has a report without cross-checking", result.Index+1)
		}
	}
}

func TestReplayFunc_CrossCheck(t *testing.T) {
	games := readAll(t, threeGames)

	tests := []struct {
		name     string
		resolver engine.Resolver
		wantOK   []bool
	}{
		{"default", engine.Resolver{}, []bool{true, false, false}},
		{"strict", engine.Resolver{Strict: true}, []bool{true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Run(games, ReplayFunc(tt.resolver, true), WithWorkers(2))
			for i, result := range results {
				// A failed replay is never cross-checked.
				if result.Err != nil {
					if tt.wantOK[i] {
						t.Errorf("game %d: %v", i+1, result.Err)
					}
					continue
				}
				if result.Report == nil {
					t.Fatalf("game %d: missing report", i+1)
				}
				if result.Report.OK() != tt.wantOK[i] {
					t.Errorf("game %d: %s", i+1, result.Report)
				}
			}
		})
	}
}

func TestPool_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	games := readAll(t, threeGames)

	Run(games, ReplayFunc(engine.Resolver{}, false), WithLogger(zap.New(core)))

	entries := logs.FilterMessage("game failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d failures; want 1", len(entries))
	}
	if got := entries[0].ContextMap()["game"]; got != int64(2) {
		t.Errorf("logged game = %v; want 2", got)
	}
}
