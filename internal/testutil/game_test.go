package testutil

import (
	"os"
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/engine"
)

func TestParseTestGame(t *testing.T) {
	tests := []struct {
		name       string
		record     string
		wantNil    bool
		wantPlies  int
		wantWhite  string
		wantResult string
	}{
		{"opera game", OperaGame, false, 33, "Paul Morphy", "1-0"},
		{"empty", "", true, 0, "", ""},
		{"whitespace only", "   \n\t  ", true, 0, "", ""},
		{"no tags", "1. e4 e5 2. Nf3 *", false, 3, "", "*"},
		{"unterminated comment", "1. e4 {never closed", true, 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := ParseTestGame(tt.record)
			if (game == nil) != tt.wantNil {
				t.Fatalf("ParseTestGame() = %v, wantNil %v", game, tt.wantNil)
			}
			if game == nil {
				return
			}
			AssertEqual(t, game.PlyCount(), tt.wantPlies, "plies")
			AssertEqual(t, game.White(), tt.wantWhite, "White")
			AssertEqual(t, game.Result, tt.wantResult, "Result")
		})
	}
}

func TestOperaFixture(t *testing.T) {
	game := MustParseGame(t, OperaGame)
	board := engine.NewGame()
	for _, tok := range game.Tokens() {
		AssertNoError(t, engine.ApplyNotation(board, tok), tok)
	}
	AssertPlacement(t, board, OperaFinalPlacement)
}

func TestMustParseGames(t *testing.T) {
	games := MustParseGames(t, OperaGame+"\n1. d4 d5 *\n")
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	AssertEqual(t, games[1].Tokens(), []string{"d4", "d5"})
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "one.pgn", "1. e4 *\n")
	data, err := os.ReadFile(path)
	AssertNoError(t, err)
	AssertEqual(t, string(data), "1. e4 *\n")
}
