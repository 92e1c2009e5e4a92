package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// OperaGame is Morphy's 1858 game against the Duke of Brunswick and Count
// Isouard: 33 plies with captures, checks and queenside castling.
const OperaGame = `[Event "Paris"]
[White "Paul Morphy"]
[Black "Duke Karl / Count Isouard"]
[Result "1-0"]

1. e4 e5 2. Nf3 d6 3. d4 Bg4 4. dxe5 Bxf3 5. Qxf3 dxe5 6. Bc4 Nf6
7. Qb3 Qe7 8. Nc3 c6 9. Bg5 b5 10. Nxb5 cxb5 11. Bxb5+ Nbd7
12. O-O-O Rd8 13. Rxd7 Rxd7 14. Rd1 Qe6 15. Bxd7+ Nxd7 16. Qb8+ Nxb8
17. Rd8# 1-0
`

// OperaFinalPlacement is the placement field after the last ply of OperaGame.
const OperaFinalPlacement = "1n1Rkb1r/p4ppp/4q3/4p1B1/4P3/8/PPP2PPP/2K5"

// ParseTestGame reads a move record and returns the first game, or nil if
// reading fails or the text holds no game.
func ParseTestGame(record string) *chess.Game {
	if games := ParseTestGames(record); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames reads every game in a move record.
// Returns nil if reading fails or no games are found.
func ParseTestGames(record string) []*chess.Game {
	games, err := parser.NewReader(strings.NewReader(record), "test").ReadAllGames()
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustParseGame reads a move record and returns the first game.
// It calls t.Fatal if reading fails or no games are found.
func MustParseGame(t *testing.T, record string) *chess.Game {
	t.Helper()
	game := ParseTestGame(record)
	if game == nil {
		t.Fatalf("failed to read test game:\n%s", record)
	}
	return game
}

// MustParseGames reads every game in a move record.
// It calls t.Fatal if reading fails or no games are found.
func MustParseGames(t *testing.T, record string) []*chess.Game {
	t.Helper()
	games := ParseTestGames(record)
	if len(games) == 0 {
		t.Fatalf("failed to read any games from:\n%s", record)
	}
	return games
}

// WriteFile writes content to name inside dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
