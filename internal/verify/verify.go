// Package verify replays a move record in lock step with a full rules
// engine and reports the first ply where the two boards disagree.
package verify

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// Report describes one verification run.
type Report struct {
	// Plies is the number of plies both engines applied.
	Plies int

	// DivergedAt is the 1-based ply after which the placements differ,
	// or 0 when they agree throughout.
	DivergedAt int

	// Ours and Reference are the placement fields at the divergence point,
	// or after the last ply when there is none.
	Ours      string
	Reference string

	// Err is set when either engine rejected a token.
	Err error
}

// OK reports whether the record replayed identically to the end.
func (r *Report) OK() bool {
	return r.DivergedAt == 0 && r.Err == nil
}

// String summarises the report on one line.
func (r *Report) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("stopped after %d plies: %v", r.Plies, r.Err)
	case r.DivergedAt > 0:
		return fmt.Sprintf("diverged at ply %d: ours %s, reference %s", r.DivergedAt, r.Ours, r.Reference)
	}
	return fmt.Sprintf("%d plies agree", r.Plies)
}

// Game replays the record through the resolver and through the reference
// engine. A non-nil error means the reference could not be set up; problems
// with individual tokens are recorded in the report.
func Game(game *chess.Game, resolver engine.Resolver) (*Report, error) {
	ours := engine.NewBoardForGame(game)

	var opts []func(*nchess.Game)
	if fen, ok := game.Tags["FEN"]; ok {
		if _, err := engine.NewBoardFromFEN(fen); err == nil {
			opt, err := nchess.FEN(fen)
			if err != nil {
				return nil, errors.Wrapf(err, "reference position %q", fen)
			}
			opts = append(opts, opt)
		}
	}
	ref := nchess.NewGame(opts...)

	report := &Report{}
	for ply, tok := range game.Tokens() {
		if err := resolver.ApplyNotation(ours, tok); err != nil {
			report.Err = &errors.GameError{Err: err, PlyNum: ply + 1, MoveText: tok}
			break
		}
		if err := ref.PushNotationMove(ReferenceToken(tok), nchess.AlgebraicNotation{}, nil); err != nil {
			report.Err = &errors.GameError{Err: fmt.Errorf("reference engine: %w", err), PlyNum: ply + 1, MoveText: tok}
			break
		}
		report.Plies = ply + 1

		report.Ours = engine.PlacementFEN(ours)
		report.Reference = ref.Position().Board().String()
		if report.Ours != report.Reference {
			report.DivergedAt = ply + 1
			break
		}
	}

	if report.Plies == 0 {
		report.Ours = engine.PlacementFEN(ours)
		report.Reference = ref.Position().Board().String()
	}
	return report, nil
}

// ReferenceToken rewrites the lenient spellings this engine accepts into
// standard algebraic notation. Check and annotation glyphs are dropped,
// zero-digit castling becomes letter O, an uppercase pawn square is
// lowercased and a bare promotion letter gains its "=".
func ReferenceToken(tok string) string {
	text := parser.StripSuffix(strings.TrimSpace(tok))

	switch {
	case text == "0-0" || text == "0-0-0":
		return strings.ReplaceAll(text, "0", "O")
	case len(text) == 2:
		return strings.ToLower(text)
	}

	n := len(text)
	if n >= 3 && text[0] >= 'a' && text[0] <= 'h' &&
		strings.IndexByte("QRBN", text[n-1]) >= 0 && text[n-2] >= '1' && text[n-2] <= '8' {
		return text[:n-1] + "=" + text[n-1:]
	}
	return text
}
