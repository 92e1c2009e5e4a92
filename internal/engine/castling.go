package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// castleSquares holds the fixed king and rook squares for one castling move.
type castleSquares struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
}

// castleTable is indexed by colour, then kingside (0) or queenside (1).
var castleTable = [2][2]castleSquares{
	chess.Black: {
		{kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8},
		{kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8},
	},
	chess.White: {
		{kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1},
		{kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1},
	},
}

// Castle moves the king and rook of the colour to their castled squares and
// advances the turn. Only the king-moved flag is consulted: the squares in
// between, check, and rook history are not.
func Castle(board *chess.Board, colour chess.Colour, kingside bool) error {
	if board.KingMoved(colour) {
		return fmt.Errorf("%s: %w", colour, errors.ErrCastlingUnavailable)
	}

	side := 1
	if kingside {
		side = 0
	}
	sq := castleTable[colour][side]

	king := board.Get(sq.kingFrom)
	board.Set(sq.kingFrom, chess.Empty)
	board.Set(sq.kingTo, king)

	rook := board.Get(sq.rookFrom)
	board.Set(sq.rookFrom, chess.Empty)
	board.Set(sq.rookTo, rook)

	board.SetKingMoved(colour)
	board.AdvanceTurn()
	return nil
}
