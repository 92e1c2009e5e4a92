package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// backRow returns the row step from a destination toward the colour's own
// back rank.
func backRow(colour chess.Colour) int {
	return -chess.ColourOffset(colour) / chess.BoardSize
}

// resolvePawnAdvance finds the origin of a straight pawn move. The square
// one behind the destination wins; otherwise the square two behind, if the
// square in between is empty.
func resolvePawnAdvance(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	step := backRow(colour)

	if from, ok := move.To.Offset(step, 0); ok && board.Get(from) == pawn {
		move.From = from
		return nil
	}

	middle, ok1 := move.To.Offset(step, 0)
	from, ok2 := move.To.Offset(2*step, 0)
	if ok1 && ok2 && board.Get(from) == pawn && board.Get(middle) == chess.Empty {
		move.From = from
		return nil
	}

	return fmt.Errorf("no %s pawn can reach %v: %w", colour, move.To, errors.ErrDisambiguation)
}

// resolvePawnCapture finds the origin of a diagonal pawn move: one row back
// toward the mover, on the attacker's file. An empty destination with an
// enemy pawn beside the origin is an en passant capture.
func resolvePawnCapture(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	fromCol := int(move.FromFile - 'a')

	from, ok := move.To.Offset(backRow(colour), fromCol-move.To.Col())
	if !ok || board.Get(from) != pawn {
		return fmt.Errorf("no %s pawn on the %c file can capture on %v: %w",
			colour, move.FromFile, move.To, errors.ErrDisambiguation)
	}
	move.From = from
	move.CapturedPiece = board.Get(move.To)

	if move.CapturedPiece == chess.Empty {
		beside := chess.NewSquare(from.Row(), move.To.Col())
		if board.Get(beside) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
			move.EnPassant = true
			move.CapturedPiece = board.Get(beside)
		}
	}
	return nil
}

// applyPawnMove performs a resolved pawn move, including en passant removal
// and promotion.
func applyPawnMove(board *chess.Board, move *chess.Move, colour chess.Colour) {
	if move.EnPassant {
		board.Set(chess.NewSquare(move.From.Row(), move.To.Col()), chess.Empty)
	}

	ApplyMove(board, move.From, move.To)

	if move.IsPromotion() {
		board.Set(move.To, chess.MakeColouredPiece(colour, move.PromotedPiece))
	}
}
