package engine

import "github.com/lgbarn/pgn-replay-go/internal/chess"

// canPieceMove checks if a piece can move from one square to another with
// nothing in the way.
func canPieceMove(board *chess.Board, pieceType chess.Piece, from, to chess.Square) bool {
	if from == to {
		return false
	}
	colDiff := abs(to.Col() - from.Col())
	rowDiff := abs(to.Row() - from.Row())

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff != rowDiff && colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row() - from.Row())
	colDir := sign(to.Col() - from.Col())

	sq, ok := from.Offset(rowDir, colDir)
	for ok && sq != to {
		if board.Get(sq) != chess.Empty {
			return false
		}
		sq, ok = sq.Offset(rowDir, colDir)
	}
	return ok
}
