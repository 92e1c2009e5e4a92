package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Hint carries the optional origin file ('a'-'h') and rank ('1'-'8') named
// in a token such as "Nbd7" or "R1e2". Zero fields are unconstrained.
type Hint struct {
	File byte
	Rank byte
}

// matches reports whether sq satisfies the hint.
func (h Hint) matches(sq chess.Square) bool {
	if h.File != 0 && sq.Col() != int(h.File-'a') {
		return false
	}
	if h.Rank != 0 && sq.Rank() != h.Rank {
		return false
	}
	return true
}

// knightJumps pairs each index offset of a knight jump with the column
// distance it must cover, which rejects jumps that wrap around the board edge.
var knightJumps = []struct {
	offset  int
	colDist int
}{
	{17, 1}, {-17, 1},
	{15, 1}, {-15, 1},
	{10, 2}, {-10, 2},
	{6, 2}, {-6, 2},
}

// LocatePiece finds the square of the coloured piece that moves to target,
// using the default Resolver.
func LocatePiece(board *chess.Board, piece chess.Piece, target chess.Square, hint Hint) (chess.Square, error) {
	return Resolver{}.LocatePiece(board, piece, target, hint)
}

// LocatePiece scans the board in index order for the coloured piece. With
// target set to NoSquare the first square holding it is returned. Otherwise
// candidates are filtered by the hint and then by the piece's movement shape.
func (r Resolver) LocatePiece(board *chess.Board, piece chess.Piece, target chess.Square, hint Hint) (chess.Square, error) {
	kind := chess.ExtractPiece(piece)
	found := chess.NoSquare

	for _, sq := range board.Find(piece) {
		if !hint.matches(sq) {
			continue
		}
		if target != chess.NoSquare && !r.reaches(board, kind, sq, target) {
			continue
		}
		if !r.Strict || target == chess.NoSquare {
			return sq, nil
		}
		if found != chess.NoSquare {
			return chess.NoSquare, fmt.Errorf("%s on %v and %v can both reach %v: %w",
				piece, found, sq, target, errors.ErrDisambiguation)
		}
		found = sq
	}

	if found == chess.NoSquare {
		return chess.NoSquare, fmt.Errorf("no %s can reach %v: %w", piece, target, errors.ErrDisambiguation)
	}
	return found, nil
}

// reaches applies the movement filter for the resolver's mode.
func (r Resolver) reaches(board *chess.Board, kind chess.Piece, from, to chess.Square) bool {
	if r.Strict {
		return canPieceMove(board, kind, from, to)
	}

	switch kind {
	case chess.Knight:
		return isKnightJump(from, to)
	case chess.Bishop:
		return from.IsLight() == to.IsLight()
	}
	return true
}

// isKnightJump reports whether from and to are a knight's jump apart.
func isKnightJump(from, to chess.Square) bool {
	for _, j := range knightJumps {
		if int(to)-int(from) == j.offset && abs(to.Col()-from.Col()) == j.colDist {
			return true
		}
	}
	return false
}
