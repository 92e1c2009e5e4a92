// Package engine resolves move notation against a board and applies it.
package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// Resolver turns notation tokens into board mutations.
//
// The zero value uses coarse shape filters when several pieces of the same
// kind could have made a move: knights by jump shape, bishops by square
// colour, and the first match in index order for rooks, queens and kings.
// Strict additionally requires a clear line for sliding pieces and a single
// step for kings, and reports any remaining ambiguity as ErrDisambiguation.
type Resolver struct {
	Strict bool
}

// NewGame returns a board set up in the standard starting position.
func NewGame() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// IsWhiteToMove reports whether White has the next move.
func IsWhiteToMove(board *chess.Board) bool {
	return board.IsWhiteToMove()
}

// ApplyMove moves whatever occupies from to to, replacing any occupant of to,
// and advances the turn. It does not validate the move. A king moving this
// way loses its castling right.
func ApplyMove(board *chess.Board, from, to chess.Square) {
	piece := board.Get(from)
	board.Set(from, chess.Empty)
	board.Set(to, piece)

	if chess.ExtractPiece(piece) == chess.King {
		board.SetKingMoved(chess.ExtractColour(piece))
	}
	board.AdvanceTurn()
}

// ApplyNotation applies one notation token for the side to move using the
// default Resolver.
func ApplyNotation(board *chess.Board, token string) error {
	return Resolver{}.ApplyNotation(board, token)
}

// ApplyNotation decodes the token, resolves its origin and applies it. On
// error the board is left unchanged.
func (r Resolver) ApplyNotation(board *chess.Board, token string) error {
	move, err := r.Resolve(board, token)
	if err != nil {
		return err
	}
	return r.Apply(board, move)
}

// Resolve decodes the token and fills in the origin square and captured
// piece for the side to move, without touching the board.
func (r Resolver) Resolve(board *chess.Board, token string) (*chess.Move, error) {
	move, err := parser.DecodeMove(token)
	if err != nil {
		return nil, err
	}

	colour := board.ToMove
	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		if board.KingMoved(colour) {
			return nil, fmt.Errorf("%q: %s: %w", token, colour, errors.ErrCastlingUnavailable)
		}
		return move, nil

	case chess.PawnMove:
		err = resolvePawnAdvance(board, move, colour)

	case chess.PawnCapture:
		err = resolvePawnCapture(board, move, colour)

	case chess.PieceMove:
		piece := chess.MakeColouredPiece(colour, move.PieceToMove)
		hint := Hint{File: move.FromFile, Rank: move.FromRank}
		move.From, err = r.LocatePiece(board, piece, move.To, hint)
		if err == nil {
			move.CapturedPiece = board.Get(move.To)
		}

	default:
		err = errors.ErrNotation
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", token, err)
	}
	return move, nil
}

// Apply performs a move that Resolve has filled in. Castling fails with
// ErrCastlingUnavailable, leaving the board alone, once the side's king has
// moved.
func (r Resolver) Apply(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		if err := Castle(board, colour, move.Class == chess.KingsideCastle); err != nil {
			return fmt.Errorf("%q: %w", move.Text, err)
		}
		return nil

	case chess.PawnMove, chess.PawnCapture:
		applyPawnMove(board, move, colour)
		return nil
	}

	ApplyMove(board, move.From, move.To)
	return nil
}
