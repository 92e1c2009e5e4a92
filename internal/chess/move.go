package chess

// Move is a decoded notation token. Decoding fills Class, PieceToMove, To,
// the optional origin hints and PromotedPiece; resolving against a board
// fills From and CapturedPiece.
type Move struct {
	// The move text as it appeared in the record (e.g., "Nf3", "e4", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece kind being moved (Pawn for pawn moves, King for castling).
	PieceToMove Piece

	// Destination square (NoSquare for castling).
	To Square

	// Origin hints from the token: file letter 'a'-'h' and rank digit
	// '1'-'8', zero when absent. A pawn capture always carries FromFile.
	FromFile byte
	FromRank byte

	// Resolved origin square (NoSquare until resolved).
	From Square

	// The piece captured (Empty if none).
	CapturedPiece Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Whether a diagonal pawn move removed a pawn beside its origin.
	EnPassant bool
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		Class:         UnknownMove,
		To:            NoSquare,
		From:          NoSquare,
		CapturedPiece: Empty,
		PromotedPiece: Empty,
	}
}

// IsCapture returns true if this move took a piece.
func (m *Move) IsCapture() bool {
	return m.CapturedPiece != Empty || m.EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.PromotedPiece != Empty
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// HasHint reports whether the token named an origin file or rank.
func (m *Move) HasHint() bool {
	return m.FromFile != 0 || m.FromRank != 0
}
