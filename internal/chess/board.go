package chess

// Board holds the piece configuration and the turn state of one game.
type Board struct {
	// Squares is indexed by Square; empty squares hold Empty.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number, starting at 1.
	MoveNumber uint

	// Castling is gated only on whether each king has moved.
	WhiteKingMoved bool
	BlackKingMoved bool
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[NewSquare(0, col)] = B(backRank[col])
		b.Squares[NewSquare(1, col)] = B(Pawn)
		b.Squares[NewSquare(6, col)] = W(Pawn)
		b.Squares[NewSquare(7, col)] = W(backRank[col])
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.WhiteKingMoved = false
	b.BlackKingMoved = false
}

// Get returns the piece on the square, or Empty for off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// Each calls fn for all 64 squares in index order, empty ones included.
func (b *Board) Each(fn func(sq Square, piece Piece)) {
	for i, p := range b.Squares {
		fn(Square(i), p)
	}
}

// Find returns every square holding the given coloured piece, in index order.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for i, p := range b.Squares {
		if p == piece {
			squares = append(squares, Square(i))
		}
	}
	return squares
}

// KingMoved reports the castling flag for the colour.
func (b *Board) KingMoved(colour Colour) bool {
	if colour == White {
		return b.WhiteKingMoved
	}
	return b.BlackKingMoved
}

// SetKingMoved sets the castling flag for the colour.
func (b *Board) SetKingMoved(colour Colour) {
	if colour == White {
		b.WhiteKingMoved = true
	} else {
		b.BlackKingMoved = true
	}
}

// AdvanceTurn flips the side to move, counting a full move after Black.
func (b *Board) AdvanceTurn() {
	if b.ToMove == Black {
		b.MoveNumber++
	}
	b.ToMove = b.ToMove.Opposite()
}

// IsWhiteToMove reports whether White has the next move.
func (b *Board) IsWhiteToMove() bool {
	return b.ToMove == White
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
