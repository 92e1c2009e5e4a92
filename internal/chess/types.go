// Package chess provides core chess types: squares, pieces, the board and
// the move record of a game.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a piece kind, or a coloured piece once combined with a
// colour via MakeColouredPiece. The zero value is an empty square.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	if k := ExtractPiece(p); k > Empty && k < NumPieceValues {
		return ExtractColour(p).String() + " " + names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter maps an uppercase SAN piece letter to its kind.
// Returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	}
	return Empty
}

// MoveClass categorizes the notation shapes the resolver understands.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnCapture
	PieceMove
	KingsideCastle
	QueensideCastle
	UnknownMove
)

// String returns a short name for the move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "pawn move"
	case PawnCapture:
		return "pawn capture"
	case PieceMove:
		return "piece move"
	case KingsideCastle:
		return "kingside castle"
	case QueensideCastle:
		return "queenside castle"
	}
	return "unknown"
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// ColourOffset returns the index step a pawn of the colour makes when it
// advances one rank: -8 for White (toward rank 8, row 0), +8 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -BoardSize
	}
	return BoardSize
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// Result tokens that terminate a move record.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// IsResult reports whether tok is a game termination marker.
func IsResult(tok string) bool {
	switch tok {
	case WhiteWins, BlackWins, Draw, Unfinished:
		return true
	}
	return false
}
