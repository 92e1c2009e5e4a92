package chess

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Square is a board index in [0,63], row-major starting from A8.
// Row 0 is rank 8 (Black's back rank) and column 0 is the A file.
type Square int

// NoSquare is returned when a search finds nothing.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A1 Square = 56 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NewSquare returns the square at the given row and column.
func NewSquare(row, col int) Square {
	return Square(row*BoardSize + col)
}

// ParseSquare converts a square name such as "e4" or "E4" to its index.
// The file letter is case-insensitive.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrFormat)
	}
	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	rank := s[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrFormat)
	}
	return Square(int('8'-rank)*BoardSize + int(file-'A')), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Row returns the row, 0 for rank 8 through 7 for rank 1.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column, 0 for the A file through 7 for the H file.
func (s Square) Col() int {
	return int(s) % BoardSize
}

// File returns the uppercase file letter.
func (s Square) File() byte {
	return byte('A' + s.Col())
}

// Rank returns the rank digit.
func (s Square) Rank() byte {
	return byte('8' - s.Row())
}

// IsLight reports whether the square is a light square (A8 and H1 are light).
func (s Square) IsLight() bool {
	return (s.Row()+s.Col())%2 == 0
}

// Offset returns the square dRow rows and dCol columns away, and false if
// that falls off the board.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	row, col := s.Row()+dRow, s.Col()+dCol
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare, false
	}
	return NewSquare(row, col), true
}

// String returns the uppercase square name, e.g. "E4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}
