package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
)

// TextRenderer prints the board as an 8x8 grid of FEN letters, rank 8 first,
// with '.' for empty squares.
type TextRenderer struct {
	// Coordinates adds rank numbers on the left and file letters underneath.
	Coordinates bool

	// ShowTurn adds a line naming the side to move and the move number.
	ShowTurn bool
}

// Render writes the grid to w.
func (r *TextRenderer) Render(w io.Writer, b *chess.Board) error {
	bw := bufio.NewWriter(w)

	for row := 0; row < chess.BoardSize; row++ {
		if r.Coordinates {
			fmt.Fprintf(bw, "%d ", chess.BoardSize-row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			piece := b.Get(chess.NewSquare(row, col))
			if piece == chess.Empty {
				bw.WriteByte('.')
			} else {
				bw.WriteByte(engine.ColouredPieceToFENLetter(piece))
			}
		}
		bw.WriteByte('\n')
	}

	if r.Coordinates {
		bw.WriteString("  a b c d e f g h\n")
	}
	if r.ShowTurn {
		fmt.Fprintf(bw, "%s to move (move %d)\n", b.ToMove, b.MoveNumber)
	}
	return bw.Flush()
}
