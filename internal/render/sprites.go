package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// SpriteTile is the edge of one piece tile in a sprite sheet.
const SpriteTile = 100

// spriteColumn is the tile column of each piece kind. Row 0 holds the white
// pieces and row 1 the black ones.
var spriteColumn = map[chess.Piece]int{
	chess.King:   0,
	chess.Queen:  1,
	chess.Bishop: 2,
	chess.Knight: 3,
	chess.Rook:   4,
	chess.Pawn:   5,
}

// SpriteRect returns the tile of a coloured piece within the sheet, or an
// empty rectangle for Empty.
func SpriteRect(piece chess.Piece) image.Rectangle {
	col, ok := spriteColumn[chess.ExtractPiece(piece)]
	if !ok {
		return image.Rectangle{}
	}
	row := 0
	if chess.ExtractColour(piece) == chess.Black {
		row = 1
	}
	return image.Rect(col*SpriteTile, row*SpriteTile, (col+1)*SpriteTile, (row+1)*SpriteTile)
}

// SpriteSheet is a decoded piece sheet: six 100x100 tiles per row, white
// pieces on the first row and black on the second.
type SpriteSheet struct {
	img image.Image
}

// NewSpriteSheet checks that img is large enough to hold every tile.
func NewSpriteSheet(img image.Image) (*SpriteSheet, error) {
	b := img.Bounds()
	if b.Dx() < 6*SpriteTile || b.Dy() < 2*SpriteTile {
		return nil, fmt.Errorf("sprite sheet is %dx%d, need at least %dx%d: %w",
			b.Dx(), b.Dy(), 6*SpriteTile, 2*SpriteTile, errors.ErrInvalidConfig)
	}
	return &SpriteSheet{img: img}, nil
}

// LoadSpriteSheet reads a PNG sprite sheet.
func LoadSpriteSheet(path string) (*SpriteSheet, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, errors.Wrap(err, "sprite sheet")
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode sprite sheet %s", path)
	}
	return NewSpriteSheet(img)
}

// tile returns the sub-image for piece, offset by the sheet's origin.
func (s *SpriteSheet) tile(piece chess.Piece) (image.Image, image.Rectangle) {
	r := SpriteRect(piece).Add(s.img.Bounds().Min)
	return s.img, r
}
