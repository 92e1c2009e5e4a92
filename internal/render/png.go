package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// Board colours.
var (
	LightSquare = color.RGBA{240, 217, 181, 255}
	DarkSquare  = color.RGBA{181, 136, 99, 255}
	Background  = color.RGBA{48, 46, 43, 255}
	LabelColour = color.RGBA{220, 220, 220, 255}
)

// labelMargin is the border reserved for coordinates.
const labelMargin = 16

// PNGRenderer draws the board as a PNG image.
type PNGRenderer struct {
	// SquareSize is the edge of one square in pixels.
	SquareSize int

	// Coordinates adds a border with file and rank labels.
	Coordinates bool

	// Sprites, when set, supplies the piece images. Otherwise pieces are
	// drawn as vector glyphs.
	Sprites *SpriteSheet
}

// Render encodes the board to w.
func (r *PNGRenderer) Render(w io.Writer, b *chess.Board) error {
	img, err := r.Image(b)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Image draws the board into a new RGBA image.
func (r *PNGRenderer) Image(b *chess.Board) (*image.RGBA, error) {
	size := r.SquareSize
	if size <= 0 {
		size = 60
	}
	margin := 0
	if r.Coordinates {
		margin = labelMargin
	}
	edge := size*chess.BoardSize + 2*margin

	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, xdraw.Src)

	squares, err := rasterize(boardSVG(size), size*chess.BoardSize, size*chess.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("board squares: %w", err)
	}
	origin := image.Pt(margin, margin)
	xdraw.Draw(img, squares.Bounds().Add(origin), squares, image.Point{}, xdraw.Over)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := b.Get(sq)
		if piece == chess.Empty {
			continue
		}
		dst := image.Rect(sq.Col()*size, sq.Row()*size, (sq.Col()+1)*size, (sq.Row()+1)*size).Add(origin)
		if err := r.drawPiece(img, dst, piece); err != nil {
			return nil, err
		}
	}

	if r.Coordinates {
		drawLabels(img, size, margin)
	}
	return img, nil
}

func (r *PNGRenderer) drawPiece(dst *image.RGBA, rect image.Rectangle, piece chess.Piece) error {
	if r.Sprites != nil {
		src, sr := r.Sprites.tile(piece)
		xdraw.CatmullRom.Scale(dst, rect, src, sr, xdraw.Over, nil)
		return nil
	}
	glyph, err := renderGlyph(piece, rect.Dx())
	if err != nil {
		return err
	}
	xdraw.Draw(dst, rect, glyph, image.Point{}, xdraw.Over)
	return nil
}

// boardSVG describes the 64 squares, a8 at the top left.
func boardSVG(size int) []byte {
	edge := size * chess.BoardSize
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		edge, edge, edge, edge)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		fill := DarkSquare
		if sq.IsLight() {
			fill = LightSquare
		}
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			sq.Col()*size, sq.Row()*size, size, size, hex(fill))
	}
	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}

// drawLabels writes file letters below the board and rank numbers to its
// left.
func drawLabels(img *image.RGBA, size, margin int) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(LabelColour), Face: face}
	ascent := face.Metrics().Ascent.Ceil()

	bottom := margin + size*chess.BoardSize
	for col := 0; col < chess.BoardSize; col++ {
		label := string(rune('a' + col))
		x := margin + col*size + (size-d.MeasureString(label).Ceil())/2
		d.Dot = fixed.P(x, bottom+(margin+ascent)/2)
		d.DrawString(label)
	}
	for row := 0; row < chess.BoardSize; row++ {
		label := string(rune('8' - row))
		x := (margin - d.MeasureString(label).Ceil()) / 2
		d.Dot = fixed.P(x, margin+row*size+(size+ascent)/2)
		d.DrawString(label)
	}
}
