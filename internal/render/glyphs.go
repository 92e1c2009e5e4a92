package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// Piece outlines on a 100x100 canvas.
var glyphShapes = map[chess.Piece][]string{
	chess.Pawn: {
		`<circle cx="50" cy="32" r="13"/>`,
		`<path d="M30 85 L70 85 L62 50 L38 50 Z"/>`,
	},
	chess.Knight: {
		`<path d="M30 85 H72 C74 60 70 30 48 18 L44 26 C34 30 24 44 26 52 L36 54 L46 46 C44 60 32 70 30 85 Z"/>`,
	},
	chess.Bishop: {
		`<circle cx="50" cy="18" r="6"/>`,
		`<path d="M50 24 C36 36 34 56 42 68 H58 C66 56 64 36 50 24 Z"/>`,
		`<rect x="30" y="70" width="40" height="15"/>`,
	},
	chess.Rook: {
		`<path d="M28 85 H72 V78 H66 V42 H72 V25 H64 V32 H56 V25 H44 V32 H36 V25 H28 V42 H34 V78 H28 Z"/>`,
	},
	chess.Queen: {
		`<path d="M26 85 H74 L80 30 L64 56 L58 22 L50 52 L42 22 L36 56 L20 30 Z"/>`,
	},
	chess.King: {
		`<path d="M46 10 H54 V18 H62 V26 H54 V34 H46 V26 H38 V18 H46 Z"/>`,
		`<path d="M28 85 H72 L66 50 C66 38 34 38 34 50 Z"/>`,
	},
}

// Glyph fill colours.
var (
	whiteGlyph = color.RGBA{250, 250, 250, 255}
	blackGlyph = color.RGBA{34, 34, 34, 255}
)

type glyphKey struct {
	piece chess.Piece
	size  int
}

var (
	glyphCache   = map[glyphKey]*image.RGBA{}
	glyphCacheMu sync.RWMutex
)

// glyphSVG builds the SVG document for a coloured piece.
func glyphSVG(piece chess.Piece) ([]byte, error) {
	shapes, ok := glyphShapes[chess.ExtractPiece(piece)]
	if !ok {
		return nil, fmt.Errorf("no glyph for piece %v", piece)
	}
	fill, stroke := hex(whiteGlyph), hex(blackGlyph)
	if chess.ExtractColour(piece) == chess.Black {
		fill, stroke = hex(blackGlyph), hex(whiteGlyph)
	}

	style := fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="3" stroke-linejoin="round"/>`, fill, stroke)

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`)
	for _, s := range shapes {
		sb.WriteString(strings.TrimSuffix(s, "/>"))
		sb.WriteString(style)
	}
	sb.WriteString(`</svg>`)
	return []byte(sb.String()), nil
}

// renderGlyph rasterises a piece at size x size, transparent elsewhere.
func renderGlyph(piece chess.Piece, size int) (*image.RGBA, error) {
	key := glyphKey{piece: piece, size: size}

	glyphCacheMu.RLock()
	if img, ok := glyphCache[key]; ok {
		glyphCacheMu.RUnlock()
		return img, nil
	}
	glyphCacheMu.RUnlock()

	data, err := glyphSVG(piece)
	if err != nil {
		return nil, err
	}
	img, err := rasterize(data, size, size)
	if err != nil {
		return nil, fmt.Errorf("piece glyph: %w", err)
	}

	glyphCacheMu.Lock()
	glyphCache[key] = img
	glyphCacheMu.Unlock()
	return img, nil
}

// rasterize draws an SVG document onto a transparent w x h image.
func rasterize(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
