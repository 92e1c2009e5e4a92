// Package render draws boards as text or PNG images.
package render

import (
	"fmt"
	"io"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Renderer writes one board position to w.
type Renderer interface {
	Render(w io.Writer, b *chess.Board) error
}

// New returns the renderer selected by cfg. A configured sprite sheet is
// loaded here so that a bad path fails before any output is written.
func New(cfg config.RenderConfig) (Renderer, error) {
	switch cfg.Format {
	case config.RenderText, "":
		return &TextRenderer{Coordinates: cfg.Coordinates, ShowTurn: cfg.ShowTurn}, nil
	case config.RenderPNG:
		r := &PNGRenderer{SquareSize: cfg.SquareSize, Coordinates: cfg.Coordinates}
		if cfg.SpriteSheet != "" {
			sheet, err := LoadSpriteSheet(cfg.SpriteSheet)
			if err != nil {
				return nil, err
			}
			r.Sprites = sheet
		}
		return r, nil
	}
	return nil, fmt.Errorf("render format %q: %w", cfg.Format, errors.ErrInvalidConfig)
}
