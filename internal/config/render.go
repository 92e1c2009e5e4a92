package config

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Render formats.
const (
	RenderText = "text"
	RenderPNG  = "png"
)

// Square size limits for PNG output, in pixels.
const (
	MinSquareSize = 16
	MaxSquareSize = 256
)

// RenderConfig holds settings for board output.
type RenderConfig struct {
	// Format is text or png.
	Format string `yaml:"format"`

	// SquareSize is the edge of one PNG square in pixels.
	SquareSize int `yaml:"square_size"`

	// SpriteSheet is a PNG of 100x100 piece tiles. Empty draws vector pieces.
	SpriteSheet string `yaml:"sprite_sheet"`

	// Coordinates prints file and rank labels.
	Coordinates bool `yaml:"coordinates"`

	// ShowTurn adds the side to move under a text board.
	ShowTurn bool `yaml:"show_turn"`
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format:      RenderText,
		SquareSize:  60,
		Coordinates: true,
		ShowTurn:    true,
	}
}

// Validate checks the format and square size.
func (r *RenderConfig) Validate() error {
	if r.Format != RenderText && r.Format != RenderPNG {
		return fmt.Errorf("render format %q: %w", r.Format, errors.ErrInvalidConfig)
	}
	if r.SquareSize < MinSquareSize || r.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d outside %d..%d: %w",
			r.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
