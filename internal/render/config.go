package render

import (
	"fmt"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/palette"
)

const (
	DefaultWidth       = 512
	DefaultHeight      = 512
	DefaultRule        = 30
	DefaultColorOffset = 0.33
	DefaultAngleScale  = 1.0
	DefaultLengthScale = 10.0
	DefaultLineWidth   = 1
)

// Config is a fully resolved render request.
type Config struct {
	Width, Height  int
	Mode           Mode
	Rule           uint8
	ColorOffset    float64
	Colors         palette.ColorRange
	AngleScale     float64
	LengthScale    float64
	LineWidth      int
	StartX, StartY float64
	Boundary       boundary.Policy
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Mode:        ModeRGB,
		Rule:        DefaultRule,
		ColorOffset: DefaultColorOffset,
		Colors:      palette.DefaultRange(),
		AngleScale:  DefaultAngleScale,
		LengthScale: DefaultLengthScale,
		LineWidth:   DefaultLineWidth,
		Boundary:    boundary.Clamp,
	}
}

func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return &ConfigError{Field: "size", Wrapped: fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)}
	}
	if !c.Mode.Valid() {
		return &ConfigError{Field: "mode", Wrapped: fmt.Errorf("%w: %d", ErrUnknownMode, int(c.Mode))}
	}
	if _, err := c.Boundary.MarshalText(); err != nil {
		return &ConfigError{Field: "boundary", Wrapped: err}
	}
	if c.LineWidth < 1 {
		return &ConfigError{Field: "line_width", Wrapped: ErrInvalidLineWidth}
	}
	if !(c.ColorOffset >= 0 && c.ColorOffset <= 1) {
		return &ConfigError{Field: "color_offset", Wrapped: fmt.Errorf("%w: %g", ErrInvalidOffset, c.ColorOffset)}
	}
	if err := c.Colors.Validate(); err != nil {
		return &ConfigError{Field: "colors", Wrapped: err}
	}
	return nil
}

func (c Config) Mapper() palette.Mapper {
	return palette.NewMapper(c.Colors, c.ColorOffset)
}
