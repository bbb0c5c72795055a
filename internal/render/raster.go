package render

import (
	"image/color"

	"github.com/san-kum/intseq/internal/seq"
)

// Raster fills every pixel in row-major order, cycling through the sequence.
type Raster struct{}

func (Raster) Mode() Mode { return ModeRGB }

func (Raster) Render(s seq.Sequence, cfg Config) *Canvas {
	c := NewCanvas(cfg.Width, cfg.Height)
	m := cfg.Mapper()

	colors := make([]color.RGBA, len(s))
	for i, v := range s {
		colors[i] = m.Color(v)
	}

	i := 0
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c.Set(x, y, colors[i%len(colors)])
			i++
		}
	}
	return c
}
