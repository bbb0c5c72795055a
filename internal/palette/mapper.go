// Package palette derives RGB colors from a single scalar. Red follows the
// value directly; green and blue follow copies of it shifted by one and two
// color offsets and wrapped around the value span.
package palette

import (
	"image/color"

	"github.com/san-kum/intseq/internal/numeric"
)

type Mapper struct {
	Range  ColorRange
	Offset float64
}

func NewMapper(r ColorRange, offset float64) Mapper {
	return Mapper{Range: r, Offset: offset}
}

// Channels returns the truncated channel values before they are saturated
// into a byte.
func (m Mapper) Channels(v float64) (r, g, b int) {
	lo, hi := m.Range.Value.Min, m.Range.Value.Max
	span := hi - lo
	c := numeric.Clamp(v, lo, hi)

	r = int(numeric.Remap(c, lo, hi, m.Range.Red.Min, m.Range.Red.Max))
	g = int(numeric.Remap(m.shift(c, m.Offset*span, span), lo, hi, m.Range.Green.Min, m.Range.Green.Max))
	b = int(numeric.Remap(m.shift(c, 2*m.Offset*span, span), lo, hi, m.Range.Blue.Min, m.Range.Blue.Max))
	return r, g, b
}

// shift moves c by delta and wraps it modulo span+1. A span of -1 or below
// would make the modulus meaningless, so the shift is returned unwrapped.
func (m Mapper) shift(c, delta, span float64) float64 {
	mod := span + 1
	if mod <= 0 {
		return c + delta
	}
	return numeric.FloorMod(c+delta, mod) + m.Range.Value.Min
}

func (m Mapper) Color(v float64) color.RGBA {
	r, g, b := m.Channels(v)
	return color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 0xff}
}

// Low and High are the two colors used by binary renderers.
func (m Mapper) Low() color.RGBA {
	return rgb(m.Range.Red.Min, m.Range.Green.Min, m.Range.Blue.Min)
}

func (m Mapper) High() color.RGBA {
	return rgb(m.Range.Red.Max, m.Range.Green.Max, m.Range.Blue.Max)
}

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: toByte(int(r)), G: toByte(int(g)), B: toByte(int(b)), A: 0xff}
}

func toByte(v int) uint8 {
	return uint8(numeric.Clamp(v, 0, 255))
}
