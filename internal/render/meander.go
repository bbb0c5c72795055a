package render

import (
	"image/color"
	"math"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/numeric"
	"github.com/san-kum/intseq/internal/seq"
)

// Direction is one of eight compass moves, clockwise from Up.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var directionDeltas = [8][2]float64{
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

func (d Direction) Delta() (dx, dy float64) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// DirectionOf maps v from the value range onto 0..7. Values outside the
// range can land outside 0..7, in which case ok is false and the walk holds
// still for that step.
func DirectionOf(v, lo, hi float64) (d Direction, ok bool) {
	f := math.Floor(numeric.Remap(v, lo, hi, 0, 7))
	if !(f >= 0 && f <= 7) {
		return 0, false
	}
	return Direction(f), true
}

// MeanderStep advances the cursor by one value and returns the pixel to paint,
// if any.
//
// Under Bounce the cursor itself is clamped back onto the canvas and its
// direction is never reflected. The step paints the clamped cursor only when
// it left through the top or bottom edge.
func MeanderStep(st DrawState, v float64, cfg Config) (DrawState, Pixel, bool) {
	col := cfg.Mapper().Color(v)
	return meanderStep(st, v, cfg, col)
}

func meanderStep(st DrawState, v float64, cfg Config, col color.RGBA) (DrawState, Pixel, bool) {
	w, h := cfg.Width, cfg.Height
	if d, ok := DirectionOf(v, cfg.Colors.Value.Min, cfg.Colors.Value.Max); ok {
		dx, dy := d.Delta()
		st.X += dx * cfg.LengthScale
		st.Y += dy * cfg.LengthScale
	}

	px, py := st.X, st.Y
	switch cfg.Boundary {
	case boundary.Clamp:
		px, py = boundary.ClampPoint(st.X, st.Y, w, h)
	case boundary.Wrap:
		px, py = boundary.WrapPoint(st.X, st.Y, w, h)
	case boundary.Bounce:
		if boundary.OutX(st.X, w) {
			st.X = numeric.Clamp(st.X, 0, float64(w-1))
		}
		// Only a vertical overflow moves the painted point onto the clamped
		// cursor. A horizontal-only overflow paints nothing this step.
		if boundary.OutY(st.Y, h) {
			st.Y = numeric.Clamp(st.Y, 0, float64(h-1))
			px, py = st.X, st.Y
		}
	}

	if !boundary.In(px, py, w, h) {
		return st, Pixel{}, false
	}
	return st, Pixel{X: int(px), Y: int(py), Color: col}, true
}

// Meander walks one compass step per value and paints where it lands.
type Meander struct{}

func (Meander) Mode() Mode { return ModeMeander }

func (Meander) Render(s seq.Sequence, cfg Config) *Canvas {
	c := NewCanvas(cfg.Width, cfg.Height)
	m := cfg.Mapper()
	st := cfg.Start()
	for _, v := range s {
		var px Pixel
		var ok bool
		st, px, ok = meanderStep(st, v, cfg, m.Color(v))
		if ok {
			c.Set(px.X, px.Y, px.Color)
		}
	}
	return c
}
