package render

import "image/color"

// DrawState is the cursor of a path renderer. Heading is in degrees and is
// only advanced by the cumulative walk.
type DrawState struct {
	X, Y    float64
	Heading float64
}

func (c Config) Start() DrawState {
	return DrawState{X: c.StartX, Y: c.StartY}
}

// Pixel is a single painted point produced by a step.
type Pixel struct {
	X, Y  int
	Color color.RGBA
}

// Segment is a line produced by a walk step, from the step's start point to
// its raw endpoint.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}
