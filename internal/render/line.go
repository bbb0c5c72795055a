package render

import (
	"image/color"
	"math"
)

// DrawLine strokes a straight segment and records it. Pixels that fall
// outside the canvas are skipped; the rest of the segment is still drawn.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, width int, col color.RGBA) {
	if width < 1 {
		width = 1
	}
	c.strokes = append(c.strokes, Stroke{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: col})

	if !finite(x0, y0, x1, y1) {
		return
	}
	margin := float64(width + 2)
	cx0, cy0, cx1, cy1, ok := clipSegment(x0, y0, x1, y1,
		-margin, -margin, float64(c.Width())+margin, float64(c.Height())+margin)
	if !ok {
		return
	}
	if width == 1 {
		c.bresenham(round(cx0), round(cy0), round(cx1), round(cy1), col)
		return
	}
	c.thick(cx0, cy0, cx1, cy1, float64(width), col)
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// thick stamps the segment at half-pixel offsets along its normal.
func (c *Canvas) thick(x0, y0, x1, y1, width float64, col color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	half := (width - 1) / 2

	dist := math.Hypot(dx, dy)
	if dist < 1 {
		for ty := -half; ty <= half; ty++ {
			for tx := -half; tx <= half; tx++ {
				c.Set(round(x0+tx), round(y0+ty), col)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	px := -dy / dist
	py := dx / dist
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x0 + dx*t
		cy := y0 + dy*t
		for off := -half; off <= half; off += 0.5 {
			c.Set(round(cx+px*off), round(cy+py*off), col)
		}
	}
}

// clipSegment is Liang-Barsky against [minX,maxX] x [minY,maxY].
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx := x1 - x0
	dy := y1 - y0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
