package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is an opaque RGB pixel grid, black on creation.
type Canvas struct {
	img     *image.RGBA
	strokes []Stroke
}

// Stroke is one straight line drawn on the canvas, in canvas coordinates.
type Stroke struct {
	X0, Y0, X1, Y1 float64
	Width          int
	Color          color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing image. It stays owned by the canvas.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Strokes returns the lines drawn so far, in drawing order.
func (c *Canvas) Strokes() []Stroke { return c.strokes }

// Set paints one pixel and reports whether it was on the canvas.
func (c *Canvas) Set(x, y int, col color.RGBA) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	i := c.img.PixOffset(x, y)
	c.img.Pix[i+0] = col.R
	c.img.Pix[i+1] = col.G
	c.img.Pix[i+2] = col.B
	c.img.Pix[i+3] = 0xff
	return true
}

func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Float32 returns the pixels as a height x width x 3 buffer scaled to [0,1].
func (c *Canvas) Float32() []float32 {
	w, h := c.Width(), c.Height()
	out := make([]float32, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+3]
			out = append(out, float32(p[0])/255, float32(p[1])/255, float32(p[2])/255)
		}
	}
	return out
}
