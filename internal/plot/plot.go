// Package plot draws sequences as line charts, either as raster images or as
// terminal text.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"sync"

	"github.com/guptarohit/asciigraph"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/intseq/internal/numeric"
	"github.com/san-kum/intseq/internal/render"
	"github.com/san-kum/intseq/internal/seq"
)

const (
	EmptySize = 100

	marginLeft   = 72
	marginRight  = 24
	marginTop    = 40
	marginBottom = 52
	ticks        = 5
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	axisColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	gridColor  = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	lineColor  = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	textColor  = image.NewUniform(color.RGBA{0x00, 0x00, 0x00, 0xff})
)

type Options struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultOptions() Options {
	return Options{
		Title:  "Sequence Plot",
		XLabel: "Index",
		YLabel: "Value",
		Width:  640,
		Height: 480,
	}
}

var regular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func newFace(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, fmt.Errorf("plot: parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Chart draws s as a line chart. An empty sequence yields a small black image.
func Chart(s seq.Sequence, opts Options) (*image.RGBA, error) {
	if len(s) == 0 {
		return render.NewCanvas(EmptySize, EmptySize).Image(), nil
	}
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("plot: %dx%d leaves no room for the chart", opts.Width, opts.Height)
	}

	face, err := newFace(13)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	c := render.NewCanvas(opts.Width, opts.Height)
	c.Fill(background)

	x0, x1 := float64(marginLeft), float64(opts.Width-marginRight)
	y0, y1 := float64(opts.Height-marginBottom), float64(marginTop)

	lo, hi := s.MinMax()
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	last := float64(len(s) - 1)
	if last == 0 {
		last = 1
	}

	d := &font.Drawer{Dst: c.Image(), Src: textColor, Face: face}

	for i := 0; i <= ticks; i++ {
		f := float64(i) / ticks
		gx := x0 + f*(x1-x0)
		gy := y0 + f*(y1-y0)
		c.DrawLine(gx, y0, gx, y1, 1, gridColor)
		c.DrawLine(x0, gy, x1, gy, 1, gridColor)

		xv := strconv.FormatFloat(f*last, 'g', 4, 64)
		drawText(d, xv, gx-float64(textWidth(d, xv))/2, y0+18)
		yv := strconv.FormatFloat(lo+f*(hi-lo), 'g', 4, 64)
		drawText(d, yv, x0-8-float64(textWidth(d, yv)), gy+5)
	}

	c.DrawLine(x0, y0, x1, y0, 1, axisColor)
	c.DrawLine(x0, y0, x0, y1, 1, axisColor)
	c.DrawLine(x1, y0, x1, y1, 1, axisColor)
	c.DrawLine(x0, y1, x1, y1, 1, axisColor)

	px := func(i int) float64 { return numeric.Remap(float64(i), 0, last, x0, x1) }
	py := func(v float64) float64 { return numeric.Remap(v, lo, hi, y0, y1) }
	if len(s) == 1 {
		c.DrawLine(px(0), py(s[0]), px(0), py(s[0]), 3, lineColor)
	}
	for i := 1; i < len(s); i++ {
		c.DrawLine(px(i-1), py(s[i-1]), px(i), py(s[i]), 2, lineColor)
	}

	mid := (x0 + x1) / 2
	drawText(d, opts.Title, mid-float64(textWidth(d, opts.Title))/2, float64(marginTop)-14)
	drawText(d, opts.XLabel, mid-float64(textWidth(d, opts.XLabel))/2, float64(opts.Height)-12)
	drawText(d, opts.YLabel, 8, float64(marginTop)-14)

	return c.Image(), nil
}

// PNG draws the chart and encodes it to w.
func PNG(w io.Writer, s seq.Sequence, opts Options) error {
	img, err := Chart(s, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// ASCII renders s with asciigraph. Width and Height are in terminal cells.
func ASCII(s seq.Sequence, opts Options) string {
	if len(s) == 0 {
		return ""
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || w > 200 {
		w = 80
	}
	if h <= 0 || h > 60 {
		h = 15
	}
	return asciigraph.Plot(s,
		asciigraph.Height(h),
		asciigraph.Width(w),
		asciigraph.Caption(opts.Title),
	)
}

func textWidth(d *font.Drawer, s string) int {
	return d.MeasureString(s).Round()
}

func drawText(d *font.Drawer, s string, x, y float64) {
	d.Dot = fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y))}
	d.DrawString(s)
}
