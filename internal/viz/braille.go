package viz

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// BrailleGrid is a monochrome canvas of Width x Height braille cells.
type BrailleGrid struct {
	Width, Height int
	Grid          [][]rune
}

func NewBrailleGrid(w, h int) *BrailleGrid {
	g := &BrailleGrid{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range g.Grid {
		g.Grid[i] = make([]rune, w)
	}
	g.Clear()
	return g
}

// Set raises the dot at (x, y) in sub-pixel coordinates. The grid is
// (Width*2) x (Height*4) sub-pixels.
func (g *BrailleGrid) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= g.Width || row >= g.Height {
		return
	}

	g.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (g *BrailleGrid) Clear() {
	for i := range g.Grid {
		for j := range g.Grid[i] {
			g.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
}

func (g *BrailleGrid) String() string {
	var b strings.Builder
	for _, row := range g.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Braille downsamples img to cols braille cells across and raises a dot
// wherever the luminance exceeds threshold (0..1).
func Braille(img image.Image, cols int, threshold float64) string {
	b := img.Bounds()
	if cols < 1 || b.Empty() {
		return ""
	}
	pw := cols * 2
	ph := max(4, pw*b.Dy()/b.Dx())
	ph += (4 - ph%4) % 4

	small := image.NewGray(image.Rect(0, 0, pw, ph))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	g := NewBrailleGrid(cols, ph/4)
	limit := uint8(threshold * 255)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if small.GrayAt(x, y).Y > limit {
				g.Set(x, y)
			}
		}
	}
	return g.String()
}

