package viz

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// scaleTo resizes img to w x h with nearest-neighbor sampling so single
// pixel strokes stay crisp.
func scaleTo(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// HalfBlock renders img cols cells wide. Each cell is an upper half block
// with the top pixel as foreground and the bottom pixel as background.
func HalfBlock(img image.Image, cols int) string {
	b := img.Bounds()
	if cols < 1 || b.Empty() {
		return ""
	}
	h := max(2, cols*b.Dy()/b.Dx())
	h += h % 2
	small := scaleTo(img, cols, h)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < cols; x++ {
			top, _ := colorful.MakeColor(small.RGBAAt(x, y))
			bot, _ := colorful.MakeColor(small.RGBAAt(x, y+1))
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bot.Hex())).
				Render("▀"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
