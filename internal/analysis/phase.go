package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/intseq/internal/seq"
)

// ReturnMap holds the pairs (s[i], s[i+lag]) of a sequence.
type ReturnMap struct {
	Lag    int
	Points []struct{ X, Y float64 }
}

// NewReturnMap pairs every value with the one lag steps later. It returns nil
// when lag is not positive or the sequence is too short.
func NewReturnMap(s seq.Sequence, lag int) *ReturnMap {
	if lag <= 0 || len(s) <= lag {
		return nil
	}
	rm := &ReturnMap{
		Lag:    lag,
		Points: make([]struct{ X, Y float64 }, 0, len(s)-lag),
	}
	for i := 0; i+lag < len(s); i++ {
		rm.Points = append(rm.Points, struct{ X, Y float64 }{X: s[i], Y: s[i+lag]})
	}
	return rm
}

// ASCII draws the return map as a scatter of dots, with axes through zero
// when zero is in view.
func (rm *ReturnMap) ASCII(width, height int) string {
	if rm == nil || len(rm.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := rm.Points[0].X, rm.Points[0].X
	minY, maxY := rm.Points[0].Y, rm.Points[0].Y
	for _, p := range rm.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for _, p := range rm.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if grid[row][col] == ' ' {
				grid[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if grid[row][col] == ' ' {
				grid[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
