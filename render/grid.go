package render

import (
	"strings"

	"github.com/halvard/gravmap/constant"
)

// Grid is a 2D rune buffer for one frame, addressed [row][col].
// It is rebuilt from the body set every tick and thrown away after
// being flushed to the terminal.
type Grid struct {
	width  int
	height int
	lines  [][]rune
}

// NewGrid creates a blank-filled grid with the given dimensions
func NewGrid(width, height int) *Grid {
	lines := make([][]rune, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			lines[y][x] = constant.BlankRune
		}
	}

	return &Grid{
		width:  width,
		height: height,
		lines:  lines,
	}
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Set writes a rune at the given cell. Out-of-bounds writes are
// rejected. A later write to the same cell replaces the earlier one.
func (g *Grid) Set(x, y int, r rune) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	g.lines[y][x] = r
	return true
}

// Rune returns the rune at the given cell
func (g *Grid) Rune(x, y int) (rune, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return g.lines[y][x], true
}

// Flatten joins the grid into height newline-terminated lines of
// exactly width runes each
func (g *Grid) Flatten() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		sb.WriteString(string(g.lines[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
