package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ScreenRenderer flushes frames to a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer creates a renderer for the given screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Size returns the current terminal dimensions. Queried every tick so
// the map follows live resizes.
func (r *ScreenRenderer) Size() (width, height int) {
	return r.screen.Size()
}

// Frame draws the grid and a status line, then flips the screen.
// The status line overwrites the start of the last grid row, the same
// spot the tick counter occupied in every previous frame.
func (r *ScreenRenderer) Frame(grid *Grid, tick uint64, bodies int, paused bool) {
	r.screen.Clear()
	style := tcell.StyleDefault

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			ru, _ := grid.Rune(x, y)
			r.screen.SetContent(x, y, ru, nil, style)
		}
	}

	status := fmt.Sprintf("%d [%d bodies]", tick, bodies)
	if paused {
		status += " paused"
	}
	statusStyle := style.Reverse(true)
	for i, ru := range status {
		if i >= grid.Width() {
			break
		}
		r.screen.SetContent(i, grid.Height()-1, ru, nil, statusStyle)
	}

	r.screen.Show()
}
