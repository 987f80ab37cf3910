package render

import (
	"math"

	"github.com/halvard/gravmap/constant"
	"github.com/halvard/gravmap/physics"
	"github.com/halvard/gravmap/vmath"
)

// Bounds is the axis-aligned box around all body positions,
// recomputed for every frame
type Bounds struct {
	Min, Max vmath.Vec3
}

// BoundsOf scans the bodies for the componentwise extremes
func BoundsOf(bodies []physics.Body) Bounds {
	b := Bounds{
		Min: vmath.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: vmath.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}

	for i := range bodies {
		p := bodies[i].Pos
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}

	return b
}

// axisIndex rescales v from [lo,hi] onto the integer range [0,steps-1]
// by inverse lerp, rounding to nearest. A zero-extent axis collapses
// every body onto index 0 instead of dividing by zero.
func axisIndex(v, lo, hi float64, steps int) int {
	extent := hi - lo
	if extent == 0 {
		return 0
	}
	return int(math.Round((v - lo) / extent * float64(steps-1)))
}

// Project plots every body onto the grid. Column and row come from
// the x and y position relative to the frame bounds; depth picks the
// glyph, rearmost bodies getting the sparsest rune. Bodies landing on
// the same cell occlude in iteration order, last one wins.
func Project(bodies []physics.Body, grid *Grid) {
	if len(bodies) == 0 {
		return
	}

	bounds := BoundsOf(bodies)
	ramp := []rune(constant.GlyphRamp)

	for i := range bodies {
		p := bodies[i].Pos
		x := axisIndex(p.X, bounds.Min.X, bounds.Max.X, grid.Width())
		y := axisIndex(p.Y, bounds.Min.Y, bounds.Max.Y, grid.Height())
		z := axisIndex(p.Z, bounds.Min.Z, bounds.Max.Z, len(ramp))
		grid.Set(x, y, ramp[z])
	}
}

// Frame renders the bodies into a fresh grid of the given dimensions.
// Pure function of its inputs: same bodies and dimensions, same grid.
func Frame(bodies []physics.Body, width, height int) *Grid {
	grid := NewGrid(width, height)
	Project(bodies, grid)
	return grid
}
