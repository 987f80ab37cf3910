package render

import (
	"testing"

	"github.com/halvard/gravmap/physics"
	"github.com/halvard/gravmap/vmath"
)

func TestProjectColumnBoundaries(t *testing.T) {
	bodies := []physics.Body{
		{Pos: vmath.Vec3{X: 0}, Mass: 1},
		{Pos: vmath.Vec3{X: 10}, Mass: 1},
	}

	grid := Frame(bodies, 11, 1)

	if ru, _ := grid.Rune(0, 0); ru == ' ' {
		t.Error("Expected a glyph in column 0")
	}
	if ru, _ := grid.Rune(10, 0); ru == ' ' {
		t.Error("Expected a glyph in column 10")
	}
	for x := 1; x < 10; x++ {
		if ru, _ := grid.Rune(x, 0); ru != ' ' {
			t.Errorf("Expected column %d blank, got %q", x, ru)
		}
	}
}

func TestProjectDepthRamp(t *testing.T) {
	bodies := []physics.Body{
		{Pos: vmath.Vec3{X: 0, Z: 0}, Mass: 1},
		{Pos: vmath.Vec3{X: 10, Z: 10}, Mass: 1},
	}

	grid := Frame(bodies, 11, 1)

	// Rearmost body gets the first ramp rune, foremost the last
	if ru, _ := grid.Rune(0, 0); ru != '.' {
		t.Errorf("Expected '.' for lowest z, got %q", ru)
	}
	if ru, _ := grid.Rune(10, 0); ru != '@' {
		t.Errorf("Expected '@' for highest z, got %q", ru)
	}
}

func TestProjectZeroExtent(t *testing.T) {
	// All bodies share every coordinate: every axis collapses, and
	// nothing may crash or write garbage
	bodies := []physics.Body{
		{Pos: vmath.Vec3{X: 3, Y: 3, Z: 3}, Mass: 1},
		{Pos: vmath.Vec3{X: 3, Y: 3, Z: 3}, Mass: 1},
	}

	grid := Frame(bodies, 20, 10)

	if ru, _ := grid.Rune(0, 0); ru != '.' {
		t.Errorf("Expected collapsed axes to map to cell (0,0) with '.', got %q", ru)
	}

	count := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if ru, _ := grid.Rune(x, y); ru != ' ' {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one occupied cell, got %d", count)
	}
}

func TestProjectDeterministic(t *testing.T) {
	rng := vmath.NewFastRand(55)
	set, _ := physics.NewSet(40, 40, rng)

	a := Frame(set.Bodies, 60, 20).Flatten()
	b := Frame(set.Bodies, 60, 20).Flatten()

	if a != b {
		t.Error("Expected identical grids for identical input")
	}
}

func TestProjectOcclusion(t *testing.T) {
	// Same cell, different depth: the later body in iteration order
	// must win, regardless of z
	bodies := []physics.Body{
		{Pos: vmath.Vec3{X: 0, Z: 10}, Mass: 1}, // foremost, drawn first
		{Pos: vmath.Vec3{X: 0, Z: 0}, Mass: 1},  // rearmost, drawn last
		{Pos: vmath.Vec3{X: 10, Z: 5}, Mass: 1}, // stretches the bounds
	}

	grid := Frame(bodies, 11, 1)

	if ru, _ := grid.Rune(0, 0); ru != '.' {
		t.Errorf("Expected last writer's '.' to survive at the shared cell, got %q", ru)
	}
}

func TestProjectEmpty(t *testing.T) {
	grid := Frame(nil, 5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if ru, _ := grid.Rune(x, y); ru != ' ' {
				t.Errorf("Expected empty set to render a blank grid, got %q at (%d,%d)", ru, x, y)
			}
		}
	}
}

func TestBoundsOf(t *testing.T) {
	bodies := []physics.Body{
		{Pos: vmath.Vec3{X: -5, Y: 2, Z: 0}, Mass: 1},
		{Pos: vmath.Vec3{X: 3, Y: -7, Z: 9}, Mass: 1},
	}

	b := BoundsOf(bodies)

	if b.Min != (vmath.Vec3{X: -5, Y: -7, Z: 0}) {
		t.Errorf("Expected min {-5 -7 0}, got %+v", b.Min)
	}
	if b.Max != (vmath.Vec3{X: 3, Y: 2, Z: 9}) {
		t.Errorf("Expected max {3 2 9}, got %+v", b.Max)
	}
}
