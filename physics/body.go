package physics

import (
	"fmt"

	"github.com/halvard/gravmap/vmath"
)

// Body is a point mass. The mass center is the body's position.
type Body struct {
	Pos  vmath.Vec3
	Vel  vmath.Vec3
	Mass float64
}

func (b Body) String() string {
	return fmt.Sprintf("position: %g, %g, %g | velocity: %g, %g, %g | mass: %g",
		b.Pos.X, b.Pos.Y, b.Pos.Z, b.Vel.X, b.Vel.Y, b.Vel.Z, b.Mass)
}

// Set owns the body population for the whole run. It is sized once at
// creation and never grows or shrinks.
type Set struct {
	Bodies []Body
}

// NewSet creates n bodies with position components uniform in
// [-scale, +scale], velocity components in [0, 1) and mass in (0, 1].
// The caller owns the RNG handle and its seed.
func NewSet(n int, scale float64, rng *vmath.FastRand) (*Set, error) {
	if n < 1 {
		return nil, fmt.Errorf("body count must be at least 1, got %d", n)
	}

	bodies := make([]Body, n)
	for i := range bodies {
		bodies[i] = Body{
			Pos: vmath.Vec3{
				X: rng.Range(-scale, scale),
				Y: rng.Range(-scale, scale),
				Z: rng.Range(-scale, scale),
			},
			Vel: vmath.Vec3{
				X: rng.Float64(),
				Y: rng.Float64(),
				Z: rng.Float64(),
			},
			// Float64 is [0,1); flip it so mass is (0,1] and never zero
			Mass: 1 - rng.Float64(),
		}
	}

	return &Set{Bodies: bodies}, nil
}

// Len returns the population size
func (s *Set) Len() int {
	return len(s.Bodies)
}

// AdvancePositions moves every body by its velocity for one tick
func (s *Set) AdvancePositions() {
	for i := range s.Bodies {
		s.Bodies[i].Pos = vmath.V3Add(s.Bodies[i].Pos, s.Bodies[i].Vel)
	}
}

// Snapshot returns an independent copy of the bodies. The integrator
// reads the copy while writing velocities into the live set, so the
// result cannot depend on body order.
func (s *Set) Snapshot() []Body {
	old := make([]Body, len(s.Bodies))
	copy(old, s.Bodies)
	return old
}

// Recenter shifts every body so the centroid sits at the origin.
// Keeps coordinates small over long runs; velocities are untouched.
func (s *Set) Recenter() {
	if len(s.Bodies) == 0 {
		return
	}

	var sum vmath.Vec3
	for i := range s.Bodies {
		sum = vmath.V3Add(sum, s.Bodies[i].Pos)
	}

	center := vmath.V3Scale(sum, 1/float64(len(s.Bodies)))
	for i := range s.Bodies {
		s.Bodies[i].Pos = vmath.V3Sub(s.Bodies[i].Pos, center)
	}
}
