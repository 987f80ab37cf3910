package physics

import (
	"github.com/halvard/gravmap/vmath"
)

// Gravitation returns the attraction between two mass centers.
// This simulator divides by distance, not distance squared. The
// inverse-distance law is not Newton's, but it is what gives the
// map its look and it must stay this way.
func Gravitation(g, mass1, mass2, distance float64) float64 {
	return g * (mass1 * mass2 / distance)
}

// Integrator applies pairwise gravitation to a body set
type Integrator struct {
	G float64
}

// Step updates the velocity of every body from the mutual attraction
// of every pair, visiting each unordered pair once. It reads positions
// and masses from a pre-step snapshot so the outcome is independent of
// body order. Coincident pairs have no defined direction; their
// contribution is skipped and the returned count reports how many
// such pairs were seen.
func (it Integrator) Step(s *Set) int {
	old := s.Snapshot()

	degenerate := 0
	for i1 := 0; i1 < len(old)-1; i1++ {
		for i2 := i1 + 1; i2 < len(old); i2++ {
			diff := vmath.V3Sub(old[i2].Pos, old[i1].Pos)
			d := vmath.V3Mag(diff)
			if d == 0 {
				degenerate++
				continue
			}

			force := Gravitation(it.G, old[i1].Mass, old[i2].Mass, d)

			// Unit direction from body 1 toward body 2, scaled by the
			// force magnitude. Body 2 gets the exact opposite.
			f := vmath.V3Scale(diff, force/d)

			s.Bodies[i1].Vel = vmath.V3Add(s.Bodies[i1].Vel, vmath.V3Scale(f, 1/s.Bodies[i1].Mass))
			s.Bodies[i2].Vel = vmath.V3Sub(s.Bodies[i2].Vel, vmath.V3Scale(f, 1/s.Bodies[i2].Mass))
		}
	}

	return degenerate
}
