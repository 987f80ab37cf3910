package sim

import (
	"fmt"

	"github.com/halvard/gravmap/constant"
)

// Config carries the initialization-time parameters of a run.
// There are no flags and no config files, these are set in code.
type Config struct {
	// Bodies is the fixed population size
	Bodies int

	// G scales the pairwise attraction
	G float64

	// UpdatesPerSecond is the tick rate
	UpdatesPerSecond int

	// PositionScale bounds the initial position draw. Zero means
	// scale by the body count, matching the population density of
	// the original layout.
	PositionScale float64

	// Seed for the run's RNG handle. Zero means seed from the clock.
	Seed uint64

	// Sound enables the collision chime
	Sound bool
}

// DefaultConfig returns the standard run parameters
func DefaultConfig() Config {
	return Config{
		Bodies:           constant.DefaultBodyCount,
		G:                constant.GravitationalConstant,
		UpdatesPerSecond: constant.UpdatesPerSecond,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.Bodies < 1 {
		return fmt.Errorf("body count must be at least 1, got %d", c.Bodies)
	}
	if c.UpdatesPerSecond < 1 {
		return fmt.Errorf("update rate must be at least 1/s, got %d", c.UpdatesPerSecond)
	}
	if c.PositionScale < 0 {
		return fmt.Errorf("position scale must not be negative, got %g", c.PositionScale)
	}
	return nil
}

// scale resolves the effective position scale
func (c Config) scale() float64 {
	if c.PositionScale > 0 {
		return c.PositionScale
	}
	return float64(c.Bodies)
}
