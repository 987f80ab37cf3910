package constant

// Simulation Loop Timing
const (
	// UpdatesPerSecond is the fixed tick rate of the simulation
	UpdatesPerSecond = 10
)
