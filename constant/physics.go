package constant

// Physics tunables
const (
	// DefaultBodyCount is the population of the simulation
	DefaultBodyCount = 1000

	// GravitationalConstant scales the pairwise attraction.
	// The force law is G*m1*m2/d — inverse distance, not inverse square.
	// Physically wrong, kept deliberately for the visual behavior.
	GravitationalConstant = 1.0
)
