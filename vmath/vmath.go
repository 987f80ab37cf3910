package vmath

// --- Randomness ---

// FastRand is a xorshift64 generator behind an explicit handle,
// so callers seed it once and tests can pin the stream
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform draw in [0, 1)
func (r *FastRand) Float64() float64 {
	// Top 53 bits give a full-precision mantissa
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform draw in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
