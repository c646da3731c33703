package apples

import (
	"math"
	"math/rand"
)

// FloatInRange returns a value uniformly distributed in [a, b).
// A degenerate range (b <= a) returns a.
func FloatInRange(rng *rand.Rand, a, b float64) float64 {
	if b <= a {
		return a
	}
	v := a + rng.Float64()*(b-a)
	// Rounding can land exactly on b for some ranges
	if v >= b {
		v = math.Nextafter(b, a)
	}
	return v
}
