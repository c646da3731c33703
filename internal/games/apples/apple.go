package apples

import (
	"math/rand"

	"github.com/vovakirdan/apples/internal/core"
)

// Apple is one collectible. Apples are never removed: eating one moves it.
type Apple struct {
	Position core.Vec2
}

// Reset moves the apple to a random position in [0, w) x [0, h).
func (a *Apple) Reset(rng *rand.Rand, w, h float64) {
	a.Position = core.Vec2{
		X: FloatInRange(rng, 0, w),
		Y: FloatInRange(rng, 0, h),
	}
}
