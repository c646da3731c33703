package apples

import "github.com/vovakirdan/apples/internal/core"

// HitsBorder reports whether a square of side size centered on pos crosses
// any edge of a w x h world. Touching an edge exactly is not a hit.
func HitsBorder(pos core.Vec2, size, w, h float64) bool {
	return !core.BoxAround(pos, size).Within(w, h)
}

// CollisionThreshold returns the squared center distance at which the player
// touches an apple. The square player is treated as a circle of diameter
// playerSize.
func CollisionThreshold(appleSize, playerSize float64) float64 {
	r := (appleSize + playerSize) / 2
	return r * r
}

// HitsApple reports whether the player and apple centers are within the
// precomputed squared threshold.
func HitsApple(player, apple core.Vec2, threshold float64) bool {
	return player.DistSq(apple) <= threshold
}
