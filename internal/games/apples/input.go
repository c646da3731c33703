package apples

import "github.com/vovakirdan/apples/internal/core"

// keyBindings lists key pairs in priority order. When several directions are
// held at once the first one listed wins.
var keyBindings = [...]struct {
	dir  Direction
	keys [2]core.Key
}{
	{DirRight, [2]core.Key{core.KeyRight, core.KeyD}},
	{DirUp, [2]core.Key{core.KeyUp, core.KeyW}},
	{DirLeft, [2]core.Key{core.KeyLeft, core.KeyA}},
	{DirDown, [2]core.Key{core.KeyDown, core.KeyS}},
}

// MapInput returns the direction selected by the held keys, or current if
// no movement key is held.
func MapInput(keys core.KeyState, current Direction) Direction {
	for _, b := range keyBindings {
		if keys.Pressed(b.keys[0]) || keys.Pressed(b.keys[1]) {
			return b.dir
		}
	}
	return current
}
