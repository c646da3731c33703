package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/apples/internal/core"
)

// keyBindings pairs physical keys with the logical movement keys.
var keyBindings = []struct {
	physical ebiten.Key
	logical  core.Key
}{
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyS, core.KeyS},
}

// KeyReader reports keyboard state for the current frame.
type KeyReader interface {
	// Pressed reports whether the key is held.
	Pressed(k ebiten.Key) bool
	// JustPressed reports whether the key went down this frame.
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// sampleInput builds the input frame for one update.
// Movement keys are sampled as held; pause and quit trigger on the press edge.
func sampleInput(keys KeyReader) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		if keys.Pressed(b.physical) {
			frame.Press(b.logical)
		}
	}

	if keys.JustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if keys.JustPressed(ebiten.KeyEscape) || keys.JustPressed(ebiten.KeyQ) {
		frame.Set(core.ActionQuit)
	}
	return frame
}
