package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/apples/internal/core"
	"github.com/vovakirdan/apples/internal/games/apples"
)

type fakeKeys struct {
	pressed map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		pressed: make(map[ebiten.Key]bool),
		just:    make(map[ebiten.Key]bool),
	}
}

func (k *fakeKeys) Pressed(key ebiten.Key) bool     { return k.pressed[key] }
func (k *fakeKeys) JustPressed(key ebiten.Key) bool { return k.just[key] }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestGame(t *testing.T, g *apples.Game) (*Game, *fakeKeys, *fakeClock) {
	t.Helper()
	g.Reset(core.RuntimeConfig{Seed: 42})

	w := NewGame(g, nil)
	keys := newFakeKeys()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	w.keys = keys
	w.timer = core.NewFrameTimer(clock, maxFrameStep)
	return w, keys, clock
}

func TestSampleInput(t *testing.T) {
	tests := []struct {
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

	for _, tc := range tests {
		t.Run(tc.logical.String(), func(t *testing.T) {
			keys := newFakeKeys()
			keys.pressed[tc.physical] = true

			frame := sampleInput(keys)
			if !frame.Keys.Pressed(tc.logical) {
				t.Errorf("%v should be held", tc.logical)
			}
			if frame.Has(core.ActionPause) || frame.Has(core.ActionQuit) {
				t.Error("movement keys should not trigger actions")
			}
		})
	}
}

func TestSampleInputActions(t *testing.T) {
	keys := newFakeKeys()
	keys.just[ebiten.KeyP] = true
	frame := sampleInput(keys)
	if !frame.Has(core.ActionPause) || frame.Keys.Any() {
		t.Error("P should only toggle pause")
	}

	// Holding P does not toggle again
	keys = newFakeKeys()
	keys.pressed[ebiten.KeyP] = true
	if sampleInput(keys).Has(core.ActionPause) {
		t.Error("pause should trigger on the press edge only")
	}

	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ} {
		keys = newFakeKeys()
		keys.just[k] = true
		if !sampleInput(keys).Has(core.ActionQuit) {
			t.Errorf("%v should quit", k)
		}
	}
}

func TestUpdateAdvancesGame(t *testing.T) {
	g := apples.New()
	w, keys, clock := newTestGame(t, g)

	if err := w.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}

	keys.pressed[ebiten.KeyArrowDown] = true
	clock.now = clock.now.Add(100 * time.Millisecond)
	if err := w.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}

	snap := g.Snapshot()
	if snap.Player.Direction != apples.DirDown || snap.Player.Position.Y <= 300 {
		t.Errorf("player should move down, got %+v", snap.Player)
	}
}

func TestUpdateQuit(t *testing.T) {
	w, keys, _ := newTestGame(t, apples.New())
	keys.just[ebiten.KeyEscape] = true

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected ebiten.Termination", err)
	}
	if w.Ended() != "quit" {
		t.Errorf("Ended() = %q, expected quit", w.Ended())
	}
}

func TestUpdateTerminatesOnGameOver(t *testing.T) {
	w, _, clock := newTestGame(t, apples.NewClassic())

	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		clock.now = clock.now.Add(250 * time.Millisecond)
		err = w.Update()
	}

	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected ebiten.Termination", err)
	}
	if w.Ended() != "game over" {
		t.Errorf("Ended() = %q, expected game over", w.Ended())
	}
}

func TestUpdateKeepsRunningAfterBorderInResetMode(t *testing.T) {
	g := apples.New()
	w, _, clock := newTestGame(t, g)

	resetting := false
	for i := 0; i < 1000; i++ {
		clock.now = clock.now.Add(250 * time.Millisecond)
		if err := w.Update(); err != nil {
			t.Fatalf("Update() = %v, reset mode should not terminate", err)
		}
		if g.State().Resetting {
			resetting = true
			break
		}
	}
	if !resetting {
		t.Fatal("player should reach the border")
	}
}

func TestLayout(t *testing.T) {
	w, _, _ := newTestGame(t, apples.New())

	width, height := w.Layout(1920, 1080)
	if width != 800 || height != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", width, height)
	}
}

func TestColorOf(t *testing.T) {
	if colorOf(core.ColorRed) != palette[core.ColorRed] {
		t.Error("known colors should come from the palette")
	}
	if colorOf(core.Color(200)) != palette[core.ColorDefault] {
		t.Error("unknown colors should fall back to the default")
	}
}
