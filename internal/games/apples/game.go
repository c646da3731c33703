// Package apples implements the Apples game: steer a square around the field,
// eat apples to speed up, and avoid the border.
package apples

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/apples/internal/config"
	"github.com/vovakirdan/apples/internal/core"
	"github.com/vovakirdan/apples/internal/registry"
)

// Mode selects what happens when the player hits the border.
type Mode string

const (
	// ModeReset freezes briefly and starts a fresh session. Eating an apple
	// gives a one-time speed boost.
	ModeReset Mode = "reset"

	// ModeClassic ends the game on the border. Speed grows continuously
	// with elapsed time instead of per apple.
	ModeClassic Mode = "classic"
)

// Phase is the state machine position of a session.
type Phase string

const (
	PhaseRunning   Phase = "running"
	PhaseResetting Phase = "resetting"
	PhaseGameOver  Phase = "game_over"
)

// Game implements the Apples game.
type Game struct {
	mode Mode
	cfg  config.ApplesConfig
	rng  *rand.Rand
	tick uint64

	player    Player
	apples    []Apple
	numEaten  int
	threshold float64 // Squared player/apple contact distance

	phase        Phase
	resetElapsed float64 // Seconds spent in PhaseResetting
	paused       bool
}

// New creates a reset mode game with the default configuration.
func New() *Game {
	return &Game{
		mode: ModeReset,
		cfg:  config.DefaultApplesConfig(),
	}
}

// NewClassic creates a classic mode game with the default configuration.
func NewClassic() *Game {
	return &Game{
		mode: ModeClassic,
		cfg:  config.DefaultApplesConfig(),
	}
}

func init() {
	registry.Register("apples", func() registry.Game {
		return New()
	})
	registry.Register("apples_classic", func() registry.Game {
		return NewClassic()
	})
}

// Configure replaces the game's tuning. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.ApplesConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apples: %w", err)
	}
	g.cfg = cfg
	return nil
}

// Config returns the game's tuning.
func (g *Game) Config() config.ApplesConfig {
	return g.cfg
}

// Mode returns the border policy of this game.
func (g *Game) Mode() Mode {
	return g.mode
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "apples_classic"
	}
	return "apples"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Apples Game (Classic)"
	}
	return "Apples Game"
}

// Reset seeds the generator and starts a fresh session.
// The seed is applied here only; border resets keep drawing from the same generator.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.threshold = CollisionThreshold(g.cfg.Apples.Size, g.cfg.Player.Size)
	g.initState()
}

// initState rebuilds the player, apples and counters.
func (g *Game) initState() {
	g.player = Player{
		Position: core.Vec2{
			X: g.cfg.World.Width / 2,
			Y: g.cfg.World.Height / 2,
		},
		Speed:     g.cfg.Player.InitialSpeed,
		Direction: DirRight,
	}

	if len(g.apples) != g.cfg.Apples.Count {
		g.apples = make([]Apple, g.cfg.Apples.Count)
	}
	for i := range g.apples {
		g.apples[i].Reset(g.rng, g.cfg.World.Width, g.cfg.World.Height)
	}

	g.numEaten = 0
	g.phase = PhaseRunning
	g.resetElapsed = 0
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	res := core.StepResult{}

	if g.rng == nil {
		g.Reset(core.RuntimeConfig{Seed: 1})
	}

	if dt < 0 {
		dt = 0
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase != PhaseGameOver {
		g.paused = !g.paused
	}

	if g.paused || g.phase == PhaseGameOver {
		res.State = g.State()
		return res
	}

	if g.phase == PhaseResetting {
		g.resetElapsed += dt
		if g.resetElapsed >= g.cfg.Rules.ResetDelay.Seconds() {
			g.initState()
			res.ResetDone = true
		}
		res.State = g.State()
		return res
	}

	g.player.Direction = MapInput(in.Keys, g.player.Direction)

	if g.mode == ModeClassic {
		g.player.Boost(g.cfg.Player.Acceleration * dt)
	}
	g.player.Integrate(dt)

	if HitsBorder(g.player.Position, g.cfg.Player.Size, g.cfg.World.Width, g.cfg.World.Height) {
		res.BorderHit = true
		g.onBorderHit(&res)
		res.State = g.State()
		return res
	}

	for i := range g.apples {
		if !HitsApple(g.player.Position, g.apples[i].Position, g.threshold) {
			continue
		}
		g.numEaten++
		res.Eaten++
		g.apples[i].Reset(g.rng, g.cfg.World.Width, g.cfg.World.Height)
		if g.mode == ModeReset {
			g.player.Boost(g.cfg.Player.Acceleration)
		}
	}

	res.State = g.State()
	return res
}

// onBorderHit applies the border policy of the current mode.
func (g *Game) onBorderHit(res *core.StepResult) {
	if g.mode == ModeClassic {
		g.phase = PhaseGameOver
		return
	}

	g.phase = PhaseResetting
	g.resetElapsed = 0
	if g.cfg.Rules.ResetDelay <= 0 {
		g.initState()
		res.ResetDone = true
	}
}

// Scene returns apples then the player so the player draws on top.
func (g *Game) Scene() core.Scene {
	shapes := make([]core.Shape, 0, len(g.apples)+1)
	for _, a := range g.apples {
		shapes = append(shapes, core.Shape{
			Kind:   core.ShapeCircle,
			Center: a.Position,
			Size:   g.cfg.Apples.Size,
			Color:  core.ColorGreen,
		})
	}
	shapes = append(shapes, core.Shape{
		Kind:   core.ShapeSquare,
		Center: g.player.Position,
		Size:   g.cfg.Player.Size,
		Color:  core.ColorRed,
	})

	var banner string
	switch {
	case g.phase == PhaseGameOver:
		banner = "GAME OVER"
	case g.phase == PhaseResetting:
		banner = "Ouch! Starting over..."
	case g.paused:
		banner = "PAUSED - press P to continue"
	}

	return core.Scene{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Shapes: shapes,
		Banner: banner,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	core.DrawScene(dst, g.Scene())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.numEaten,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
		Resetting: g.phase == PhaseResetting,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d mode=%s phase=%s eaten=%d ", g.tick, g.mode, g.phase, g.numEaten)
	fmt.Fprintf(&b, "pos=(%.1f, %.1f) speed=%.1f dir=%s",
		g.player.Position.X, g.player.Position.Y, g.player.Speed, g.player.Direction)
	return b.String()
}
