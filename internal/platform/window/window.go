// Package window runs a game in a desktop window using Ebitengine.
// Ebitengine calls Update and Draw on one goroutine, so the game has a
// single writer and a single reader per frame.
package window

import (
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/apples/internal/core"
	"github.com/vovakirdan/apples/internal/registry"
)

// maxFrameStep caps the simulated time of a single frame, in seconds.
const maxFrameStep = 0.25

var background = color.RGBA{0, 0, 0, 255}

// palette maps core colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {255, 255, 255, 255},
	core.ColorRed:         {255, 0, 0, 255},
	core.ColorGreen:       {0, 255, 0, 255},
	core.ColorYellow:      {255, 221, 0, 255},
	core.ColorWhite:       {255, 255, 255, 255},
	core.ColorBrightRed:   {255, 85, 85, 255},
	core.ColorBrightGreen: {85, 255, 85, 255},
	core.ColorGray:        {128, 128, 128, 255},
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Game adapts a registry game to ebiten.Game.
type Game struct {
	game   registry.Game
	keys   KeyReader
	timer  *core.FrameTimer
	logger *log.Logger
	width  int
	height int
	state  core.GameState
	ended  string // Why the loop stopped, empty while running
}

// NewGame wraps a game that has already been Reset.
// A nil logger discards all output.
func NewGame(game registry.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scene := game.Scene()
	return &Game{
		game:   game,
		keys:   ebitenKeys{},
		timer:  core.NewFrameTimer(core.SystemClock(), maxFrameStep),
		logger: logger,
		width:  int(math.Ceil(scene.Width)),
		height: int(math.Ceil(scene.Height)),
		state:  game.State(),
	}
}

// Update samples the keyboard and advances the game by the elapsed time.
func (g *Game) Update() error {
	in := sampleInput(g.keys)
	if in.Has(core.ActionQuit) {
		g.ended = "quit"
		return ebiten.Termination
	}

	prev := g.state
	result := g.game.Step(in, g.timer.Delta())
	g.state = result.State

	if result.Eaten > 0 {
		g.logger.Debug("apple eaten", "eaten", result.State.Score)
	}
	if result.BorderHit {
		if result.State.GameOver {
			g.logger.Info("border hit, game over", "eaten", prev.Score)
		} else {
			g.logger.Info("border hit, starting over", "eaten", prev.Score)
		}
	}
	if result.ResetDone {
		g.logger.Info("reset complete")
	}

	if g.state.GameOver {
		g.ended = "game over"
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game's scene: apples as filled circles and the player
// as a filled square, with any banner printed in the middle.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	scene := g.game.Scene()
	for _, s := range scene.Shapes {
		half := s.Size / 2
		clr := colorOf(s.Color)
		switch s.Kind {
		case core.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(s.Center.X), float32(s.Center.Y), float32(half), clr, true)
		default:
			vector.DrawFilledRect(screen, float32(s.Center.X-half), float32(s.Center.Y-half),
				float32(s.Size), float32(s.Size), clr, false)
		}
	}

	if scene.Banner != "" {
		// The debug font is 6 pixels per character
		x := g.width/2 - len(scene.Banner)*3
		ebitenutil.DebugPrintAt(screen, scene.Banner, x, g.height/2)
	}
}

// Layout keeps the logical screen at the world size.
func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Ended returns why the loop stopped, or an empty string while running.
func (g *Game) Ended() string {
	return g.ended
}

// Run resets the game, opens a window sized to the world and blocks until
// the window is closed, the player quits or the game ends.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	g := NewGame(game, logger)
	g.logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "size", [2]int{g.width, g.height})

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.width, g.height)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	// RunGame returns nil when Update returns ebiten.Termination
	if err := ebiten.RunGame(g); err != nil {
		return err
	}

	reason := g.Ended()
	if reason == "" {
		reason = "window closed"
	}
	g.logger.Info("exit", "game", game.ID(), "reason", reason)
	return nil
}
