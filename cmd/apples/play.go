package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/apples/internal/core"
	"github.com/vovakirdan/apples/internal/platform/tui"
	"github.com/vovakirdan/apples/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The mode defaults to "apples".

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentler acceleration
  normal - Default tuning
  hard   - Faster start, steeper acceleration

Examples:
  apples play
  apples play apples_classic
  apples play --difficulty hard
  apples play --config ./my-apples.yaml --log-file apples.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := modeArg(args)
	if !registry.Exists(mode) {
		fail("unknown mode %q\nRun 'apples list' to see available modes.", mode)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	out, closeLog, err := openLogOutput()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	logger := newLogger(out)

	game, err := newGame(mode, gameCfg)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger.Info("config loaded",
		"world", [2]float64{gameCfg.World.Width, gameCfg.World.Height},
		"apples", gameCfg.Apples.Count,
		"speed", gameCfg.Player.InitialSpeed,
		"accel", gameCfg.Player.Acceleration,
		"reset_delay", gameCfg.Rules.ResetDelay,
	)

	if err := tui.Run(game, terminalConfig(), logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
