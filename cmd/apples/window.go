package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apples/internal/core"
	"github.com/vovakirdan/apples/internal/platform/window"
	"github.com/vovakirdan/apples/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play. The mode defaults to "apples".
Logs go to stderr unless --log-file is set.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Esc/Q        - Quit (closing the window works too)

Examples:
  apples window
  apples window apples_classic --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	mode := modeArg(args)
	if !registry.Exists(mode) {
		fail("unknown mode %q\nRun 'apples list' to see available modes.", mode)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger := newLogger(os.Stderr)
	closeLog := func() {}
	if flagLogFile != "" {
		out, closeFn, logErr := openLogOutput()
		if logErr != nil {
			fail("%v", logErr)
		}
		closeLog = closeFn
		logger = newLogger(out)
	}
	defer closeLog()

	game, err := newGame(mode, gameCfg)
	if err != nil {
		fail("creating game: %v", err)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	logger.Info("config loaded",
		"world", [2]float64{gameCfg.World.Width, gameCfg.World.Height},
		"apples", gameCfg.Apples.Count,
		"speed", gameCfg.Player.InitialSpeed,
		"accel", gameCfg.Player.Acceleration,
		"reset_delay", gameCfg.Rules.ResetDelay,
	)

	if err := window.Run(game, cfg, logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
