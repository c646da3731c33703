package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/apples/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q/Esc        - Quit

Examples:
  apples menu
  apples menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			closeLog()
			fail("%v", err)
		}
		logger.Debug("menu closed", "result", menuResult.String())

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return
		}

		game, err := newGame(menuResult.GameID, gameCfg)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// A fixed seed replays the same session every round
		if err := tui.Run(game, cfg, logger); err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
	}
}
