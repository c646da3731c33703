// apples is an arcade game: steer a square around the field, eat apples to
// speed up and stay clear of the border.
//
// Usage:
//
//	apples list              - List available modes
//	apples play [mode]       - Play in the terminal
//	apples window [mode]     - Play in a desktop window
//	apples menu              - Pick a mode interactively
//	apples config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load a custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Write logs to a file
//	--debug                - Log every apple eaten
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/apples/internal/games/apples"
)

const defaultMode = "apples"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "apples",
	Short: "Apples - eat apples, go faster, avoid the walls",
	Long: `Apples is a small real-time arcade game. You steer a square that
never stops moving. Every apple you eat makes you faster, and touching
the border sends you back to the start.

Modes:
  apples          - Border hit pauses for a moment and starts over
  apples_classic  - Speed grows every second, border hit ends the game

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive mode picker
  config   - Print the effective configuration

Examples:
  apples play
  apples window apples_classic
  apples play --difficulty hard --seed 42
  apples config --config ./my-apples.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
