package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apples/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file search and the difficulty preset are applied.

Config search order:
  1. --config <path>
  2. ~/.apples/configs/apples.yaml
  3. ./configs/apples.yaml
  4. Built-in defaults

Examples:
  apples config
  apples config --difficulty hard
  apples config > ~/.apples/configs/apples.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
