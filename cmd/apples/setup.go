package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/apples/internal/config"
	"github.com/vovakirdan/apples/internal/registry"
)

// configurable is implemented by games that accept external tuning.
type configurable interface {
	Configure(cfg config.ApplesConfig) error
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.ApplesConfig, error) {
	cfg, err := config.LoadApples(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyApplesPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame creates the game for a mode and applies the loaded config.
func newGame(mode string, cfg config.ApplesConfig) (registry.Game, error) {
	game, err := registry.Create(mode)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(configurable); ok {
		if err := c.Configure(cfg); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// newLogger creates the structured logger used by every command.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "apples",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogOutput returns the log destination for terminal play. The alt
// screen owns the terminal, so logs go to --log-file or nowhere.
func openLogOutput() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}

// modeArg returns the requested mode or the default one.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultMode
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
