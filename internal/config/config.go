// Package config provides YAML-based game configuration loading and
// difficulty presets for the apples arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ApplesConfig contains all tuning for the Apples game.
// It is loaded once and passed by value to the game, never mutated during play.
type ApplesConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Apples AppleConfig  `yaml:"apples"`
	Rules  RulesConfig  `yaml:"rules"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player square and its speed curve.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	InitialSpeed float64 `yaml:"initial_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// AppleConfig defines the apple collection.
type AppleConfig struct {
	Count int     `yaml:"count"`
	Size  float64 `yaml:"size"`
}

// RulesConfig defines game-rule timings.
type RulesConfig struct {
	ResetDelay time.Duration `yaml:"reset_delay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale returns multipliers for initial speed and acceleration.
func presetScale(preset DifficultyPreset) (speed, accel float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 0.5
	case DifficultyHard:
		return 1.5, 1.5
	default:
		return 1.0, 1.0
	}
}

// ApplyApplesPreset scales the player's speed curve for a difficulty preset.
func ApplyApplesPreset(cfg *ApplesConfig, preset DifficultyPreset) {
	speed, accel := presetScale(preset)
	cfg.Player.InitialSpeed *= speed
	cfg.Player.Acceleration *= accel
}

// Validate checks that the config describes a playable game.
func (c ApplesConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Size >= c.World.Width || c.Player.Size >= c.World.Height {
		errs = append(errs, fmt.Errorf("player size %g does not fit in %gx%g world", c.Player.Size, c.World.Width, c.World.Height))
	}
	if c.Player.InitialSpeed < 0 {
		errs = append(errs, fmt.Errorf("initial speed must not be negative, got %g", c.Player.InitialSpeed))
	}
	if c.Player.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("acceleration must not be negative, got %g", c.Player.Acceleration))
	}
	if c.Apples.Count <= 0 {
		errs = append(errs, fmt.Errorf("apple count must be positive, got %d", c.Apples.Count))
	}
	if c.Apples.Size <= 0 {
		errs = append(errs, fmt.Errorf("apple size must be positive, got %g", c.Apples.Size))
	}
	if c.Rules.ResetDelay < 0 {
		errs = append(errs, fmt.Errorf("reset delay must not be negative, got %s", c.Rules.ResetDelay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid apples config: %w", errors.Join(errs...))
	}
	return nil
}
