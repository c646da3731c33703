package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/apples.yaml
var defaultApplesYAML []byte

// DefaultApplesConfig returns the default Apples configuration.
func DefaultApplesConfig() ApplesConfig {
	return ApplesConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:         20,
			InitialSpeed: 100,
			Acceleration: 20,
		},
		Apples: AppleConfig{
			Count: 20,
			Size:  20,
		},
		Rules: RulesConfig{
			ResetDelay: time.Second,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "apples", "apples_classic":
		return defaultApplesYAML
	default:
		return nil
	}
}
