package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadApples loads Apples configuration.
// Search order: customPath -> ~/.apples/configs/apples.yaml -> ./configs/apples.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file may set only the keys it changes.
func LoadApples(customPath string) (ApplesConfig, error) {
	cfg := DefaultApplesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("apples.yaml"), filepath.Join("configs", "apples.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultApplesConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultApplesYAML, &cfg); err != nil {
		return DefaultApplesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg ApplesConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".apples", "configs", filename)
}
