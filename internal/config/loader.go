package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "floodfill.yaml"

// LoadFloodFill loads flood fill configuration.
// Search order: customPath -> ~/.floodfill/configs/floodfill.yaml -> ./configs/floodfill.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes.
func LoadFloodFill(customPath string) (FloodFillConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FloodFillConfig{}, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FloodFillConfig{}, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFloodFillYAML)
	if err != nil {
		return DefaultFloodFillConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// A palette given in the file replaces the default palette entirely.
func Parse(data []byte) (FloodFillConfig, error) {
	cfg := DefaultFloodFillConfig()
	cfg.Palette = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FloodFillConfig{}, err
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultFloodFillConfig().Palette
	}
	if err := cfg.Validate(); err != nil {
		return FloodFillConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg FloodFillConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floodfill", "configs", filename)
}
