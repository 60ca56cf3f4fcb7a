package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlood loads the flood configuration.
// Search order: customPath -> ~/.arcade/configs/flood.yaml -> ./configs/flood.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is validated.
func LoadFlood(customPath string) (FloodConfig, error) {
	cfg, source, err := readFlood(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

func readFlood(customPath string) (FloodConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFloodConfig(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFlood(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flood.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFlood(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "flood.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := ParseFlood(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFlood(defaultFloodYAML)
	if err != nil {
		return DefaultFloodConfig(), "built-in defaults", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded defaults", nil
}

// ParseFlood decodes YAML over the default config.
func ParseFlood(data []byte) (FloodConfig, error) {
	cfg := DefaultFloodConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFloodConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
