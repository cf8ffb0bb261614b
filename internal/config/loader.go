package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "zombies.yaml"

// LoadZombies loads the game configuration.
// Search order: customPath -> ~/.zombies/configs/zombies.yaml -> ./configs/zombies.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files only override what they set.
// The result is validated; an invalid file is an error, never silently replaced.
func LoadZombies(customPath string) (ZombiesConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZombiesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(data, userCfgPath)
		}
	}

	localPath := filepath.Join("configs", configFile)
	if data, err := os.ReadFile(localPath); err == nil {
		return parse(data, localPath)
	}

	var cfg ZombiesConfig
	if err := yaml.Unmarshal(defaultZombiesYAML, &cfg); err != nil {
		return DefaultZombiesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte, source string) (ZombiesConfig, error) {
	cfg := DefaultZombiesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZombiesConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return ZombiesConfig{}, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zombies", "configs", filename)
}
