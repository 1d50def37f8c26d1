package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the working-directory override checked after the user config.
const LocalPath = "configs/pong.yaml"

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// fields it names. A custom path must exist and parse; the implicit locations
// are skipped when missing or broken.
func LoadPong(customPath string) (PongConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{UserConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes one YAML file over the defaults.
func loadFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", "pong.yaml")
}

// Marshal encodes cfg as YAML, the way `pong config` prints it.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
