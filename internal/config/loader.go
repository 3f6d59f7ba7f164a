package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads vizard settings.
// Search order: customPath -> ~/.vizard/config.yaml -> ./configs/vizard.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Broken files on
// the search path are skipped. The result is validated.
func Load(customPath string) (Settings, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "vizard.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes settings YAML on top of the defaults and applies the
// difficulty preset.
func Parse(data []byte) (Settings, error) {
	// Decode over the defaults so a file may override only some sections.
	// Controls replace the default bindings as a whole.
	cfg := DefaultSettings()
	defaultControls := cfg.Controls
	cfg.Controls = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Controls) == 0 {
		cfg.Controls = defaultControls
	}
	if err := cfg.Session.Difficulty.Validate(); err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, cfg.Session.Difficulty)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vizard", filename)
}
