package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the numblocks configuration.
// Search order: customPath -> ~/.numblocks/config.yaml -> ./configs/numblocks.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// A custom path ending in .toml is decoded as TOML.
func Load(customPath string) (NumblocksConfig, error) {
	cfg := DefaultNumblocksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryFile(filepath.Join("configs", "numblocks.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultNumblocksYAML, &cfg); err != nil {
		return DefaultNumblocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile loads an optional file. Unreadable, malformed or invalid files
// are skipped so the search can continue.
func tryFile(path string) (NumblocksConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NumblocksConfig{}, false
	}
	cfg := DefaultNumblocksConfig()
	if err := decode(path, data, &cfg); err != nil {
		return NumblocksConfig{}, false
	}
	if cfg.Validate() != nil {
		return NumblocksConfig{}, false
	}
	return cfg, true
}

func decode(path string, data []byte, cfg *NumblocksConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg NumblocksConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numblocks", filename)
}

// ParsePreset resolves a preset name. The empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(name))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or free)", ErrInvalid, name)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *NumblocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Targets = TargetsConfig{Min: 10, Max: 30}
		cfg.Mode.Free = false
	case DifficultyNormal:
		cfg.Targets = TargetsConfig{Min: 10, Max: 100}
		cfg.Mode.Free = false
	case DifficultyHard:
		cfg.Targets = TargetsConfig{Min: 50, Max: 100}
		cfg.Mode.Free = false
	case DifficultyFree:
		cfg.Mode.Free = true
	}
}
