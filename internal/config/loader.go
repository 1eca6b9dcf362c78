package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names probed in each search directory.
var configNames = []string{"starfighter.yaml", "starfighter.yml", "starfighter.toml"}

// LoadStarfighter loads Starfighter configuration.
// Search order: customPath -> ~/.starfighter/configs/starfighter.{yaml,toml} ->
// ./configs/starfighter.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadStarfighter(customPath string) (StarfighterConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultStarfighterConfig()
	if err := yaml.Unmarshal(defaultStarfighterYAML, &cfg); err != nil {
		return DefaultStarfighterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a single file over the defaults, picking the codec by extension.
func loadFile(path string) (StarfighterConfig, error) {
	cfg := DefaultStarfighterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg as TOML when name ends in .toml, YAML otherwise.
func Decode(name string, data []byte, cfg *StarfighterConfig) error {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Encode writes cfg in the format implied by name's extension.
func Encode(name string, cfg StarfighterConfig) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	}
	return yaml.Marshal(cfg)
}

func searchDirs() []string {
	var dirs []string
	if p := userConfigDir(); p != "" {
		dirs = append(dirs, p)
	}
	return append(dirs, "configs")
}

// userConfigDir returns ~/.starfighter/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfighter", "configs")
}

// DataDir returns ~/.starfighter, the root for scores and screenshots.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".starfighter"
	}
	return filepath.Join(home, ".starfighter")
}
