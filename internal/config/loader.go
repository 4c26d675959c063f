package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "bamboo.yaml"

// LoadBamboo loads Bamboo Breakout configuration.
// Search order: customPath -> ~/.bamboo/configs/bamboo.yaml -> ./configs/bamboo.yaml -> embedded default
func LoadBamboo(customPath string) (BambooConfig, error) {
	// Try custom path first; its errors are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BambooConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BambooConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
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
	cfg, err := Parse(defaultBambooYAML)
	if err != nil {
		return DefaultBambooConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hard-coded defaults, so partial files only
// override what they mention, then validates the result.
func Parse(data []byte) (BambooConfig, error) {
	cfg := DefaultBambooConfig()
	// Profiles given in the file replace the default set entirely
	var head struct {
		Profiles map[string]ProfileConfig `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return BambooConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(head.Profiles) > 0 {
		cfg.Profiles = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BambooConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BambooConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bamboo", "configs", filename)
}
