package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads the snake configuration.
// With an empty customPath only the embedded default is used, so nothing is
// read from disk. Keys missing from a custom file keep their default values.
func Load(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	if customPath == "" {
		if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
			return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
		}
		return cfg, nil
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML over cfg and validates the result.
func Parse(data []byte, cfg *SnakeConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}
