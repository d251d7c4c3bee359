package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Speed: SpeedConfig{
			BaseDelayMs: 200,
			MinDelayMs:  1,
			StepMs:      1,
		},
		Food: FoodConfig{
			Attempts: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
