// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
	Food  FoodConfig  `yaml:"food"`
}

// BoardConfig defines the playfield size, wall ring included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines how the tick length shrinks as the snake grows.
type SpeedConfig struct {
	BaseDelayMs int `yaml:"base_delay_ms"`
	MinDelayMs  int `yaml:"min_delay_ms"`
	StepMs      int `yaml:"step_ms"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	Attempts int `yaml:"attempts"`
}

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 5 || c.Board.Height < 5 {
		return fmt.Errorf("config: board %dx%d is too small (minimum 5x5)", c.Board.Width, c.Board.Height)
	}
	if c.Speed.BaseDelayMs <= 0 {
		return fmt.Errorf("config: base_delay_ms must be positive, got %d", c.Speed.BaseDelayMs)
	}
	if c.Speed.MinDelayMs <= 0 {
		return fmt.Errorf("config: min_delay_ms must be positive, got %d", c.Speed.MinDelayMs)
	}
	if c.Speed.StepMs < 0 {
		return fmt.Errorf("config: step_ms must not be negative, got %d", c.Speed.StepMs)
	}
	if c.Food.Attempts < 0 {
		return fmt.Errorf("config: food attempts must not be negative, got %d", c.Food.Attempts)
	}
	return nil
}

// Runtime converts the config into the game's runtime parameters.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Seed:         seed,
		BaseDelay:    time.Duration(c.Speed.BaseDelayMs) * time.Millisecond,
		MinDelay:     time.Duration(c.Speed.MinDelayMs) * time.Millisecond,
		DelayStep:    time.Duration(c.Speed.StepMs) * time.Millisecond,
		FoodAttempts: c.Food.Attempts,
	}
}
