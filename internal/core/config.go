package core

import "time"

// RuntimeConfig contains configuration passed to the game at start.
type RuntimeConfig struct {
	Width  int   // Board width in cells, wall ring included
	Height int   // Board height in cells, wall ring included
	Seed   int64 // RNG seed for food placement (0 = time based)

	BaseDelay    time.Duration // Poll timeout for a zero-length snake
	MinDelay     time.Duration // Lower bound for the poll timeout
	DelayStep    time.Duration // Timeout reduction per body segment
	FoodAttempts int           // Rejection samples before enumerating free cells
}

// DefaultConfig returns the fixed constants of the classic game.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:        40,
		Height:       20,
		Seed:         0,
		BaseDelay:    200 * time.Millisecond,
		MinDelay:     time.Millisecond,
		DelayStep:    time.Millisecond,
		FoodAttempts: 1000,
	}
}

// Bounds returns the full board rectangle.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, c.Width, c.Height)
}

// StatusRows is the number of rows drawn below the board.
const StatusRows = 1

// ScreenSize returns the terminal size needed for the board and the status row.
func (c RuntimeConfig) ScreenSize() (width, height int) {
	return c.Width, c.Height + StatusRows
}

// TickDelay returns how long a tick waits for input for a snake of the given
// length. Longer snakes wait less; the result never drops below MinDelay.
func (c RuntimeConfig) TickDelay(length int) time.Duration {
	minDelay := c.MinDelay
	if minDelay <= 0 {
		minDelay = time.Millisecond
	}
	d := c.BaseDelay - time.Duration(length)*c.DelayStep
	if d < minDelay {
		return minDelay
	}
	return d
}
