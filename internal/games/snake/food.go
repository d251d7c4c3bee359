package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no interior cell is free for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// placeFood picks a random interior cell not covered by the snake.
// It samples up to attempts times, then falls back to enumerating the free
// cells so it always terminates.
func placeFood(rng *rand.Rand, bounds core.Rect, s *Snake, attempts int) (core.Point, error) {
	interior := bounds.Inset(1)
	if interior.Area() == 0 {
		return core.Point{}, ErrBoardFull
	}

	for range attempts {
		p := core.Point{
			X: interior.X + rng.Intn(interior.W),
			Y: interior.Y + rng.Intn(interior.H),
		}
		if !s.Occupies(p) {
			return p, nil
		}
	}

	occupied := make(map[core.Point]bool, s.Len())
	for _, seg := range s.body {
		occupied[seg] = true
	}

	free := make([]core.Point, 0, interior.Area())
	for y := interior.Y; y < interior.Bottom(); y++ {
		for x := interior.X; x < interior.Right(); x++ {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Point{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
