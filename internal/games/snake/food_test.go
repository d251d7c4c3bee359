package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// randomBody returns n distinct interior cells. The cells need not be
// connected; food placement only cares about occupancy.
func randomBody(rng *rand.Rand, interior core.Rect, n int) []core.Point {
	cells := make([]core.Point, 0, interior.Area())
	for y := interior.Y; y < interior.Bottom(); y++ {
		for x := interior.X; x < interior.Right(); x++ {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return cells[:n]
}

func TestFoodNeverOnBodyOrWall(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	interior := board.Inset(1)

	for i := 0; i < 1000; i++ {
		n := 1 + rng.Intn(interior.Area()/2-1)
		s := newSnakeFrom(board, DirRight, randomBody(rng, interior, n)...)

		food, err := placeFood(rng, board, s, 1000)
		if err != nil {
			t.Fatalf("config %d: placeFood() failed: %v", i, err)
		}
		if !interior.Contains(food) {
			t.Fatalf("config %d: food %v is outside the interior", i, food)
		}
		if s.Occupies(food) {
			t.Fatalf("config %d: food %v is on the body", i, food)
		}
	}
}

func TestFoodFallbackEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	small := core.NewRect(0, 0, 5, 5)
	interior := small.Inset(1)

	// Cover every interior cell but one.
	all := randomBody(rng, interior, interior.Area())
	free := all[len(all)-1]
	s := newSnakeFrom(small, DirRight, all[:len(all)-1]...)

	// Zero attempts forces the enumeration path.
	food, err := placeFood(rng, small, s, 0)
	if err != nil {
		t.Fatalf("placeFood() failed: %v", err)
	}
	if food != free {
		t.Errorf("Food = %v, expected the only free cell %v", food, free)
	}
}

func TestFoodBoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	small := core.NewRect(0, 0, 5, 5)
	interior := small.Inset(1)

	s := newSnakeFrom(small, DirRight, randomBody(rng, interior, interior.Area())...)

	_, err := placeFood(rng, small, s, 50)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("placeFood() error = %v, expected ErrBoardFull", err)
	}
}

func TestFoodNoInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tiny := core.NewRect(0, 0, 2, 2)
	s := NewSnake(tiny)

	if _, err := placeFood(rng, tiny, s, 10); !errors.Is(err, ErrBoardFull) {
		t.Errorf("placeFood() error = %v, expected ErrBoardFull", err)
	}
}
