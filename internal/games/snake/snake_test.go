package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var board = core.NewRect(0, 0, 40, 20)

func TestNewSnake(t *testing.T) {
	s := NewSnake(board)

	if s.Len() != 1 {
		t.Fatalf("New snake length = %d, expected 1", s.Len())
	}
	if s.Head() != (core.Point{X: 20, Y: 10}) {
		t.Errorf("New snake head = %v, expected (20, 10)", s.Head())
	}
	if s.Direction() != DirRight {
		t.Errorf("New snake direction = %v, expected right", s.Direction())
	}
	if s.IsColliding() {
		t.Error("Fresh snake at the center should not collide")
	}
}

func TestAdvanceEachDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Point
	}{
		{DirUp, core.Point{X: 20, Y: 9}},
		{DirDown, core.Point{X: 20, Y: 11}},
		{DirLeft, core.Point{X: 19, Y: 10}},
		{DirRight, core.Point{X: 21, Y: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := NewSnake(board)
			s.SetDirection(tc.dir)
			s.Advance()

			if s.Head() != tc.expected {
				t.Errorf("Head after advance = %v, expected %v", s.Head(), tc.expected)
			}
			if s.Vacated() != (core.Point{X: 20, Y: 10}) {
				t.Errorf("Vacated = %v, expected (20, 10)", s.Vacated())
			}
			if s.Len() != 1 {
				t.Errorf("Length after advance = %d, expected 1", s.Len())
			}
		})
	}
}

func TestAdvancePreservesLengthAndAdjacency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for trial := 0; trial < 200; trial++ {
		s := NewSnake(board)
		// Build up a body of random shape, growing on every other step.
		for step := 0; step < 12; step++ {
			s.SetDirection(dirs[rng.Intn(len(dirs))])
			s.Advance()
			if step%2 == 0 {
				s.Grow()
			}
		}

		for _, d := range dirs {
			before := s.Len()
			s.SetDirection(d)
			s.Advance()

			if s.Len() != before {
				t.Fatalf("trial %d: advance changed length %d -> %d", trial, before, s.Len())
			}
			body := s.Body()
			for i := 1; i < len(body); i++ {
				if !body[i-1].Adjacent(body[i]) {
					t.Fatalf("trial %d: cells %v and %v are not adjacent", trial, body[i-1], body[i])
				}
			}
		}
	}
}

func TestGrowAppendsVacatedCell(t *testing.T) {
	s := newSnakeFrom(board, DirRight,
		core.Point{X: 12, Y: 5},
		core.Point{X: 11, Y: 5},
		core.Point{X: 10, Y: 5},
	)

	s.Advance()
	vacated := s.Vacated()
	if vacated != (core.Point{X: 10, Y: 5}) {
		t.Fatalf("Vacated = %v, expected (10, 5)", vacated)
	}

	s.Grow()
	body := s.Body()
	if len(body) != 4 {
		t.Fatalf("Length after grow = %d, expected 4", len(body))
	}
	if body[len(body)-1] != vacated {
		t.Errorf("Tail after grow = %v, expected %v", body[len(body)-1], vacated)
	}
	if s.IsColliding() {
		t.Error("Growing should not cause a collision")
	}
}

func TestIsColliding(t *testing.T) {
	tests := []struct {
		name     string
		body     []core.Point
		expected bool
	}{
		{"center", []core.Point{{X: 20, Y: 10}}, false},
		{"next to left wall", []core.Point{{X: 1, Y: 10}}, false},
		{"next to bottom wall", []core.Point{{X: 20, Y: 18}}, false},
		{"left wall", []core.Point{{X: 0, Y: 10}}, true},
		{"right wall", []core.Point{{X: 39, Y: 10}}, true},
		{"top wall", []core.Point{{X: 20, Y: 0}}, true},
		{"bottom wall", []core.Point{{X: 20, Y: 19}}, true},
		{"past left wall", []core.Point{{X: -1, Y: 10}}, true},
		{"past top wall", []core.Point{{X: 20, Y: -1}}, true},
		{"past right wall", []core.Point{{X: 40, Y: 10}}, true},
		{"head on body", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}, true},
		{"head next to body", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnakeFrom(board, DirRight, tc.body...)
			if got := s.IsColliding(); got != tc.expected {
				t.Errorf("IsColliding() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStepOffEdgeDoesNotWrap(t *testing.T) {
	s := newSnakeFrom(board, DirUp, core.Point{X: 3, Y: 0})
	s.Advance()

	if s.Head() != (core.Point{X: 3, Y: -1}) {
		t.Errorf("Head = %v, expected (3, -1)", s.Head())
	}
	if !s.HitWall() {
		t.Error("Head above the board should count as a wall hit")
	}
}

func TestReversalCollides(t *testing.T) {
	s := newSnakeFrom(board, DirRight,
		core.Point{X: 12, Y: 10},
		core.Point{X: 11, Y: 10},
		core.Point{X: 10, Y: 10},
	)

	// Reversal is accepted as-is.
	s.SetDirection(DirLeft)
	if s.Direction() != DirLeft {
		t.Fatalf("Direction = %v, expected left", s.Direction())
	}

	s.Advance()
	if !s.HitSelf() {
		t.Error("Reversing into the body should collide")
	}
}

func TestOccupies(t *testing.T) {
	s := newSnakeFrom(board, DirRight, core.Point{X: 2, Y: 2}, core.Point{X: 1, Y: 2})

	if !s.Occupies(core.Point{X: 1, Y: 2}) {
		t.Error("Snake should occupy its tail")
	}
	if s.Occupies(core.Point{X: 3, Y: 2}) {
		t.Error("Snake should not occupy an empty cell")
	}
}
