package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// delta returns the unit step for the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Snake is the ordered body of the snake, head at index 0.
type Snake struct {
	body      []core.Point
	vacated   core.Point // Cell the tail left on the last Advance
	direction Direction
	bounds    core.Rect // Full board; its outer ring is wall
}

// NewSnake creates a snake of length 1 at the center of bounds, heading right.
func NewSnake(bounds core.Rect) *Snake {
	head := bounds.Center()
	return &Snake{
		body:      []core.Point{head},
		vacated:   head,
		direction: DirRight,
		bounds:    bounds,
	}
}

// newSnakeFrom builds a snake with an explicit body. Used by tests to set up
// positions that would take many ticks to reach.
func newSnakeFrom(bounds core.Rect, dir Direction, body ...core.Point) *Snake {
	s := &Snake{
		body:      append([]core.Point(nil), body...),
		direction: dir,
		bounds:    bounds,
	}
	s.vacated = body[len(body)-1]
	return s
}

// Advance moves the snake one cell in its current direction.
// The length is unchanged; the cell the tail leaves is kept for Grow.
func (s *Snake) Advance() {
	dx, dy := s.direction.delta()
	newHead := s.body[0].Add(dx, dy)

	s.vacated = s.body[len(s.body)-1]
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
}

// Grow re-appends the cell vacated by the last Advance.
func (s *Snake) Grow() {
	s.body = append(s.body, s.vacated)
}

// SetDirection sets the heading for the next Advance.
// Reversal is allowed; reversing into the body collides on the next check.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// IsColliding reports whether the head is on or beyond the wall ring, or on
// another body cell.
func (s *Snake) IsColliding() bool {
	return s.HitWall() || s.HitSelf()
}

// HitWall reports whether the head touches or crosses the wall ring.
func (s *Snake) HitWall() bool {
	return !s.bounds.Inset(1).Contains(s.body[0])
}

// HitSelf reports whether the head overlaps a non-head body cell.
func (s *Snake) HitSelf() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies checks if the snake covers the given point.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Vacated returns the cell left behind by the last Advance.
func (s *Snake) Vacated() core.Point {
	return s.vacated
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}
