package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    GameStateType
	Reason   Reason
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		SnakeLen: s.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      s.snake.Direction(),
		FoodX:    s.food.X,
		FoodY:    s.food.Y,
		State:    s.state,
		Reason:   s.reason,
	}
}
