// Package snake implements the snake game: the snake state, food placement
// and the real-time session loop that drives them through a terminal.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	WallGlyph  = "#"
	SnakeGlyph = "O"
	FoodGlyph  = "X"
	blank      = " "
)

// Driver is the terminal the session draws on and reads keys from.
// Every call may fail; a failure ends the session.
type Driver interface {
	EnableRawMode() error
	DisableRawMode() error
	HideCursor() error
	ShowCursor() error
	Clear() error
	MoveTo(x, y int) error
	Write(text string, c core.Color) error
	Flush() error

	// Poll waits up to timeout for an input event and reports whether one
	// is ready for ReadKey.
	Poll(timeout time.Duration) (bool, error)
	// ReadKey consumes one pending event. Non-key events map to ActionNone.
	ReadKey() (core.Action, error)
}

// Sizer is implemented by drivers that know the terminal size.
type Sizer interface {
	Size() (width, height int)
}

// ErrTerminalTooSmall is returned by Run when the terminal cannot hold the
// board and its status row.
var ErrTerminalTooSmall = errors.New("snake: terminal too small")

// Reason describes why a session ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonQuit      Reason = "quit"
	ReasonWall      Reason = "wall"
	ReasonSelf      Reason = "self"
	ReasonBoardFull Reason = "board_full"
)

// Result is what a finished session reports.
type Result struct {
	Score  int
	Reason Reason
	Ticks  uint64
	Length int
	Seed   int64 // Seed actually used, for replaying the run
}

// Session owns everything one game mutates: the snake, the food, the score
// and the terminal handle. Each tick runs its phases in a fixed order.
type Session struct {
	term   Driver
	cfg    core.RuntimeConfig
	logger *log.Logger
	rng    *rand.Rand
	bounds core.Rect

	snake *Snake
	food  core.Point
	score int
	tick  uint64

	state  GameStateType
	reason Reason
}

// NewSession creates a session with a fresh snake and the first food.
// A zero seed is replaced with a time-based one.
func NewSession(term Driver, cfg core.RuntimeConfig, logger *log.Logger) (*Session, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		term:   term,
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		bounds: cfg.Bounds(),
		state:  StatePlaying,
	}
	s.snake = NewSnake(s.bounds)

	food, err := placeFood(s.rng, s.bounds, s.snake, cfg.FoodAttempts)
	if err != nil {
		return nil, fmt.Errorf("snake: board %dx%d is too small: %w", cfg.Width, cfg.Height, err)
	}
	s.food = food

	return s, nil
}

// Run plays until the game is over. Raw mode and the hidden cursor are
// released on every return path, including errors.
func (s *Session) Run() (res Result, err error) {
	if err := s.term.EnableRawMode(); err != nil {
		return s.Result(), err
	}
	defer func() {
		if rerr := s.restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := s.checkSize(); err != nil {
		return s.Result(), err
	}
	if err := s.term.HideCursor(); err != nil {
		return s.Result(), err
	}
	if err := s.drawBoard(); err != nil {
		return s.Result(), err
	}

	s.logger.Info("session started",
		"width", s.cfg.Width,
		"height", s.cfg.Height,
		"seed", s.cfg.Seed,
	)

	for s.state == StatePlaying {
		if err := s.Tick(); err != nil {
			s.logger.Error("terminal failure", "tick", s.tick, "error", err)
			return s.Result(), err
		}
	}

	return s.Result(), nil
}

// checkSize refuses terminals that cannot fit the board. Drivers without a
// Sizer are trusted.
func (s *Session) checkSize() error {
	sz, ok := s.term.(Sizer)
	if !ok {
		return nil
	}
	w, h := sz.Size()
	needW, needH := s.cfg.ScreenSize()
	if w < needW || h < needH {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTerminalTooSmall, w, h, needW, needH)
	}
	return nil
}

// restore gives the terminal back in cooperative mode. Raw mode is left
// first, so a driver that restores the cursor on exit never flashes it
// inside the board.
func (s *Session) restore() error {
	return errors.Join(s.term.DisableRawMode(), s.term.ShowCursor())
}

// Tick runs one iteration of the loop.
func (s *Session) Tick() error {
	if s.state != StatePlaying {
		return nil
	}
	s.tick++

	if err := s.render(); err != nil {
		return err
	}

	action, err := s.pollInput()
	if err != nil {
		return err
	}
	if action == core.ActionQuit {
		s.end(ReasonQuit)
		return nil
	}
	s.applyAction(action)

	s.snake.Advance()
	boardFull := s.checkFood()

	switch {
	case s.snake.HitWall():
		s.end(ReasonWall)
		return nil
	case s.snake.HitSelf():
		s.end(ReasonSelf)
		return nil
	case boardFull:
		s.end(ReasonBoardFull)
		return nil
	}

	return s.drawScore()
}

// render erases stale cells, then redraws the food and the whole body.
// The body is drawn last so a just-grown tail is never left blank.
func (s *Session) render() error {
	if err := s.put(s.snake.Vacated(), blank, core.ColorDefault); err != nil {
		return err
	}
	if err := s.put(s.food, blank, core.ColorDefault); err != nil {
		return err
	}
	if err := s.put(s.food, FoodGlyph, core.ColorRed); err != nil {
		return err
	}
	for _, seg := range s.snake.body {
		if err := s.put(seg, SnakeGlyph, core.ColorGreen); err != nil {
			return err
		}
	}
	return s.term.Flush()
}

// pollInput waits for at most one key. The wait shrinks as the snake grows.
func (s *Session) pollInput() (core.Action, error) {
	ready, err := s.term.Poll(s.cfg.TickDelay(s.snake.Len()))
	if err != nil {
		return core.ActionNone, err
	}
	if !ready {
		return core.ActionNone, nil
	}
	return s.term.ReadKey()
}

// applyAction turns arrow actions into a heading; anything else keeps it.
func (s *Session) applyAction(a core.Action) {
	switch a {
	case core.ActionUp:
		s.snake.SetDirection(DirUp)
	case core.ActionDown:
		s.snake.SetDirection(DirDown)
	case core.ActionLeft:
		s.snake.SetDirection(DirLeft)
	case core.ActionRight:
		s.snake.SetDirection(DirRight)
	}
}

// checkFood grows the snake and respawns food when the head is on it.
// It reports true when no free cell is left for new food.
func (s *Session) checkFood() bool {
	if s.snake.Head() != s.food {
		return false
	}

	s.snake.Grow()
	s.score++
	s.logger.Debug("food eaten", "score", s.score, "length", s.snake.Len())

	food, err := placeFood(s.rng, s.bounds, s.snake, s.cfg.FoodAttempts)
	if errors.Is(err, ErrBoardFull) {
		return true
	}
	s.food = food
	return false
}

// end moves the session to its terminal state.
func (s *Session) end(r Reason) {
	s.state = StateGameOver
	s.reason = r
	s.logger.Info("game over",
		"reason", string(r),
		"score", s.score,
		"length", s.snake.Len(),
		"ticks", s.tick,
	)
}

// drawBoard clears the screen and draws the wall ring and initial status.
func (s *Session) drawBoard() error {
	if err := s.term.Clear(); err != nil {
		return err
	}
	w, h := s.bounds.W, s.bounds.H
	for y := 0; y < h; y++ {
		for _, x := range []int{0, w - 1} {
			if err := s.put(core.Point{X: x, Y: y}, WallGlyph, core.ColorYellow); err != nil {
				return err
			}
		}
	}
	for x := 1; x < w-1; x++ {
		for _, y := range []int{0, h - 1} {
			if err := s.put(core.Point{X: x, Y: y}, WallGlyph, core.ColorYellow); err != nil {
				return err
			}
		}
	}
	if err := s.drawScore(); err != nil {
		return err
	}
	return s.term.Flush()
}

// drawScore writes the status line on the row below the board.
func (s *Session) drawScore() error {
	return s.put(core.Point{X: 0, Y: s.bounds.H}, StatusLine(s.score), core.ColorDefault)
}

func (s *Session) put(p core.Point, text string, c core.Color) error {
	if err := s.term.MoveTo(p.X, p.Y); err != nil {
		return err
	}
	return s.term.Write(text, c)
}

// Result returns the session outcome so far.
func (s *Session) Result() Result {
	return Result{
		Score:  s.score,
		Reason: s.reason,
		Ticks:  s.tick,
		Length: s.snake.Len(),
		Seed:   s.cfg.Seed,
	}
}

// StatusLine is the in-game score text.
func StatusLine(score int) string {
	return fmt.Sprintf("Your score is %d", score)
}

// GameOverLine is printed once the terminal has been restored.
func GameOverLine(score int) string {
	return fmt.Sprintf("Game over! Your score is %d", score)
}
