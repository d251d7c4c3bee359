package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotStarted is returned when the screen is used outside raw mode.
var ErrNotStarted = errors.New("terminal: screen is not in raw mode")

// colorStyles maps core.Color to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

// Screen is a terminal driver backed by tcell.
type Screen struct {
	screen tcell.Screen
	keys   *KeyMapper

	events  chan tcell.Event
	done    chan struct{}
	pending tcell.Event

	cursor core.Point

	mu       sync.Mutex
	started  bool
	finished bool
}

// NewScreen creates a driver for the controlling terminal.
// The terminal is not touched until EnableRawMode.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot create screen: %w", err)
	}
	return newScreen(s), nil
}

func newScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		keys:   NewKeyMapper(),
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
}

// EnableRawMode takes over the terminal and starts the input pump.
func (t *Screen) EnableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: cannot enable raw mode: %w", err)
	}
	t.started = true

	go t.pump()
	return nil
}

// pump forwards tcell events until the screen is finalized.
// PollEvent returns nil once Fini has been called.
func (t *Screen) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// DisableRawMode restores the terminal. Safe to call multiple times.
func (t *Screen) DisableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.finished {
		return nil
	}
	t.finished = true
	close(t.done)
	t.screen.Fini()
	return nil
}

func (t *Screen) active() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.finished {
		return ErrNotStarted
	}
	return nil
}

// HideCursor hides the terminal cursor.
func (t *Screen) HideCursor() error {
	if err := t.active(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

// ShowCursor shows the cursor at the last MoveTo position.
// After DisableRawMode the cursor is already visible, so this is a no-op.
func (t *Screen) ShowCursor() error {
	if err := t.active(); err != nil {
		if errors.Is(err, ErrNotStarted) {
			return nil
		}
		return err
	}
	t.screen.ShowCursor(t.cursor.X, t.cursor.Y)
	return nil
}

// Clear blanks the whole screen.
func (t *Screen) Clear() error {
	if err := t.active(); err != nil {
		return err
	}
	t.screen.Clear()
	return nil
}

// MoveTo positions the write cursor (0-indexed).
func (t *Screen) MoveTo(x, y int) error {
	if err := t.active(); err != nil {
		return err
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("terminal: cannot move cursor to (%d, %d)", x, y)
	}
	t.cursor = core.Point{X: x, Y: y}
	return nil
}

// Write puts text at the cursor and advances it. Cells beyond the terminal
// edge are clipped by tcell.
func (t *Screen) Write(text string, c core.Color) error {
	if err := t.active(); err != nil {
		return err
	}
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	for _, r := range text {
		t.screen.SetContent(t.cursor.X, t.cursor.Y, r, nil, style)
		t.cursor.X++
	}
	return nil
}

// Flush pushes pending cell changes to the terminal.
func (t *Screen) Flush() error {
	if err := t.active(); err != nil {
		return err
	}
	t.screen.Show()
	return nil
}

// Poll waits up to timeout for an input event.
func (t *Screen) Poll(timeout time.Duration) (bool, error) {
	if err := t.active(); err != nil {
		return false, err
	}
	if t.pending != nil {
		return true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		t.pending = ev
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

// ReadKey consumes the pending event. Resize events repaint the screen and
// map to ActionNone.
func (t *Screen) ReadKey() (core.Action, error) {
	ev := t.pending
	t.pending = nil

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.keys.MapEvent(ev), nil
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventError:
		return core.ActionNone, fmt.Errorf("terminal: input error: %s", ev.Error())
	}
	return core.ActionNone, nil
}

// Size returns the terminal dimensions.
func (t *Screen) Size() (width, height int) {
	return t.screen.Size()
}
