package terminal

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInjected is the default failure returned by a Memory driver set up to fail.
var ErrInjected = errors.New("terminal: injected failure")

// Memory is an in-memory terminal driver.
// Each Poll consumes one scripted action; ActionNone entries and an empty
// script behave like an elapsed timeout. Poll never sleeps.
type Memory struct {
	screen *core.Screen
	cursor core.Point

	script  []core.Action
	pending *core.Action

	RawMode       bool
	CursorVisible bool
	Flushes       int
	Timeouts      []time.Duration // Timeout requested by every Poll
	Reads         int             // Events consumed by ReadKey

	// FailAfterWrites makes every Write after that many successful writes
	// return FailErr. Zero disables the failure.
	FailAfterWrites int
	FailErr         error
	writes          int
}

// NewMemory creates a driver whose screen is width×height cells.
func NewMemory(width, height int) *Memory {
	return &Memory{
		screen:        core.NewScreen(width, height),
		CursorVisible: true,
	}
}

// Script appends actions to be returned by successive polls.
func (m *Memory) Script(actions ...core.Action) {
	m.script = append(m.script, actions...)
}

// Screen returns the rendered buffer.
func (m *Memory) Screen() *core.Screen {
	return m.screen
}

// Size returns the screen dimensions.
func (m *Memory) Size() (width, height int) {
	return m.screen.Width(), m.screen.Height()
}

// EnableRawMode marks the terminal as raw.
func (m *Memory) EnableRawMode() error {
	m.RawMode = true
	return nil
}

// DisableRawMode marks the terminal as cooked.
func (m *Memory) DisableRawMode() error {
	m.RawMode = false
	return nil
}

// HideCursor records the cursor as hidden.
func (m *Memory) HideCursor() error {
	m.CursorVisible = false
	return nil
}

// ShowCursor records the cursor as visible.
func (m *Memory) ShowCursor() error {
	m.CursorVisible = true
	return nil
}

// Clear blanks the buffer.
func (m *Memory) Clear() error {
	m.screen.Clear()
	return nil
}

// MoveTo positions the write cursor.
func (m *Memory) MoveTo(x, y int) error {
	m.cursor = core.Point{X: x, Y: y}
	return nil
}

// Write draws text at the cursor and advances it.
func (m *Memory) Write(text string, c core.Color) error {
	if m.FailAfterWrites > 0 && m.writes >= m.FailAfterWrites {
		if m.FailErr != nil {
			return m.FailErr
		}
		return ErrInjected
	}
	m.writes++
	m.cursor.X = m.screen.DrawText(m.cursor.X, m.cursor.Y, text, c)
	return nil
}

// Flush counts flushes; the buffer is always up to date.
func (m *Memory) Flush() error {
	m.Flushes++
	return nil
}

// Poll pops the next scripted action.
func (m *Memory) Poll(timeout time.Duration) (bool, error) {
	m.Timeouts = append(m.Timeouts, timeout)
	if m.pending != nil {
		return true, nil
	}
	if len(m.script) == 0 {
		return false, nil
	}

	next := m.script[0]
	m.script = m.script[1:]
	if next == core.ActionNone {
		return false, nil
	}
	m.pending = &next
	return true, nil
}

// ReadKey returns the action found by the last successful Poll.
func (m *Memory) ReadKey() (core.Action, error) {
	if m.pending == nil {
		return core.ActionNone, nil
	}
	a := *m.pending
	m.pending = nil
	m.Reads++
	return a, nil
}
