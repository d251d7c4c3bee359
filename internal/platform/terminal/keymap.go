package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates tcell key events to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapEvent translates a key event to an action.
func (km *KeyMapper) MapEvent(ev *tcell.EventKey) core.Action {
	return km.MapKey(ev.Key())
}

// MapKey translates a key code to an action. Ctrl+C quits as well as
// Escape because raw mode turns it into an ordinary key.
func (km *KeyMapper) MapKey(key tcell.Key) core.Action {
	switch key {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	}
	return core.ActionNone
}
