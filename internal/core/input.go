package core

// Action represents a semantic game action, abstracted from physical key presses.
// The terminal driver translates raw keys into actions so the game never sees
// backend-specific key codes.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow
	ActionDown         // Down arrow
	ActionLeft         // Left arrow
	ActionRight        // Right arrow
	ActionQuit         // Escape, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
