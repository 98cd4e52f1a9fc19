package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game and menus to work with intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, H
	ActionUp                // Up arrow, W, K
	ActionRight             // Right arrow, D, L
	ActionDown              // Down arrow, S, J
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B - go back to menu
	ActionRestart           // R - restart after a win
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P, Escape - pause/unpause game
	ActionScreenshot        // Ctrl+S - dump the screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action steers the snake.
func (a Action) IsMovement() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame collects the non-movement actions triggered between two ticks.
// Movement is forwarded to the game immediately so that its order is preserved.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
