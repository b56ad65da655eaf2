package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // K, Up arrow - move cursor up
	ActionDown             // J, Down arrow - move cursor down
	ActionLeft             // H, Left arrow - move cursor left
	ActionRight            // L, Right arrow - move cursor right
	ActionConfirm          // Enter, Space - fill from the cursor with the selected color
	ActionNextColor        // Tab - select next palette color
	ActionPrevColor        // Shift+Tab - select previous palette color
	ActionUndo             // U - undo last grid change
	ActionTranspose        // T - transpose the grid
	ActionRestart          // R - replay the original grid
	ActionNewGame          // N - start over with a fresh random grid
	ActionPause            // P - pause/unpause the timer
	ActionQuit             // Q, Ctrl+C - exit
	ActionClock            // One timer interval elapsed (sent by the platform clock)
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
	case ActionConfirm:
		return "Confirm"
	case ActionNextColor:
		return "NextColor"
	case ActionPrevColor:
		return "PrevColor"
	case ActionUndo:
		return "Undo"
	case ActionTranspose:
		return "Transpose"
	case ActionRestart:
		return "Restart"
	case ActionNewGame:
		return "NewGame"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionClock:
		return "Clock"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected for a single game step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Color is a 1-based palette slot picked directly (number keys).
	// 0 means no direct pick.
	Color int

	// Click is the screen cell of a mouse press, nil if none.
	Click *Point
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

// Empty returns true if the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Color == 0 && f.Click == nil
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Color = 0
	f.Click = nil
}
