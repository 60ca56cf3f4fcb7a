package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // K, Up arrow - previous colour / menu item
	ActionDown           // J, Down arrow - next colour / menu item
	ActionLeft           // H, Left arrow - previous colour / dialog button
	ActionRight          // L, Right arrow - next colour / dialog button
	ActionConfirm        // Enter, Space - play the focused colour, press the focused button
	ActionBack           // Escape - close dialog or go back to menu
	ActionRestart        // R - ask to reset the level
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPalette        // C - cycle palette
	ActionInfo           // I, ? - how to play
	ActionTheme          // T - toggle dark/light
	ActionMute           // M - toggle sound cue
	ActionPick1          // 1..6 - play a colour directly
	ActionPick2
	ActionPick3
	ActionPick4
	ActionPick5
	ActionPick6
)

// PickActions lists the direct colour picks in slot order.
var PickActions = []Action{ActionPick1, ActionPick2, ActionPick3, ActionPick4, ActionPick5, ActionPick6}

// PickIndex returns the 0-based colour slot for a pick action, or -1.
func (a Action) PickIndex() int {
	if a >= ActionPick1 && a <= ActionPick6 {
		return int(a - ActionPick1)
	}
	return -1
}

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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPalette:
		return "Palette"
	case ActionInfo:
		return "Info"
	case ActionTheme:
		return "Theme"
	case ActionMute:
		return "Mute"
	}
	if i := a.PickIndex(); i >= 0 {
		return "Pick" + string(rune('1'+i))
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
