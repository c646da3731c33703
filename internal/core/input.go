package core

// Key is one of the eight logical movement keys sampled each frame.
type Key int

const (
	KeyRight Key = iota // Right arrow
	KeyUp               // Up arrow
	KeyLeft             // Left arrow
	KeyDown             // Down arrow
	KeyD
	KeyW
	KeyA
	KeyS

	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyD:
		return "D"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	default:
		return "Unknown"
	}
}

// KeyState is a snapshot of which logical keys are held during one frame.
type KeyState [keyCount]bool

// Press marks a key as held. Unknown keys are ignored.
func (s *KeyState) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s[k] = true
}

// Pressed reports whether the key is held.
func (s KeyState) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s[k]
}

// Any reports whether at least one key is held.
func (s KeyState) Any() bool {
	for _, held := range s {
		if held {
			return true
		}
	}
	return false
}

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionPause        // P - pause/unpause game
	ActionQuit         // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation frame:
// the held movement keys plus any triggered platform actions.
type InputFrame struct {
	Keys    KeyState
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Press marks a movement key as held for this frame.
func (f *InputFrame) Press(k Key) {
	f.Keys.Press(k)
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

// Clear resets keys and actions for the next frame.
func (f *InputFrame) Clear() {
	f.Keys = KeyState{}
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Keys = f.Keys
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
