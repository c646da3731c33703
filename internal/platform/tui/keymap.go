package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/apples/internal/core"
)

// movementKeys maps terminal key names to the logical movement keys.
var movementKeys = map[string]core.Key{
	"right": core.KeyRight,
	"up":    core.KeyUp,
	"left":  core.KeyLeft,
	"down":  core.KeyDown,
	"d":     core.KeyD,
	"w":     core.KeyW,
	"a":     core.KeyA,
	"s":     core.KeyS,
}

// KeyMap defines the key bindings shown while playing.
type KeyMap struct {
	Right key.Binding
	Up    key.Binding
	Left  key.Binding
	Down  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Up, k.Left, k.Down, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Right, k.Up, k.Left, k.Down},
		{k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a movement key or an action.
// ok is false for movement when the message is not a movement key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, ok bool, action core.Action) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return 0, false, core.ActionQuit
	case key.Matches(msg, km.keys.Pause):
		return 0, false, core.ActionPause
	}

	k, ok = movementKeys[msg.String()]
	return k, ok, core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Terminals report presses rather than held keys, so a press counts as
// held for the next frame. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	k, ok, action := km.MapKey(msg)
	if ok {
		frame.Press(k)
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}
