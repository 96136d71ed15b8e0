package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/region-arcade/internal/core"
)

// actionBinding pairs a key binding with the game action it triggers.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// menuBinding pairs a key binding with a menu action.
type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	quit       key.Binding
	screenshot key.Binding
	game       []actionBinding
	menu       []menuBinding
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		game: []actionBinding{
			{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "go back")), core.ActionBack},
			{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
			{key.NewBinding(key.WithKeys("w", "up")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down")), core.ActionDown},
			{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionHistory},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// IsScreenshot reports whether the key asks for a text screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
