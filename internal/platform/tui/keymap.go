package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/siggyrun/internal/core"
)

// KeyMapper translates Bubble Tea input messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case " ", "up", "w", "enter":
		return core.ActionActivate
	case "tab", "l":
		return core.ActionScores
	case "b", "esc":
		return core.ActionBack
	case "n":
		return core.ActionRename
	}

	return core.ActionNone
}

// MapMouse translates a mouse message. Only a left-button press counts
// as a tap; motion and release are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionActivate
	}
	return core.ActionNone
}
