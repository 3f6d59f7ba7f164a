package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vizard/internal/core"
)

// KeyInput is a key press translated for the game: either a platform action
// or text for the control layer.
type KeyInput struct {
	Action core.Action
	Text   string
}

// KeyMapper translates Bubble Tea key messages to game input.
// Gameplay keys are passed on as text so the configured bindings decide
// what they do; only a few keys are reserved for the platform.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. Control keys become their ASCII control
// character, so bindings like "\x02" (Ctrl+B) work as configured.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyInput {
	switch msg.Type {
	case tea.KeyCtrlC:
		return KeyInput{Action: core.ActionQuit}
	case tea.KeyEsc:
		return KeyInput{Action: core.ActionBack}
	case tea.KeyTab:
		return KeyInput{Action: core.ActionPause}
	case tea.KeyEnter:
		return KeyInput{Action: core.ActionConfirm}
	case tea.KeyCtrlR:
		return KeyInput{Action: core.ActionRestart}
	case tea.KeySpace:
		return KeyInput{Text: " "}
	case tea.KeyRunes:
		if msg.Alt {
			return KeyInput{}
		}
		return KeyInput{Text: string(msg.Runes)}
	}

	if msg.Type > tea.KeyNull && msg.Type < tea.KeyEscape {
		return KeyInput{Text: string(rune(msg.Type))}
	}
	return KeyInput{}
}

// MapKeyToFrame adds a key message to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	in := km.MapKey(msg)
	if in.Action == core.ActionQuit {
		return true
	}
	if in.Action != core.ActionNone {
		frame.Set(in.Action)
	}
	frame.Type(in.Text)
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ", "l":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "tab", "s":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
