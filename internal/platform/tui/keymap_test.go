package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vizard/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyInput
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, KeyInput{Text: "w"}},
		{"shifted rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, KeyInput{Text: "G"}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w"), Alt: true}, KeyInput{}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, KeyInput{Text: " "}},
		{"ctrl+b", tea.KeyMsg{Type: tea.KeyCtrlB}, KeyInput{Text: "\x02"}},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, KeyInput{Text: "\x15"}},
		{"ctrl+f", tea.KeyMsg{Type: tea.KeyCtrlF}, KeyInput{Text: "\x06"}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, KeyInput{Text: "\x04"}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyInput{Action: core.ActionQuit}},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, KeyInput{Action: core.ActionRestart}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyInput{Action: core.ActionBack}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, KeyInput{Action: core.ActionPause}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyInput{Action: core.ActionConfirm}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, KeyInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyTab}, &frame)

	if frame.Text != "gg" {
		t.Errorf("Text = %q, expected %q", frame.Text, "gg")
	}
	if !frame.Has(core.ActionPause) {
		t.Errorf("Has(Pause) = false")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Errorf("MapKeyToFrame(ctrl+c) = false, expected quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, MenuActionQuit},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%s) = %v, expected %v", tt.key, got, tt.want)
			}
		})
	}
}
