package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/storage"
)

func TestMenuStartsOnDefaultMap(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	if got := m.items[m.cursor].MapID; got != maps.DefaultID {
		t.Errorf("cursor on %q, expected %q", got, maps.DefaultID)
	}
	if len(m.items) != len(maps.List()) {
		t.Errorf("len(items) = %d, expected %d", len(m.items), len(maps.List()))
	}
	if !strings.Contains(m.View(), "Select a map") {
		t.Errorf("View() is missing the heading")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m.cursor = 0

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil {
		t.Fatalf("Selected() = nil after enter")
	}
	if got, want := m.Selected().MapID, maps.List()[1].ID; got != want {
		t.Errorf("Selected() = %q, expected %q", got, want)
	}
	if cmd == nil {
		t.Errorf("enter returned no command")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore(maps.DefaultID, 42, 1000)

	m := NewMenuModel(store, core.DefaultConfig())
	if got := m.items[m.cursor].HighScore; got != 42 {
		t.Errorf("HighScore = %d, expected 42", got)
	}
}

func TestScoreboardReplays(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveReplay(maps.List()[0].ID, 3, "V 0 vizard-0.1.0")
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Errorf("View() is missing the scores heading")
	}

	next, _ := m.Update(runes("r"))
	m = next.(ScoreboardModel)
	if len(m.replays) != 1 {
		t.Fatalf("len(replays) = %d, expected 1", len(m.replays))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ScoreboardModel)
	if got, ok := m.WatchReplay(); !ok || got != id {
		t.Errorf("WatchReplay() = %d, %v, expected %d", got, ok, id)
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(Options{}, config.DefaultSettings(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10}, "tester")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.current != screenGame {
		t.Fatalf("current = %v after selecting a map, expected the game", m.current)
	}
	if m.gameModel.game.ID() != maps.DefaultID {
		t.Errorf("game = %q, expected %q", m.gameModel.game.ID(), maps.DefaultID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.current != screenMenu {
		t.Errorf("current = %v after esc, expected the menu", m.current)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.current != screenScoreboard {
		t.Errorf("current = %v after tab, expected the scoreboard", m.current)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.current != screenMenu {
		t.Errorf("current = %v after leaving the scoreboard, expected the menu", m.current)
	}
}
