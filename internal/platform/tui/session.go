package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/game"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/replay"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenScoreboard
	screenGame
)

// SessionModel manages the full terminal session flow:
// menu -> game -> menu, with the scoreboard and replays reachable from the
// menu. It is used for SSH sessions and for local play without a map.
type SessionModel struct {
	opts       Options
	settings   config.Settings
	config     core.RuntimeConfig
	username   string
	current    screenKind
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	status     string // Last error shown under the menu
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options, settings config.Settings, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		opts:     opts,
		settings: settings,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.current = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		mp, err := maps.Get(selected.MapID)
		if err != nil {
			return m.showMenu(err.Error())
		}
		return m.startGame(game.New(mp, game.Options{
			Settings: m.settings,
			Logger:   m.opts.Logger,
		}))
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if id, ok := m.scoreboard.WatchReplay(); ok {
		session, err := m.storedReplay(id)
		if err != nil {
			m.opts.logger().Warn("cannot load replay", "id", id, "error", err)
			return m.showMenu(err.Error())
		}
		return m.startGame(session)
	}

	if m.scoreboard.IsGoingBack() {
		return m.showMenu("")
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.showMenu("")
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) startGame(g Game) (tea.Model, tea.Cmd) {
	gameModel := NewGameModel(g, m.opts, m.config)
	m.gameModel = &gameModel
	m.current = screenGame
	m.opts.logger().Info("game started", "user", m.username, "map", g.ID(), "replay", g.IsPlayback())
	return m, m.gameModel.Init()
}

func (m SessionModel) showMenu(status string) (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.gameModel = nil
	m.status = status
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

// storedReplay builds a playback session from a stored replay.
func (m SessionModel) storedReplay(id int64) (*game.Session, error) {
	if m.opts.Store == nil {
		return nil, fmt.Errorf("no score database")
	}
	entry, err := m.opts.Store.Replay(id)
	if err != nil {
		return nil, err
	}
	rec, err := replay.Parse(entry.Recording)
	if err != nil {
		return nil, err
	}
	mp, err := maps.Get(entry.MapID)
	if err != nil {
		return nil, err
	}
	return game.New(mp, game.Options{
		Settings: m.settings,
		Logger:   m.opts.Logger,
		Playback: rec,
	}), nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.gameModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + colorStyles[core.ColorAlert].Render(centerText(m.status, m.config.ScreenW))
	}
	return view
}

// RunSession runs the menu driven session in the local terminal.
func RunSession(opts Options, settings config.Settings, cfg core.RuntimeConfig) error {
	model := NewSessionModel(opts, settings, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
