package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/game"
	"github.com/vovakirdan/vizard/internal/replay"
	"github.com/vovakirdan/vizard/internal/storage"
)

// Game is a session the terminal UI can drive.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(screen *core.Screen)
	State() core.GameState
	Snapshot() game.Snapshot
	Recording() *replay.Recording
	IsPlayback() bool
}

// Publisher receives snapshots of a running session, e.g. for spectators.
// Forget is called once the session is left.
type Publisher interface {
	Publish(sessionID string, snap game.Snapshot)
	Forget(sessionID string)
}

// Options are the platform services shared by every session.
type Options struct {
	Store     *storage.Store // nil disables scores and stored replays
	Logger    *log.Logger    // nil discards output
	Publisher Publisher      // nil disables spectating
	SessionID string         // Spectator channel of this terminal
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// GameModel runs a game in the terminal. Esc returns to the menu, or quits
// when the model runs standalone.
type GameModel struct {
	game        Game
	screen      *core.Screen
	opts        Options
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	standalone  bool
	quitting    bool
	backToMenu  bool
	saved       bool
	lastPublish uint64
	published   bool
}

// NewGameModel creates a model for g.
func NewGameModel(g Game, opts Options, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in := m.keyMapper.MapKey(msg)
	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		m.forget()
		return m, tea.Quit

	case core.ActionBack:
		m.forget()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	// "r" restarts once the session is over; while playing it is a game key.
	if m.gameState.GameOver && in.Text == "r" {
		m.inputFrame.Set(core.ActionRestart)
		return m, nil
	}

	if in.Action != core.ActionNone {
		m.inputFrame.Set(in.Action)
	}
	m.inputFrame.Type(in.Text)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && (m.gameState.GameOver || !m.game.IsPlayback()) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.published = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveResult()
		m.saved = true
	}

	m.publish()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the score and the replay of a finished live session.
func (m *GameModel) saveResult() {
	if m.opts.Store == nil || m.game.IsPlayback() {
		return
	}
	logger := m.opts.logger()
	snap := m.game.Snapshot()

	if _, err := m.opts.Store.SaveScore(m.game.ID(), snap.Score, snap.ElapsedMs); err != nil {
		logger.Error("cannot save score", "map", m.game.ID(), "error", err)
	}
	id, err := m.opts.Store.SaveReplay(m.game.ID(), snap.Score, m.game.Recording().Serialize())
	if err != nil {
		logger.Error("cannot save replay", "map", m.game.ID(), "error", err)
		return
	}
	logger.Info("session saved", "map", m.game.ID(), "score", snap.Score, "replay", id)
}

// publish sends a snapshot to spectators once per tick that moved the clock.
func (m *GameModel) publish() {
	if m.opts.Publisher == nil {
		return
	}
	snap := m.game.Snapshot()
	if m.published && snap.Tick == m.lastPublish {
		return
	}
	m.opts.Publisher.Publish(m.opts.SessionID, snap)
	m.lastPublish = snap.Tick
	m.published = true
}

// forget tells the publisher this session is over.
func (m *GameModel) forget() {
	if m.opts.Publisher == nil || !m.published {
		return
	}
	m.opts.Publisher.Forget(m.opts.SessionID)
	m.published = false
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".vizard", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays g in the terminal until the user quits.
func Run(g Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(g, opts, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
