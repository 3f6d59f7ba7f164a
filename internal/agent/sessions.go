package agent

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/game"
	"github.com/vovakirdan/vizard/internal/maps"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

const (
	screenW  = 80
	screenH  = 24
	maxWait  = 6000
	idPrefix = "s"
)

// entry guards one session. Tool calls on the same session are serialized,
// calls on different sessions run in parallel.
type entry struct {
	mu      sync.Mutex
	session *game.Session
	config  core.RuntimeConfig
}

// Manager owns the live sessions driven by an agent.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	next     int

	settings config.Settings
	tickRate int
	logger   *log.Logger
}

// NewManager creates an empty manager. Sessions run at tickRate ticks per
// second; a non-positive rate uses the default.
func NewManager(settings config.Settings, tickRate int, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return &Manager{
		sessions: make(map[string]*entry),
		settings: settings,
		tickRate: tickRate,
		logger:   logger,
	}
}

// Create starts a live session on the map. A zero seed picks one from the
// clock.
func (m *Manager) Create(mapID string, seed int64) (string, game.Snapshot, error) {
	mp, err := maps.Get(mapID)
	if err != nil {
		return "", game.Snapshot{}, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, _ := mp.Grid().Dimensions()
	cfg := core.RuntimeConfig{
		ScreenW:  max(screenW, w*2),
		ScreenH:  screenH,
		TickRate: m.tickRate,
		Seed:     seed,
	}
	s := game.New(mp, game.Options{Settings: m.settings, Logger: m.logger})
	s.Reset(cfg)

	m.mu.Lock()
	m.next++
	id := idPrefix + strconv.Itoa(m.next)
	m.sessions[id] = &entry{session: s, config: cfg}
	m.mu.Unlock()

	m.logger.Info("session created", "id", id, "map", mapID, "seed", seed)
	return id, s.Snapshot(), nil
}

// With runs fn while holding the session's lock.
func (m *Manager) With(id string, fn func(s *game.Session, cfg core.RuntimeConfig) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("agent: %w: %q", ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session, e.config)
}

// End removes a session.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("agent: %w: %q", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	m.logger.Info("session ended", "id", id)
	return nil
}

// IDs returns the open session ids in creation order.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i][len(idPrefix):])
		b, _ := strconv.Atoi(ids[j][len(idPrefix):])
		return a < b
	})
	return ids
}

// step advances s by one tick with the given text.
func step(s *game.Session, text string) {
	in := core.NewInputFrame()
	in.Type(text)
	s.Step(in)
}

// render draws s on a screen of the session's size.
func render(s *game.Session, cfg core.RuntimeConfig) string {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	s.Render(screen)
	return screen.String()
}
