// Package game runs a single play session on a map.
//
// A Session owns the player, the shards, the effects and the replay
// recording. It is advanced one tick at a time by Step and drawn by Render.
// The clock is derived from the tick count, so a session fed the same input
// on the same ticks always ends in the same state. A session either records
// live input or plays back a recording.
package game

import (
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/action"
	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/control"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/replay"
	"github.com/vovakirdan/vizard/internal/world"
)

const (
	hudHeight    = 1
	footerHeight = 1
	tileWidth    = 2
	minViewRows  = 3
)

// Options configures a session.
type Options struct {
	Settings config.Settings
	Logger   *log.Logger       // nil discards output
	Playback *replay.Recording // nil records live input
}

// Session is one play of a map. It is not safe for concurrent use.
type Session struct {
	m          *maps.Map
	grid       *world.Grid
	settings   config.Settings
	logger     *log.Logger
	source     *replay.Recording
	controller *control.Controller
	avatar     *Animator

	rng       *rand.Rand
	tickRate  int
	tick      uint64
	player    action.State
	shards    []core.Position
	score     int
	effects   []Effect
	recording *replay.Recording
	playback  *playback
	viewShift int

	screenW int
	screenH int

	gameOver bool
	finished bool // Playback reached the end of the recording
	paused   bool
	tooSmall bool
}

// New creates a session on m. Call Reset before the first Step.
func New(m *maps.Map, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		m:          m,
		grid:       m.Grid(),
		settings:   opts.Settings,
		logger:     logger,
		source:     opts.Playback,
		controller: control.NewController(opts.Settings, logger),
		avatar:     newAvatar(opts.Settings.Effects),
	}
}

func newAvatar(cfg config.EffectsConfig) *Animator {
	blinkSpeed := max(1, int64(cfg.BlinkMs)/3)
	return NewAnimator("idle", map[string]Animation{
		"idle":  {Frames: []rune("@"), Speed: 1000, Loop: true},
		"blink": {Frames: []rune("·o@"), Speed: blinkSpeed},
		"dash":  {Frames: []rune("Θ@"), Speed: max(1, int64(cfg.DashMs)/2)},
	})
}

// ID returns the map identifier.
func (s *Session) ID() string {
	return s.m.ID
}

// Title returns the map name.
func (s *Session) Title() string {
	return s.m.Title()
}

// Reset starts the session over.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.tickRate = cfg.TickRate
	if s.tickRate <= 0 {
		s.tickRate = core.DefaultConfig().TickRate
	}
	s.tick = 0
	s.player = action.NewState(s.grid.Start())
	s.shards = nil
	s.score = 0
	s.effects = nil
	s.viewShift = 0
	s.gameOver = false
	s.finished = false
	s.paused = false
	s.controller.Reset()
	s.avatar = newAvatar(s.settings.Effects)

	s.recording = replay.NewRecording()
	s.recording.Start(0)

	s.Resize(cfg.ScreenW, cfg.ScreenH)

	if s.source == nil {
		s.playback = nil
		s.spawnPack(0)
		return
	}

	s.playback = newPlayback(s.source)
	for _, e := range s.playback.setup() {
		s.replayEvent(e, 0)
	}
}

// Resize adapts the view to a new screen size without touching the
// simulation. A zero size means the session runs headless.
func (s *Session) Resize(w, h int) {
	s.screenW = w
	s.screenH = h
	width, _ := s.grid.Dimensions()
	headless := w == 0 && h == 0
	s.tooSmall = !headless && (w < width*tileWidth || h-hudHeight-footerHeight < minViewRows)
	if !s.tooSmall {
		s.updateView()
	}
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !s.over() {
		s.paused = !s.paused
	}
	if s.paused || s.tooSmall || s.over() {
		return core.StepResult{State: s.State()}
	}

	s.tick++
	now := s.Now()

	if s.playback == nil {
		text := cleanText(in.Text)
		s.recording.RecordTextInput(now, text)
		s.handleText(text, now)
		s.collect(now)
	} else {
		s.stepPlayback(now)
	}

	s.effects = pruneEffects(s.effects, now)

	if limit := s.timeLimit(); limit > 0 && now >= limit {
		s.gameOver = true
		s.logger.Info("time is up", "map", s.m.ID, "score", s.score)
	}

	return core.StepResult{State: s.State()}
}

// stepPlayback feeds the events due at now. Without an input this tick the
// player is checked for a shard first, as a live session would.
func (s *Session) stepPlayback(now int64) {
	due := s.playback.due(now)

	hasInput := false
	for _, e := range due {
		if _, ok := e.(replay.TextInput); ok {
			hasInput = true
			break
		}
	}
	if !hasInput {
		s.collect(now)
	}

	for _, e := range due {
		s.replayEvent(e, now)
	}

	if s.playback.done(now) {
		s.finished = true
		s.logger.Info("replay finished", "map", s.m.ID, "score", s.score)
	}
}

func (s *Session) replayEvent(e replay.Event, now int64) {
	switch e := e.(type) {
	case replay.VersionInfo:
		if e.Version != replay.Version {
			s.logger.Warn("replay version differs", "recorded", e.Version, "running", replay.Version)
		}
	case replay.TextInput:
		s.recording.RecordTextInput(now, e.Text)
		s.handleText(e.Text, now)
		s.collect(now)
	case replay.ShardSpawn:
		s.recording.RecordShardSpawn(now, e.Position)
		s.addShard(e.Position, now)
	}
}

// handleText applies typed keys and starts their effects.
func (s *Session) handleText(text string, now int64) {
	if text == "" {
		return
	}

	var outcomes []control.Outcome
	s.player, outcomes = s.controller.HandleInput(s.grid, s.player, text)

	for _, out := range outcomes {
		s.effects = append(s.effects, effectsFor(out, now, s.settings.Effects)...)
		switch out.Effect {
		case control.EffectBlink:
			s.animate("blink", now)
		case control.EffectDashLeft, control.EffectDashRight:
			s.animate("dash", now)
		}
	}
	if len(outcomes) > 0 {
		s.updateView()
	}
}

func (s *Session) animate(name string, now int64) {
	if err := s.avatar.Start(name, now); err != nil {
		s.logger.Debug("animation", "error", err)
	}
}

// updateView shifts the view so the player stays off its top and bottom
// rows.
func (s *Session) updateView() {
	viewH := s.viewHeight()
	row := s.player.Position.Y - s.viewShift
	switch {
	case row < 1:
		s.viewShift += row - 1
	case row > viewH-2:
		s.viewShift += row - (viewH - 2)
	}
}

// viewHeight returns the number of map rows on screen.
func (s *Session) viewHeight() int {
	rows := s.settings.View.HeightInTiles
	if s.screenH > 0 {
		rows = min(rows, s.screenH-hudHeight-footerHeight)
	}
	return max(rows, minViewRows)
}

// Now returns the session clock in milliseconds.
func (s *Session) Now() int64 {
	if s.tickRate <= 0 {
		return 0
	}
	return int64(s.tick) * 1000 / int64(s.tickRate)
}

func (s *Session) timeLimit() int64 {
	return int64(s.settings.Session.TimeLimitSeconds) * 1000
}

func (s *Session) over() bool {
	return s.gameOver || s.finished
}

// State returns the state seen by the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.over(),
		Paused:   s.paused || s.tooSmall,
	}
}

// Recording returns the recording of this session. In playback the events
// are recorded again as they are played.
func (s *Session) Recording() *replay.Recording {
	return s.recording
}

// IsPlayback reports whether the session plays back a recording.
func (s *Session) IsPlayback() bool {
	return s.source != nil
}

// Player returns the player state.
func (s *Session) Player() action.State {
	return s.player
}

// Controls returns the key bindings of the session.
func (s *Session) Controls() map[string]config.Key {
	return s.settings.Controls
}

// cleanText drops line breaks typed along with the keys.
func cleanText(text string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}
