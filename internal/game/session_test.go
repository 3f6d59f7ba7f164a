package game

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/replay"
)

const arenaMap = "............\n" +
	".S..........\n" +
	"....//......\n" +
	"............\n" +
	"....oo......\n" +
	"............\n" +
	"............\n" +
	"............"

func newTestSession(t *testing.T, layout string, settings config.Settings, rec *replay.Recording) *Session {
	t.Helper()
	m, err := maps.ParseText("arena.txt", []byte(layout))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}
	return New(m, Options{Settings: settings, Playback: rec})
}

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed}
}

func typed(text string) core.InputFrame {
	in := core.NewInputFrame()
	in.Type(text)
	return in
}

func TestInitialShardPack(t *testing.T) {
	s := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s.Reset(testConfig(7))

	snap := s.Snapshot()
	if len(snap.Shards) != 2 {
		t.Fatalf("len(Shards) = %d, expected 2", len(snap.Shards))
	}

	start := s.Player().Position
	for _, p := range snap.Shards {
		if core.Abs(p.X-start.X) < 4 || core.Abs(p.Y-start.Y) < 4 {
			t.Errorf("shard %v is closer than 4 to %v on some axis", p, start)
		}
		if !s.grid.At(p).Walkable {
			t.Errorf("shard %v is not on a walkable tile", p)
		}
	}
	if snap.Shards[0] == snap.Shards[1] {
		t.Errorf("shards share position %v", snap.Shards[0])
	}

	events := s.Recording().Events
	if len(events) != 3 {
		t.Fatalf("len(Events) = %d, expected 3", len(events))
	}
	if _, ok := events[0].(replay.VersionInfo); !ok {
		t.Errorf("Events[0] = %v, expected version header", events[0])
	}
	for i, e := range events[1:] {
		spawn, ok := e.(replay.ShardSpawn)
		if !ok || spawn.Millis != 0 || spawn.Position != snap.Shards[i] {
			t.Errorf("Events[%d] = %v, expected spawn of %v at 0", i+1, e, snap.Shards[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []string{"", "l", "l", "j", "", "w", "e", "b", "$", "0", "G", "gg", "\x04", "l"}

	s1 := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s2 := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s1.Reset(testConfig(12345))
	s2.Reset(testConfig(12345))

	for _, text := range inputs {
		s1.Step(typed(text))
		s2.Step(typed(text))
	}

	if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
	if s1.Recording().Serialize() != s2.Recording().Serialize() {
		t.Errorf("recordings differ")
	}
}

func TestCollectSpawnsNewPack(t *testing.T) {
	s := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s.Reset(testConfig(3))
	s.shards = []core.Position{core.Pos(2, 1)}

	s.Step(typed("l"))

	snap := s.Snapshot()
	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if len(snap.Shards) != 2 {
		t.Errorf("len(Shards) = %d, expected a new pack of 2", len(snap.Shards))
	}

	events := s.Recording().Events
	now := s.Now()
	for _, e := range events[len(events)-2:] {
		if _, ok := e.(replay.ShardSpawn); !ok || e.At() != now {
			t.Errorf("event %v, expected a shard spawn at %d", e, now)
		}
	}

	found := false
	for _, e := range snap.Effects {
		if e.Kind == EffectCollect && e.Position == core.Pos(2, 1) {
			found = true
		}
	}
	if !found {
		t.Errorf("Effects = %v, expected a collect effect at (2, 1)", snap.Effects)
	}
}

func TestCollectKeepsRemainingShards(t *testing.T) {
	s := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s.Reset(testConfig(3))
	s.shards = []core.Position{core.Pos(2, 1), core.Pos(9, 6)}
	before := len(s.Recording().Events)

	s.Step(typed("l"))

	if got := s.Snapshot().Shards; !reflect.DeepEqual(got, []core.Position{core.Pos(9, 6)}) {
		t.Errorf("Shards = %v, expected [(9, 6)]", got)
	}
	// Only the input is recorded.
	if got := len(s.Recording().Events) - before; got != 1 {
		t.Errorf("recorded %d events, expected 1", got)
	}
}

func TestSpawnGivesUp(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Shards.MinDistance = 100

	s := newTestSession(t, arenaMap, settings, nil)
	s.Reset(testConfig(1))

	for range 20 {
		s.Step(typed("l"))
	}

	if n := len(s.Snapshot().Shards); n != 0 {
		t.Errorf("len(Shards) = %d, expected 0", n)
	}
	for _, e := range s.Recording().Events {
		if _, ok := e.(replay.ShardSpawn); ok {
			t.Errorf("unexpected spawn %v", e)
		}
	}
}

func TestTimeLimit(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Session.TimeLimitSeconds = 1

	s := newTestSession(t, arenaMap, settings, nil)
	s.Reset(testConfig(1))

	for i := 1; i <= 9; i++ {
		if res := s.Step(core.NewInputFrame()); res.State.GameOver {
			t.Fatalf("GameOver after %d ticks, expected 10", i)
		}
	}
	if res := s.Step(core.NewInputFrame()); !res.State.GameOver {
		t.Fatalf("GameOver = false after 10 ticks")
	}

	s.Step(typed("l"))
	snap := s.Snapshot()
	if snap.Tick != 10 {
		t.Errorf("Tick = %d, expected the clock to stop at 10", snap.Tick)
	}
	if snap.State != StateGameOver {
		t.Errorf("State = %q, expected %q", snap.State, StateGameOver)
	}
	if snap.RemainingMs != 0 {
		t.Errorf("RemainingMs = %d, expected 0", snap.RemainingMs)
	}
}

func TestPause(t *testing.T) {
	s := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	s.Step(pause)
	if !s.State().Paused {
		t.Fatalf("Paused = false after pause")
	}
	s.Step(typed("l"))
	if s.Snapshot().Tick != 0 || s.Player().Position != core.Pos(1, 1) {
		t.Errorf("session advanced while paused: %+v", s.Snapshot())
	}

	s.Step(pause)
	s.Step(typed("l"))
	if s.Player().Position != core.Pos(2, 1) {
		t.Errorf("Player = %v, expected (2, 1)", s.Player().Position)
	}
}

func TestViewShift(t *testing.T) {
	layout := "S./\n" + strings.Repeat("...\n", 10) + "..."
	settings := config.DefaultSettings()
	settings.View.HeightInTiles = 5

	s := newTestSession(t, layout, settings, nil)
	s.Reset(testConfig(1))

	if s.viewShift != -1 {
		t.Errorf("viewShift = %d, expected -1", s.viewShift)
	}

	for range 12 {
		s.Step(typed("j"))
		row := s.Player().Position.Y - s.viewShift
		if row < 1 || row > 3 {
			t.Fatalf("player row %d on screen, expected 1..3", row)
		}
	}
	if s.Player().Position.Y != 11 {
		t.Errorf("Player.Y = %d, expected 11", s.Player().Position.Y)
	}
	if s.viewShift != 8 {
		t.Errorf("viewShift = %d, expected 8", s.viewShift)
	}

	s.Step(typed("g"))
	s.Step(typed("g"))
	if s.Player().Position.Y != 0 || s.viewShift != -1 {
		t.Errorf("after gg: Y = %d, viewShift = %d, expected 0 and -1", s.Player().Position.Y, s.viewShift)
	}
}

func TestTooSmall(t *testing.T) {
	s := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	cfg := testConfig(1)
	cfg.ScreenW = 10
	s.Reset(cfg)

	s.Step(typed("l"))
	if !s.State().Paused {
		t.Errorf("Paused = false on a small screen")
	}
	if s.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q, expected %q", s.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(40, 24)
	s.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Errorf("small screen message missing:\n%s", screen.String())
	}

	s.Resize(80, 24)
	s.Step(typed("l"))
	if s.Player().Position != core.Pos(2, 1) {
		t.Errorf("Player = %v after resize, expected (2, 1)", s.Player().Position)
	}
}

func TestUnknownAnimationIsLogged(t *testing.T) {
	m, err := maps.ParseText("arena.txt", []byte(arenaMap))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s := New(m, Options{Settings: config.DefaultSettings(), Logger: logger})
	s.Reset(testConfig(1))
	s.avatar = NewAnimator("idle", map[string]Animation{
		"idle": {Frames: []rune("@"), Speed: 1000, Loop: true},
	})

	s.Step(typed("l"))
	if s.Player().Position != core.Pos(2, 1) {
		t.Fatalf("Player() = %v, expected (2, 1)", s.Player().Position)
	}
	if !strings.Contains(buf.String(), "animation") || !strings.Contains(buf.String(), "dash") {
		t.Errorf("log = %q, expected the failed dash animation", buf.String())
	}
	if got := s.avatar.Current(s.Now()); got != "idle" {
		t.Errorf("Current() = %q, expected idle", got)
	}
}

func TestRender(t *testing.T) {
	s := newTestSession(t, arenaMap, config.DefaultSettings(), nil)
	s.Reset(testConfig(1))

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	out := screen.String()

	for _, want := range []string{"arena", "@>", `""`, "()", "◆", "◆ 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q:\n%s", want, out)
		}
	}

	s.Step(typed("h"))
	s.Render(screen)
	if !strings.Contains(screen.String(), "<") {
		t.Errorf("player facing west not drawn:\n%s", screen.String())
	}

	s.Step(typed("g"))
	s.Render(screen)
	if !strings.Contains(screen.String(), "g-") {
		t.Errorf("buffer indicator missing:\n%s", screen.String())
	}
}

func TestSnapshotJSON(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Session.TimeLimitSeconds = 0

	s := newTestSession(t, arenaMap, settings, nil)
	s.Reset(testConfig(1))

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	for _, want := range []string{`"map_id":"arena"`, `"state":"playing"`, `"direction":"east"`, `"player":{"x":1,"y":1}`, `"remaining_ms":-1`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON %s is missing %s", data, want)
		}
	}
}
