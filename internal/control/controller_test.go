package control

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/action"
	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

const testMap = "S.//o///..oo//o///..\n" +
	"....................\n" +
	"..//................"

func newTestController(t *testing.T) (*Controller, *world.Grid, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	return NewController(config.DefaultSettings(), logger), world.MustParse(testMap), &buf
}

func TestHandleInputAppliesEachKey(t *testing.T) {
	c, g, _ := newTestController(t)
	s := action.NewState(g.Start())

	s, outcomes := c.HandleInput(g, s, "www")
	if s.Position != core.Pos(5, 0) {
		t.Errorf("HandleInput(www) = %v, expected (5, 0)", s.Position)
	}
	if len(outcomes) != 3 {
		t.Fatalf("len(outcomes) = %d, expected 3", len(outcomes))
	}

	first := outcomes[0]
	if first.Event != config.EventBlinkToTheStartOfNextVegetation {
		t.Errorf("outcome event = %q", first.Event)
	}
	if first.Effect != EffectBlink {
		t.Errorf("outcome effect = %v, expected blink", first.Effect)
	}
	if first.Previous.Position != core.Pos(0, 0) || first.Current.Position != core.Pos(2, 0) {
		t.Errorf("outcome moved %v -> %v, expected (0, 0) -> (2, 0)", first.Previous.Position, first.Current.Position)
	}
	if outcomes[2].Previous != outcomes[1].Current {
		t.Error("outcomes should chain")
	}
}

func TestHandleInputSkipsInvalidActions(t *testing.T) {
	c, g, buf := newTestController(t)
	s := action.NewState(g.Start())

	// h is out of bounds at x = 0, l still applies
	s, outcomes := c.HandleInput(g, s, "hl")
	if s.Position != core.Pos(1, 0) {
		t.Errorf("HandleInput(hl) = %v, expected (1, 0)", s.Position)
	}
	if len(outcomes) != 1 || outcomes[0].Effect != EffectDashRight {
		t.Errorf("outcomes = %+v, expected one dash right", outcomes)
	}
	if !strings.Contains(buf.String(), "invalid action") {
		t.Errorf("log = %q, expected an invalid action entry", buf.String())
	}
}

func TestHandleInputUnknownKey(t *testing.T) {
	c, g, buf := newTestController(t)
	s := action.NewState(g.Start())

	s, _ = c.HandleInput(g, s, "zl")
	if s.Position != core.Pos(1, 0) {
		t.Errorf("HandleInput(zl) = %v, expected (1, 0)", s.Position)
	}
	if !strings.Contains(buf.String(), "unknown input") {
		t.Errorf("log = %q, expected an unknown input entry", buf.String())
	}
}

func TestHandleInputBufferKey(t *testing.T) {
	c, g, _ := newTestController(t)
	start := action.State{Position: core.Pos(5, 2), Direction: core.West}

	// The buffer key swallows the rest of the tick
	s, outcomes := c.HandleInput(g, start, "gl")
	if s != start || len(outcomes) != 0 {
		t.Errorf("HandleInput(gl) = %v, %v, expected no change", s, outcomes)
	}
	if c.Buffer() != "g" {
		t.Errorf("Buffer() = %q, expected %q", c.Buffer(), "g")
	}

	// The next key completes the sequence
	s, outcomes = c.HandleInput(g, s, "g")
	if s.Position != core.Pos(2, 0) {
		t.Errorf("HandleInput(g) = %v, expected (2, 0)", s.Position)
	}
	if len(outcomes) != 1 || outcomes[0].Event != config.EventBlinkToTheTop {
		t.Errorf("outcomes = %+v, expected blink to the top", outcomes)
	}
	if c.Buffer() != "" {
		t.Errorf("Buffer() = %q, expected empty", c.Buffer())
	}
}

func TestHandleInputUnboundSequence(t *testing.T) {
	c, g, _ := newTestController(t)
	start := action.NewState(g.Start())

	c.HandleInput(g, start, "g")
	s, outcomes := c.HandleInput(g, start, "wl")
	// "gw" is not bound, "l" still applies
	if s.Position != core.Pos(1, 0) || len(outcomes) != 1 {
		t.Errorf("HandleInput(wl) = %v, %d outcomes, expected (1, 0) and 1", s.Position, len(outcomes))
	}
}

func TestReset(t *testing.T) {
	c, g, _ := newTestController(t)
	c.HandleInput(g, action.NewState(g.Start()), "g")
	c.Reset()
	if c.Buffer() != "" {
		t.Errorf("Buffer() = %q after Reset()", c.Buffer())
	}
}

func TestDispatchUnknownEvent(t *testing.T) {
	c, g, _ := newTestController(t)
	s := action.NewState(g.Start())

	got, _, err := c.Dispatch(g, s, "teleport")
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Dispatch() error = %v, expected ErrUnknownEvent", err)
	}
	if got != s {
		t.Errorf("Dispatch() changed state on error")
	}
}

func TestDispatchWrapsActionErrors(t *testing.T) {
	c, g, _ := newTestController(t)
	s := action.NewState(g.Start())

	_, _, err := c.Dispatch(g, s, config.EventDashUp)
	if !errors.Is(err, action.ErrOutOfBounds) {
		t.Errorf("Dispatch(dash-up) error = %v, expected ErrOutOfBounds", err)
	}
}

func TestTableCoversEveryEvent(t *testing.T) {
	table := NewTable(config.DefaultSettings().View)
	for _, event := range config.EventNames {
		h, ok := table[event]
		if !ok {
			t.Errorf("no handler for %q", event)
			continue
		}
		if h.Request == nil {
			t.Errorf("handler for %q has no request", event)
		}
	}
	if len(table) != len(config.EventNames) {
		t.Errorf("len(table) = %d, expected %d", len(table), len(config.EventNames))
	}
}

func TestTableVerticalBlinkDistance(t *testing.T) {
	table := NewTable(config.ViewConfig{HeightInTiles: 9})

	tests := []struct {
		event string
		want  action.Request
	}{
		{config.EventBlinkUp, action.VerticalJump{Direction: core.North, Steps: 9}},
		{config.EventBlinkUpHalf, action.VerticalJump{Direction: core.North, Steps: 4}},
		{config.EventBlinkDown, action.VerticalJump{Direction: core.South, Steps: 9}},
		{config.EventBlinkDownHalf, action.VerticalJump{Direction: core.South, Steps: 4}},
		{config.EventBlinkToTheTop, action.VerticalJump{Direction: core.North, Steps: -1}},
		{config.EventBlinkToTheBottom, action.VerticalJump{Direction: core.South, Steps: -1}},
	}
	for _, tc := range tests {
		if got := table[tc.event].Request; got != tc.want {
			t.Errorf("table[%q].Request = %+v, expected %+v", tc.event, got, tc.want)
		}
	}
}

func TestDashEffects(t *testing.T) {
	c, g, _ := newTestController(t)
	s := action.State{Position: core.Pos(5, 1), Direction: core.East}

	tests := []struct {
		key    string
		effect Effect
	}{
		{"h", EffectDashLeft},
		{"l", EffectDashRight},
		{"k", EffectAscent},
		{"j", EffectDescent},
	}
	for _, tc := range tests {
		_, outcomes := c.HandleInput(g, s, tc.key)
		if len(outcomes) != 1 || outcomes[0].Effect != tc.effect {
			t.Errorf("HandleInput(%q) outcomes = %+v, expected effect %v", tc.key, outcomes, tc.effect)
		}
	}
}
