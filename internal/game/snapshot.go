package game

import (
	"slices"

	"github.com/vovakirdan/vizard/internal/core"
)

// StateType is the coarse state of a session.
type StateType string

const (
	StatePlaying        StateType = "playing"
	StatePaused         StateType = "paused"
	StatePausedSmall    StateType = "paused_small_window"
	StateGameOver       StateType = "game_over"
	StateReplayFinished StateType = "replay_finished"
)

// Snapshot is a copy of the session state, safe to hand to other
// goroutines and to encode as JSON.
type Snapshot struct {
	MapID     string          `json:"map_id"`
	Tick      uint64          `json:"tick"`
	ElapsedMs int64           `json:"elapsed_ms"`
	Player    core.Position   `json:"player"`
	Direction core.Direction  `json:"direction"`
	Shards    []core.Position `json:"shards"`
	Score     int             `json:"score"`
	ViewShift int             `json:"view_shift"`
	Buffer    string          `json:"buffer,omitempty"`
	State     StateType       `json:"state"`
	Playback  bool            `json:"playback"`
	// RemainingMs is the time left under a time limit, -1 without one.
	RemainingMs int64    `json:"remaining_ms"`
	Effects     []Effect `json:"effects,omitempty"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	now := s.Now()

	state := StatePlaying
	switch {
	case s.finished:
		state = StateReplayFinished
	case s.gameOver:
		state = StateGameOver
	case s.tooSmall:
		state = StatePausedSmall
	case s.paused:
		state = StatePaused
	}

	remaining := int64(-1)
	if limit := s.timeLimit(); limit > 0 {
		remaining = max(0, limit-now)
	}

	shards := slices.Clone(s.shards)
	if shards == nil {
		shards = []core.Position{}
	}

	return Snapshot{
		MapID:       s.m.ID,
		Tick:        s.tick,
		ElapsedMs:   now,
		Player:      s.player.Position,
		Direction:   s.player.Direction,
		Shards:      shards,
		Score:       s.score,
		ViewShift:   s.viewShift,
		Buffer:      s.controller.Buffer(),
		State:       state,
		Playback:    s.playback != nil,
		RemainingMs: remaining,
		Effects:     slices.Clone(s.effects),
	}
}
