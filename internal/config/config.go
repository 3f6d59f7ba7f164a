// Package config provides YAML-based settings loading for vizard: key
// bindings, view size, shard spawning and session limits.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings contains all user configurable options.
type Settings struct {
	Controls   map[string]Key `yaml:"controls"`    // Event name -> key text
	BufferKeys string         `yaml:"buffer_keys"` // Keys that start a two key sequence
	View       ViewConfig     `yaml:"view"`
	Shards     ShardConfig    `yaml:"shards"`
	Session    SessionConfig  `yaml:"session"`
	Effects    EffectsConfig  `yaml:"effects"`
}

// ViewConfig defines the visible part of the map.
type ViewConfig struct {
	HeightInTiles int `yaml:"height_in_tiles"` // Also the distance of a full blink up/down
}

// ShardConfig defines shard spawning.
type ShardConfig struct {
	PackSize    int `yaml:"pack_size"`    // Shards spawned at once
	MinDistance int `yaml:"min_distance"` // Minimum distance from the player on both axes
	MaxRolls    int `yaml:"max_rolls"`    // Random positions tried before giving up
}

// SessionConfig defines session rules.
type SessionConfig struct {
	TimeLimitSeconds int    `yaml:"time_limit_seconds"` // 0 = no limit
	Difficulty       Preset `yaml:"difficulty"`
}

// EffectsConfig defines how long cosmetic effects stay on screen.
type EffectsConfig struct {
	DashMs    int `yaml:"dash_ms"`
	BlinkMs   int `yaml:"blink_ms"`
	CollectMs int `yaml:"collect_ms"`
}

// KeyEventMap inverts Controls into key text -> event name.
func (s Settings) KeyEventMap() map[string]string {
	m := make(map[string]string, len(s.Controls))
	for event, key := range s.Controls {
		m[string(key)] = event
	}
	return m
}

// IsBufferKey reports whether c starts a two key sequence.
func (s Settings) IsBufferKey(c rune) bool {
	return strings.ContainsRune(s.BufferKeys, c)
}

// Validate checks bindings and numeric ranges.
func (s Settings) Validate() error {
	if len(s.Controls) == 0 {
		return fmt.Errorf("config: %w: no controls defined", ErrInvalidSettings)
	}

	events := make([]string, 0, len(s.Controls))
	for event := range s.Controls {
		events = append(events, event)
	}
	sort.Strings(events)

	seen := make(map[Key]string, len(s.Controls))
	for _, event := range events {
		key := s.Controls[event]
		if !IsKnownEvent(event) {
			return fmt.Errorf("config: %w: unknown event %q", ErrInvalidSettings, event)
		}
		if key == "" {
			return fmt.Errorf("config: %w: empty key for %q", ErrInvalidSettings, event)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("config: %w: key %q bound to both %q and %q",
				ErrInvalidSettings, key, other, event)
		}
		seen[key] = event

		runes := []rune(string(key))
		if len(runes) > 2 || (len(runes) == 2 && !s.IsBufferKey(runes[0])) {
			return fmt.Errorf("config: %w: key %q for %q must be one key or a buffer key plus one key",
				ErrInvalidSettings, key, event)
		}
		if len(runes) == 1 && s.IsBufferKey(runes[0]) {
			return fmt.Errorf("config: %w: key %q for %q is a buffer key",
				ErrInvalidSettings, key, event)
		}
	}

	switch {
	case s.View.HeightInTiles < 3:
		return fmt.Errorf("config: %w: view.height_in_tiles must be at least 3", ErrInvalidSettings)
	case s.Shards.PackSize < 1:
		return fmt.Errorf("config: %w: shards.pack_size must be positive", ErrInvalidSettings)
	case s.Shards.MinDistance < 0:
		return fmt.Errorf("config: %w: shards.min_distance must not be negative", ErrInvalidSettings)
	case s.Shards.MaxRolls < 1:
		return fmt.Errorf("config: %w: shards.max_rolls must be positive", ErrInvalidSettings)
	case s.Session.TimeLimitSeconds < 0:
		return fmt.Errorf("config: %w: session.time_limit_seconds must not be negative", ErrInvalidSettings)
	}
	return nil
}
