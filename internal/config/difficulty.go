package config

import "fmt"

// Preset is a named difficulty level. It adjusts the time limit and the
// number of shards spawned at once.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetZen    Preset = "zen" // No time limit
	// PresetCustom keeps the values from the settings file as they are.
	PresetCustom Preset = "custom"
)

// Validate reports unknown presets.
func (p Preset) Validate() error {
	switch p {
	case PresetEasy, PresetNormal, PresetHard, PresetZen, PresetCustom:
		return nil
	}
	return fmt.Errorf("config: %w: unknown difficulty %q", ErrInvalidSettings, p)
}

// ApplyPreset modifies the settings based on a difficulty preset.
func ApplyPreset(s *Settings, preset Preset) {
	s.Session.Difficulty = preset
	switch preset {
	case PresetEasy:
		s.Session.TimeLimitSeconds = 180
		s.Shards.PackSize = 3
	case PresetNormal:
		s.Session.TimeLimitSeconds = 120
		s.Shards.PackSize = 2
	case PresetHard:
		s.Session.TimeLimitSeconds = 60
		s.Shards.PackSize = 1
	case PresetZen:
		s.Session.TimeLimitSeconds = 0
	}
}
