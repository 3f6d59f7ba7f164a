package config

import (
	_ "embed"
)

//go:embed defaults/vizard.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded default settings. They match the
// embedded defaults/vizard.yaml.
func DefaultSettings() Settings {
	return Settings{
		Controls: map[string]Key{
			EventDashLeft:  "h",
			EventDashRight: "l",
			EventDashUp:    "k",
			EventDashDown:  "j",

			EventBlinkToTheStartOfNextVegetation:          "w",
			EventBlinkToTheStartOfNextVegetationChunk:     "W",
			EventBlinkToTheEndOfNextVegetation:            "e",
			EventBlinkToTheEndOfNextVegetationChunk:       "E",
			EventBlinkToTheStartOfPreviousVegetation:      "b",
			EventBlinkToTheStartOfPreviousVegetationChunk: "B",
			EventBlinkToTheEndOfContour:                   "$",
			EventBlinkToTheStartOfContour:                 "0",
			EventBlinkToTheStartOfFirstVegetationChunk:    "^",

			EventBlinkToTheTop:    "gg",
			EventBlinkToTheBottom: "G",
			EventBlinkUp:          "\x02", // Ctrl+B
			EventBlinkUpHalf:      "\x15", // Ctrl+U
			EventBlinkDown:        "\x06", // Ctrl+F
			EventBlinkDownHalf:    "\x04", // Ctrl+D
		},
		BufferKeys: "g",
		View: ViewConfig{
			HeightInTiles: 15,
		},
		Shards: ShardConfig{
			PackSize:    2,
			MinDistance: 4,
			MaxRolls:    500,
		},
		Session: SessionConfig{
			TimeLimitSeconds: 120,
			Difficulty:       PresetCustom,
		},
		Effects: EffectsConfig{
			DashMs:    200,
			BlinkMs:   300,
			CollectMs: 400,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
