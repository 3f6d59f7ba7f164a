package core

// RuntimeConfig contains configuration passed to a game session at start.
// Sessions use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic shard spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session as seen by the platform.
type GameState struct {
	Score    int  // Shards collected
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the session is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
