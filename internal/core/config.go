package core

// RuntimeConfig contains platform settings passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the coarse status a frontend needs between ticks.
type GameState struct {
	Score    int    // Enemies destroyed by the player
	Level    int    // Current level, 1-based
	Status   string // Game-specific phase name
	GameOver bool   // Won or lost
	Won      bool
}

// StepResult is returned by a game after each simulation tick.
type StepResult struct {
	State GameState
}
