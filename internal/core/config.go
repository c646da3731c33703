package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions describe the frontend surface; games keep their own world
// size and scale onto it when rendering.
type RuntimeConfig struct {
	ScreenW  int   // Frontend surface width (cells or pixels)
	ScreenH  int   // Frontend surface height (cells or pixels)
	TickRate int   // Frames per second requested from the frontend (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Apples eaten in the current session
	GameOver  bool // The session ended and the frontend should exit
	Paused    bool // Simulation is paused by the player
	Resetting bool // Simulation is frozen until the pending reset completes
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState

	// BorderHit is set on the frame the player crossed a screen edge.
	BorderHit bool

	// Eaten counts apples consumed during this frame.
	Eaten int

	// ResetDone is set on the frame a pending reset reinitialized the state.
	ResetDone bool
}
