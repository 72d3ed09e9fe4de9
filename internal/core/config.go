package core

// RuntimeConfig contains configuration passed to frontends at startup.
type RuntimeConfig struct {
	TickRate int   // Render loop frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Frame is the per-tick context handed from a frontend loop to the game.
// The loop fills ElapsedMs, Action and Screen; the game draws into Screen
// and may set Quit to ask the loop to stop.
type Frame struct {
	ElapsedMs float64 // Real time since the previous tick, in milliseconds
	Action    Action  // At most one key event, ActionNone otherwise
	Screen    *Screen
	Quit      bool
}
