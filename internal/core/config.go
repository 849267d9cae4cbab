package core

// RuntimeConfig contains settings passed to the game by the platform.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Display refresh ticks per second (default 60)
	Seed     int64  // RNG seed; 0 means seed from the clock
	Player   string // Player name override; empty keeps the stored one
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
