package core

// RuntimeConfig contains configuration passed to the game at start-up.
// The platform fills it from the terminal size, config file and flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	GridW    int   // Grid width in tiles (0 = derive from screen)
	GridH    int   // Grid height in tiles (0 = derive from screen)
	TickRate int   // Moves per second (default 10)
	Seed     int64 // RNG seed for apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}
