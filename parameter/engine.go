package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the fixed simulation tick (60 Hz)
	GameUpdateInterval = time.Second / 60

	// FrameUpdateInterval is the rendering frame interval (~30 FPS in the terminal)
	FrameUpdateInterval = 33 * time.Millisecond
)

// Playfield
const (
	// FieldWidth and FieldHeight are the world-space extents, origin at the center
	FieldWidth  = 800.0
	FieldHeight = 600.0
)
