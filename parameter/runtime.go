package parameter

// Logging
const (
	LogDir      = "logs"
	LogFileName = "rusteroid.log"

	// LogMaxSize triggers rotation of the previous session's file at startup
	LogMaxSize = 10 * 1024 * 1024
)

// Audio
const (
	AudioSampleRate = 44100
	AudioVolume     = 0.6
)

// Export
const (
	ExportDir         = "exports"
	ExportStrokeWidth = 1.0
)

// Input
const (
	// TurretStep is the heading change per arrow key press, in radians
	TurretStep = 0.1
)

// AudioStreamKey selects the random stream reserved for sound synthesis
// Far from the sequential keys handed out to generation
const AudioStreamKey = 1 << 63
