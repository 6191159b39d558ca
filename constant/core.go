package constant

import "time"

// Event Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 256
)

// Event Queue Limits
const (
	// EventQueueSize bounds the events pending between two frame drains
	EventQueueSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "regroup.log"

	// LogMaxSize triggers rotation of the debug log on startup
	LogMaxSize = 10 * 1024 * 1024
)

// Config Reload
const (
	// ConfigReloadDebounce coalesces bursts of write events from editors
	ConfigReloadDebounce = 150 * time.Millisecond

	// EnvPrefix is prepended to every environment override
	EnvPrefix = "REGROUP_"
)
