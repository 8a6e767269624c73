package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the tick and frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta handed to a tick after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the buffered capacity of the backend event channel
	EventQueueSize = 256
)

// Input Devices
const (
	// MaxDevices is the number of device slots sampled per tick
	MaxDevices = 4

	// KeyHoldWindow is how long a terminal key press counts as held without a repeat
	KeyHoldWindow = 80 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-menu.log"

	// LogMaxSize rotates the log on startup once it grows past this
	LogMaxSize = 10 * 1024 * 1024
)

// Configuration
const (
	// ConfigReloadDebounce coalesces the burst of writes editors emit on save
	ConfigReloadDebounce = 100 * time.Millisecond

	// EnvPrefix namespaces environment overrides
	EnvPrefix = "VI_MENU_"
)
