package constants

import "time"

// Simulation Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultTickInterval is the simulation tick interval (one physics step)
	DefaultTickInterval = 250 * time.Millisecond

	// MinTickInterval is the fastest tick the speed controls allow
	MinTickInterval = 15 * time.Millisecond

	// MaxTickInterval is the slowest tick the speed controls allow
	MaxTickInterval = 4 * time.Second
)

// System Execution Priorities (lower runs first)
const (
	PriorityMovement = 10
	PriorityTraffic  = 20 // Reads post-move train positions
)

// Default Layout
const (
	// DefaultTrackWidth is the ring width in tiles
	DefaultTrackWidth = 20

	// DefaultTrackHeight is the ring height in tiles
	DefaultTrackHeight = 10

	// EventQueueSize is the buffer of the terminal event channel
	EventQueueSize = 100
)
