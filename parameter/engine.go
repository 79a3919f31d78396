package parameter

import "time"

// Event Queue
const (
	// EventQueueSize must be a power of two for the ring mask
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Clock
const (
	// DefaultTickRate is simulation steps per second
	DefaultTickRate = 60

	// MaxStepDelta caps dt handed to systems after a stall (debugger, suspended terminal)
	MaxStepDelta = 100 * time.Millisecond

	// FrameInterval is the render refresh period
	FrameInterval = 33 * time.Millisecond
)
