package parameter

// System Execution Priorities (lower runs first)
// Order within a tick: selection reaction, click handling, dispatch, path following
const (
	PrioritySelection = 10
	PriorityClick     = 20
	PriorityDispatch  = 30
	PriorityFollow    = 40
	PriorityMarker    = 50 // After follow, anchors markers to moved targets
	PriorityOverlay   = 60
	PriorityAudio     = 70 // After all game logic
)
