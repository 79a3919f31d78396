// Package input translates tcell key and mouse events into simulation events and camera moves.
package input

// Intent is the operator action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentSimulate
	IntentSelectAll
	IntentSelectNone
	IntentToggleMesh
	IntentToggleMute

	// Camera
	IntentPanLeft
	IntentPanRight
	IntentPanForward
	IntentPanBack
	IntentZoomIn
	IntentZoomOut
	IntentCameraReset
)

// Result tells the input loop what happened
type Result uint8

const (
	// ResultNone means the event was ignored
	ResultNone Result = iota
	// ResultHandled means the event was consumed
	ResultHandled
	// ResultResize means the screen changed size and needs a sync
	ResultResize
	// ResultQuit means the program should exit
	ResultQuit
)
