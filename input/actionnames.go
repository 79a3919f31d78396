package input

// intentNames maps canonical action names to intents
// Used by the key binding loader to resolve config action strings
var intentNames = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"quit":         IntentQuit,
	"simulate":     IntentSimulate,
	"select_all":   IntentSelectAll,
	"select_none":  IntentSelectNone,
	"toggle_mesh":  IntentToggleMesh,
	"toggle_mute":  IntentToggleMute,
	"pan_left":     IntentPanLeft,
	"pan_right":    IntentPanRight,
	"pan_forward":  IntentPanForward,
	"pan_back":     IntentPanBack,
	"zoom_in":      IntentZoomIn,
	"zoom_out":     IntentZoomOut,
	"camera_reset": IntentCameraReset,
}

// IntentByName resolves an action name
func IntentByName(name string) (Intent, bool) {
	i, ok := intentNames[name]
	return i, ok
}

func (i Intent) String() string {
	for name, v := range intentNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}
