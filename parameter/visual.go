package parameter

// Markers
const (
	// MarkerLightHeight is the light child offset above its marker
	MarkerLightHeight = 1.5

	// MarkerLightRange is the radius (world units) lit around a marker
	MarkerLightRange = 10.0

	// MarkerPulseHz is the light intensity pulse rate
	MarkerPulseHz = 1.5
)

// Panel
const (
	DefaultPanelWidth = 28
	PanelMinWidth     = 20
)

// Camera
const (
	CameraPanStep  = 1.0
	CameraZoomStep = 0.9
	CameraMinFOV   = 10.0
	CameraMaxFOV   = 120.0

	// CellAspect is terminal cell height divided by width
	CellAspect = 2.0
)
