package event

var typeToName = map[EventType]string{
	EventSimulateRequest:        "SimulateRequest",
	EventTargetToggle:           "TargetToggle",
	EventTargetSelectAll:        "TargetSelectAll",
	EventPointerClick:           "PointerClick",
	EventNavMeshToggle:          "NavMeshToggle",
	EventTargetSelectionChanged: "TargetSelectionChanged",
	EventJourneyStarted:         "JourneyStarted",
	EventJourneyComplete:        "JourneyComplete",
	EventPathRejected:           "PathRejected",
}

// String returns the registered name, used in logs
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}
