package event

// EventType represents the type of game event
type EventType int

const (
	// === Operator Event ===

	// EventSimulateRequest starts a simulation run over the selected targets
	// Trigger: Panel "Simulate" button, 's' key
	// Consumer: DispatchSystem | Payload: nil
	EventSimulateRequest EventType = iota + 1

	// EventTargetToggle flips the selected flag of one target
	// Trigger: Panel checkbox, digit keys
	// Consumer: SelectionSystem | Payload: *TargetTogglePayload
	EventTargetToggle

	// EventTargetSelectAll sets the selected flag of every target
	// Trigger: 'a' / 'n' keys
	// Consumer: SelectionSystem | Payload: *TargetSelectAllPayload
	EventTargetSelectAll

	// EventPointerClick is a primary click inside the floor view
	// Trigger: Mouse button 1 press
	// Consumer: ClickSystem | Payload: *PointerClickPayload
	EventPointerClick

	// EventNavMeshToggle flips navmesh overlay visibility
	// Trigger: 'm' key
	// Consumer: OverlaySystem | Payload: nil
	EventNavMeshToggle

	// === Simulation Event ===

	// EventTargetSelectionChanged reports a selection flag change
	// Trigger: SelectionSystem
	// Consumer: AudioSystem | Payload: *TargetSelectionChangedPayload
	EventTargetSelectionChanged EventType = iota + 100

	// EventJourneyStarted reports a path attached and a marker spawned
	// Trigger: DispatchSystem, ClickSystem
	// Consumer: AudioSystem | Payload: *JourneyPayload
	EventJourneyStarted

	// EventJourneyComplete reports the final waypoint reached and the marker destroyed
	// Trigger: FollowSystem
	// Consumer: AudioSystem | Payload: *JourneyPayload
	EventJourneyComplete

	// EventPathRejected reports an unreachable destination or an off-mesh click
	// Trigger: DispatchSystem, ClickSystem
	// Consumer: AudioSystem | Payload: *PathRejectedPayload
	EventPathRejected
)
