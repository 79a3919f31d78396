package event

import (
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/vmath"
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// TargetTogglePayload addresses a target by entity handle
type TargetTogglePayload struct {
	Target core.Entity
}

// TargetSelectAllPayload sets every target to Selected
type TargetSelectAllPayload struct {
	Selected bool
}

// PointerClickPayload carries viewport cell coordinates of the floor view
type PointerClickPayload struct {
	X, Y int
}

// TargetSelectionChangedPayload reports the new flag value
type TargetSelectionChangedPayload struct {
	Target   core.Entity
	Selected bool
}

// JourneyPayload describes one agent journey
type JourneyPayload struct {
	Agent  core.Entity
	Target core.Entity // Zero for click-to-move journeys
	Marker core.Entity
	To     vmath.Vec3F
}

// RejectReason classifies PathRejected events
type RejectReason uint8

const (
	RejectUnreachable RejectReason = iota + 1
	RejectOffMesh
	RejectParallel
)

func (r RejectReason) String() string {
	switch r {
	case RejectUnreachable:
		return "unreachable"
	case RejectOffMesh:
		return "off_mesh"
	case RejectParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// PathRejectedPayload describes why no journey was started
type PathRejectedPayload struct {
	Agent  core.Entity
	Target core.Entity
	Reason RejectReason
}
