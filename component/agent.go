package component

import "github.com/lixenwraith/floorsim/core"

// AgentComponent marks a movable entity
// Both handles are zero when the agent has no journey
type AgentComponent struct {
	Name string

	// AssignedTarget is the target entity the agent is travelling to (dispatch flow only)
	AssignedTarget core.Entity

	// Marker is the visit marker spawned for the current journey
	Marker core.Entity
}
