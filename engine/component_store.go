package engine

import (
	"github.com/lixenwraith/floorsim/component"
)

// ComponentStore holds one arena per component type
// Agents, targets and markers reference each other by handle only
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Agent     *Store[component.AgentComponent]
	Path      *Store[component.PathComponent]
	Target    *Store[component.TargetComponent]
	Marker    *Store[component.MarkerComponent]
	Light     *Store[component.LightComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Agent:     NewStore[component.AgentComponent](),
		Path:      NewStore[component.PathComponent](),
		Target:    NewStore[component.TargetComponent](),
		Marker:    NewStore[component.MarkerComponent](),
		Light:     NewStore[component.LightComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{c.Transform, c.Agent, c.Path, c.Target, c.Marker, c.Light}
}
