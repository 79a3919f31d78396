package engine

import (
	"github.com/lixenwraith/floorsim/component"
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/vmath"
)

// SpawnAgent creates an agent entity at pos
func (w *World) SpawnAgent(name string, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{Position: pos})
	w.Components.Agent.Set(e, component.AgentComponent{Name: name})
	return e
}

// SpawnTarget creates a target entity at pos
func (w *World) SpawnTarget(label string, pos vmath.Vec3F, selected bool) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{Position: pos})
	w.Components.Target.Set(e, component.TargetComponent{
		Label:    label,
		Selected: selected,
		SizeX:    1,
		SizeY:    1,
		SizeZ:    2.3,
	})
	return e
}
