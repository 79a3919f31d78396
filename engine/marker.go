package engine

import (
	"github.com/lixenwraith/floorsim/component"
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/vmath"
)

// SpawnMarker creates a visit marker with a point light child
// A non-zero anchor parents the marker to that entity; pos is then ignored
func (w *World) SpawnMarker(kind component.MarkerKind, owner, anchor core.Entity, pos vmath.Vec3F) core.Entity {
	if anchor != 0 {
		if t, ok := w.Components.Transform.Get(anchor); ok {
			pos = t.Position
		}
	}

	marker := w.CreateEntity()
	light := w.CreateEntity()
	lightOffset := vmath.Vec3F{Y: parameter.MarkerLightHeight}

	w.Components.Marker.Set(marker, component.MarkerComponent{
		Kind:   kind,
		Owner:  owner,
		Anchor: anchor,
		Light:  light,
		Radius: 0.5,
	})
	w.Components.Transform.Set(marker, component.TransformComponent{Position: pos})

	w.Components.Light.Set(light, component.LightComponent{
		Parent:    marker,
		Offset:    lightOffset,
		Range:     parameter.MarkerLightRange,
		Intensity: 1,
	})
	w.Components.Transform.Set(light, component.TransformComponent{Position: vmath.V3FAdd(pos, lightOffset)})

	return marker
}

// DestroyMarker removes a marker and its light child
// Returns false if the marker no longer exists
func (w *World) DestroyMarker(marker core.Entity) bool {
	m, ok := w.Components.Marker.Get(marker)
	if !ok {
		return false
	}
	if m.Light != 0 {
		w.DestroyEntity(m.Light)
	}
	w.DestroyEntity(marker)
	return true
}

// MarkersOfKind returns live markers of the given kind in handle order
func (w *World) MarkersOfKind(kind component.MarkerKind) []core.Entity {
	all := w.Components.Marker.All()
	out := all[:0]
	for _, e := range all {
		if m, ok := w.Components.Marker.Get(e); ok && m.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
