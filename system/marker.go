package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/floorsim/component"
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/vmath"
)

// MarkerSystem keeps visit markers attached to their anchors and pulses their lights
// Markers whose owner or anchor is gone, or that the owner no longer references, are destroyed
type MarkerSystem struct {
	world *engine.World

	statAlive *atomic.Int64
}

func NewMarkerSystem(world *engine.World) engine.System {
	return &MarkerSystem{
		world:     world,
		statAlive: world.Resources.Status.Ints.Get(status.KeyMarkersAlive),
	}
}

func (s *MarkerSystem) Name() string {
	return "marker"
}

func (s *MarkerSystem) Priority() int {
	return parameter.PriorityMarker
}

func (s *MarkerSystem) Update() {
	simTime := s.world.Resources.Time.SimTime.Seconds()
	// Map sine [-1, 1] to intensity [0.5, 1.0]
	intensity := 0.75 + 0.25*math.Sin(2*math.Pi*parameter.MarkerPulseHz*simTime)

	var orphans []core.Entity

	for _, marker := range s.world.Components.Marker.All() {
		m, ok := s.world.Components.Marker.Get(marker)
		if !ok {
			continue
		}

		if ac, ok := s.world.Components.Agent.Get(m.Owner); !ok || ac.Marker != marker {
			orphans = append(orphans, marker)
			continue
		}

		tr, ok := s.world.Components.Transform.Get(marker)
		if !ok {
			orphans = append(orphans, marker)
			continue
		}

		if m.Anchor != 0 {
			anchor, ok := s.world.Components.Transform.Get(m.Anchor)
			if !ok {
				orphans = append(orphans, marker)
				continue
			}
			tr.Position = vmath.V3FAdd(anchor.Position, m.Offset)
			s.world.Components.Transform.Set(marker, tr)
		}

		if m.Light == 0 {
			continue
		}
		light, ok := s.world.Components.Light.Get(m.Light)
		if !ok {
			continue
		}
		light.Intensity = intensity
		s.world.Components.Light.Set(m.Light, light)
		s.world.Components.Transform.Set(m.Light, component.TransformComponent{
			Position: vmath.V3FAdd(tr.Position, light.Offset),
		})
	}

	for _, marker := range orphans {
		s.world.DestroyMarker(marker)
	}

	s.statAlive.Store(int64(s.world.Components.Marker.Count()))
}
