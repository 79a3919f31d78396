package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
)

// OverlaySystem toggles the navmesh debug overlay
type OverlaySystem struct {
	world *engine.World
	log   zerolog.Logger
}

func NewOverlaySystem(world *engine.World) engine.System {
	s := &OverlaySystem{world: world}
	s.log = world.Logger(s.Name())
	return s
}

func (s *OverlaySystem) Name() string {
	return "overlay"
}

func (s *OverlaySystem) Priority() int {
	return parameter.PriorityOverlay
}

func (s *OverlaySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventNavMeshToggle}
}

func (s *OverlaySystem) HandleEvent(ev event.GameEvent) {
	nav := s.world.Resources.NavMesh
	if nav == nil {
		return
	}
	nav.Visible = !nav.Visible
	s.log.Debug().Str("mesh", nav.ID).Bool("visible", nav.Visible).Msg("Navmesh overlay toggled")
}

func (s *OverlaySystem) Update() {}
