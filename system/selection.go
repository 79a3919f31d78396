package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
)

// SelectionSystem applies operator selection changes to targets
type SelectionSystem struct {
	world *engine.World
	log   zerolog.Logger
}

func NewSelectionSystem(world *engine.World) engine.System {
	s := &SelectionSystem{world: world}
	s.log = world.Logger(s.Name())
	return s
}

func (s *SelectionSystem) Name() string {
	return "selection"
}

func (s *SelectionSystem) Priority() int {
	return parameter.PrioritySelection
}

func (s *SelectionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetToggle,
		event.EventTargetSelectAll,
	}
}

func (s *SelectionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTargetToggle:
		if payload, ok := ev.Payload.(*event.TargetTogglePayload); ok {
			s.toggle(payload.Target)
		}
	case event.EventTargetSelectAll:
		if payload, ok := ev.Payload.(*event.TargetSelectAllPayload); ok {
			for _, target := range s.world.Components.Target.All() {
				s.set(target, payload.Selected)
			}
		}
	}
}

// Update has no per-tick work; selection is event-driven
func (s *SelectionSystem) Update() {}

func (s *SelectionSystem) toggle(target core.Entity) {
	tc, ok := s.world.Components.Target.Get(target)
	if !ok {
		s.log.Debug().Uint64("target", uint64(target)).Msg("Toggle for unknown target ignored")
		return
	}
	s.set(target, !tc.Selected)
}

func (s *SelectionSystem) set(target core.Entity, selected bool) {
	tc, ok := s.world.Components.Target.Get(target)
	if !ok || tc.Selected == selected {
		return
	}
	tc.Selected = selected
	s.world.Components.Target.Set(target, tc)

	s.world.PushEvent(event.EventTargetSelectionChanged, &event.TargetSelectionChangedPayload{
		Target:   target,
		Selected: selected,
	})
}
