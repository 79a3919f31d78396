package system

import (
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
)

// AudioSystem turns simulation events into feedback cues
// Decouples simulation systems from direct audio access
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetSelectionChanged,
		event.EventJourneyStarted,
		event.EventJourneyComplete,
		event.EventPathRejected,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	res := s.world.Resources.Audio
	if res == nil || res.Player == nil || res.Player.IsMuted() {
		return
	}

	switch ev.Type {
	case event.EventTargetSelectionChanged:
		res.Player.Play(engine.CueToggle)
	case event.EventJourneyStarted:
		res.Player.Play(engine.CueDispatch)
	case event.EventJourneyComplete:
		res.Player.Play(engine.CueArrive)
	case event.EventPathRejected:
		res.Player.Play(engine.CueReject)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
