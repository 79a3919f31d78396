package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/component"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/vmath"
)

// ClickSystem sends agents to a clicked floor position
type ClickSystem struct {
	world *engine.World
	log   zerolog.Logger

	statJourneys *atomic.Int64
	statRejected *atomic.Int64
}

func NewClickSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &ClickSystem{
		world:        world,
		statJourneys: reg.Ints.Get(status.KeyClicks),
		statRejected: reg.Ints.Get(status.KeyClickReject),
	}
	s.log = world.Logger(s.Name())
	return s
}

func (s *ClickSystem) Name() string {
	return "click"
}

func (s *ClickSystem) Priority() int {
	return parameter.PriorityClick
}

func (s *ClickSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPointerClick}
}

func (s *ClickSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.PointerClickPayload); ok {
		s.click(payload.X, payload.Y)
	}
}

func (s *ClickSystem) Update() {}

func (s *ClickSystem) click(x, y int) {
	cam := s.world.Resources.Camera
	if cam == nil || cam.Viewport == nil {
		s.log.Debug().Msg("No camera, click ignored")
		return
	}
	nav := s.world.Resources.NavMesh
	if nav == nil || nav.Query == nil {
		s.log.Debug().Msg("No navmesh, click ignored")
		return
	}

	ray, ok := cam.Viewport.ViewportToWorld(x, y)
	if !ok {
		s.log.Debug().Int("x", x).Int("y", y).Msg("Click outside viewport")
		return
	}

	hit, ok := vmath.IntersectRayPlane(ray, vmath.GroundPlane(s.world.Resources.Config.GroundY), parameter.RayParallelEpsilon)
	if !ok {
		s.reject(event.RejectParallel)
		return
	}
	if !nav.Query.IsWalkable(hit) {
		s.reject(event.RejectOffMesh)
		return
	}

	// Previous click markers go regardless of which agents accept the new destination
	for _, marker := range s.world.MarkersOfKind(component.MarkerClick) {
		m, _ := s.world.Components.Marker.Get(marker)
		if ac, ok := s.world.Components.Agent.Get(m.Owner); ok && ac.Marker == marker {
			ac.Marker = 0
			s.world.Components.Agent.Set(m.Owner, ac)
		}
		s.world.DestroyMarker(marker)
	}

	for _, agent := range s.world.Components.Agent.All() {
		tr, ok := s.world.Components.Transform.Get(agent)
		if !ok {
			continue
		}

		waypoints, ok := nav.Query.FindPath(tr.Position, hit)
		if !ok {
			s.statRejected.Add(1)
			s.log.Warn().Uint64("agent", uint64(agent)).Msg("Click destination unreachable, remaining agents skipped")
			s.world.PushEvent(event.EventPathRejected, &event.PathRejectedPayload{
				Agent:  agent,
				Reason: event.RejectUnreachable,
			})
			break
		}

		path, ok := component.NewPath(waypoints)
		if !ok {
			continue
		}

		ac, _ := s.world.Components.Agent.Get(agent)
		if ac.Marker != 0 {
			s.world.DestroyMarker(ac.Marker)
		}
		if ac.AssignedTarget != 0 {
			s.log.Debug().Str("agent", ac.Name).Uint64("target", uint64(ac.AssignedTarget)).Msg("Dispatch journey redirected")
		}

		s.world.Components.Path.Set(agent, path)
		marker := s.world.SpawnMarker(component.MarkerClick, agent, 0, hit)
		ac.Marker = marker
		ac.AssignedTarget = 0
		s.world.Components.Agent.Set(agent, ac)

		s.statJourneys.Add(1)
		s.world.PushEvent(event.EventJourneyStarted, &event.JourneyPayload{
			Agent:  agent,
			Marker: marker,
			To:     hit,
		})
	}
}

func (s *ClickSystem) reject(reason event.RejectReason) {
	s.statRejected.Add(1)
	s.log.Debug().Str("reason", reason.String()).Msg("Click rejected")
	s.world.PushEvent(event.EventPathRejected, &event.PathRejectedPayload{Reason: reason})
}
