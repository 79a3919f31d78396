package system

import (
	"math"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/vmath"
)

// FollowSystem moves every entity with a Path toward its current waypoint at constant speed
type FollowSystem struct {
	world *engine.World
	log   zerolog.Logger

	statWaypoints *atomic.Int64
	statArrivals  *atomic.Int64
}

func NewFollowSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &FollowSystem{
		world:         world,
		statWaypoints: reg.Ints.Get(status.KeyWaypoints),
		statArrivals:  reg.Ints.Get(status.KeyArrivals),
	}
	s.log = world.Logger(s.Name())
	return s
}

func (s *FollowSystem) Name() string {
	return "follow"
}

func (s *FollowSystem) Priority() int {
	return parameter.PriorityFollow
}

func (s *FollowSystem) Update() {
	cfg := s.world.Resources.Config
	step := cfg.Speed * s.world.Resources.Time.DeltaTime.Seconds()

	for _, entity := range s.world.Components.Path.All() {
		path, ok := s.world.Components.Path.Get(entity)
		if !ok {
			continue
		}
		tr, ok := s.world.Components.Transform.Get(entity)
		if !ok {
			s.world.Components.Path.Remove(entity)
			continue
		}

		if !vmath.V3FIsFinite(path.Current) || !vmath.V3FIsFinite(tr.Position) {
			s.log.Warn().Uint64("entity", uint64(entity)).Msg("Non-finite waypoint or position, path dropped")
			s.finish(entity)
			continue
		}

		dir := vmath.V3FSub(path.Current, tr.Position)
		dist := vmath.V3FMag(dir)

		if dist < cfg.ArrivalTolerance {
			if path.Advance() {
				s.world.Components.Path.Set(entity, path)
				s.statWaypoints.Add(1)
				continue
			}
			s.statWaypoints.Add(1)
			s.finish(entity)
			continue
		}

		move := math.Min(step, dist)
		tr.Position = vmath.V3FAdd(tr.Position, vmath.V3FScale(dir, move/dist))
		if dir.X != 0 || dir.Z != 0 {
			tr.Yaw = math.Atan2(dir.X, dir.Z)
		}
		s.world.Components.Transform.Set(entity, tr)
	}
}

// finish ends the journey: path removed, marker destroyed, dispatch re-triggered
func (s *FollowSystem) finish(entity core.Entity) {
	s.world.Components.Path.Remove(entity)

	ac, ok := s.world.Components.Agent.Get(entity)
	if !ok {
		return
	}

	reached := ac.AssignedTarget
	marker := ac.Marker
	if marker != 0 {
		s.world.DestroyMarker(marker)
	}
	ac.AssignedTarget = 0
	ac.Marker = 0
	s.world.Components.Agent.Set(entity, ac)

	s.statArrivals.Add(1)
	s.world.Resources.Dispatch.Continue(reached)

	tr, _ := s.world.Components.Transform.Get(entity)
	s.log.Debug().Str("agent", ac.Name).Uint64("target", uint64(reached)).Msg("Journey complete")
	s.world.PushEvent(event.EventJourneyComplete, &event.JourneyPayload{
		Agent:  entity,
		Target: reached,
		Marker: marker,
		To:     tr.Position,
	})
}
