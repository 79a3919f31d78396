package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/component"
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/vmath"
)

// Run states reported through status.KeyRunState
const (
	RunIdle     = "idle"
	RunActive   = "running"
	RunComplete = "complete"
	RunAborted  = "aborted"
)

// DispatchSystem sends the primary agent to selected targets one at a time
// A run starts on a Simulate request while the agent is idle and visits each selected target once,
// scanning targets in ascending handle order on every pass
type DispatchSystem struct {
	world *engine.World
	log   zerolog.Logger

	running bool
	visited map[core.Entity]struct{}

	statJourneys    *atomic.Int64
	statUnreachable *atomic.Int64
	statState       *status.AtomicString
}

func NewDispatchSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &DispatchSystem{
		world:           world,
		visited:         make(map[core.Entity]struct{}),
		statJourneys:    reg.Ints.Get(status.KeyDispatches),
		statUnreachable: reg.Ints.Get(status.KeyUnreachable),
		statState:       reg.Strings.Get(status.KeyRunState),
	}
	s.log = world.Logger(s.Name())
	s.statState.Store(RunIdle)
	return s
}

func (s *DispatchSystem) Name() string {
	return "dispatch"
}

func (s *DispatchSystem) Priority() int {
	return parameter.PriorityDispatch
}

func (s *DispatchSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSimulateRequest}
}

// HandleEvent queues a start request; repeated presses before the next pass coalesce
func (s *DispatchSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventSimulateRequest {
		s.world.Resources.Dispatch.Start()
	}
}

// Running reports whether a run is in progress
func (s *DispatchSystem) Running() bool {
	return s.running
}

// Visited reports whether target was reached in the current run
func (s *DispatchSystem) Visited(target core.Entity) bool {
	_, ok := s.visited[target]
	return ok
}

func (s *DispatchSystem) Update() {
	req, ok := s.world.Resources.Dispatch.Drain()
	if !ok {
		return
	}

	if s.running {
		for _, target := range req.Reached {
			s.visited[target] = struct{}{}
		}
	}

	agent := s.world.Resources.Simulation.PrimaryAgent
	if _, ok := s.world.Components.Agent.Get(agent); !ok {
		s.log.Debug().Msg("No primary agent, dispatch skipped")
		return
	}

	if s.world.Components.Path.Has(agent) {
		// Single active journey; the follower re-triggers on completion
		s.log.Debug().Bool("start", req.Start).Msg("Agent busy, dispatch request discarded")
		return
	}

	if req.Start {
		s.beginRun()
	}
	if !s.running {
		return
	}

	s.pass(agent)
}

func (s *DispatchSystem) beginRun() {
	clear(s.visited)
	s.running = true
	s.statState.Store(RunActive)
	s.log.Info().Msg("Simulation run started")
}

func (s *DispatchSystem) endRun(state string) {
	s.running = false
	s.statState.Store(state)
	s.log.Info().Str("state", state).Int("visited", len(s.visited)).Msg("Simulation run ended")
}

// pass dispatches the agent to the first selected, unvisited target
func (s *DispatchSystem) pass(agent core.Entity) {
	nav := s.world.Resources.NavMesh
	if nav == nil || nav.Query == nil {
		s.log.Debug().Msg("No navmesh, dispatch skipped")
		return
	}

	agentTransform, ok := s.world.Components.Transform.Get(agent)
	if !ok {
		return
	}

	for _, target := range s.world.Components.Target.All() {
		tc, ok := s.world.Components.Target.Get(target)
		if !ok || !tc.Selected {
			continue
		}
		if _, done := s.visited[target]; done {
			continue
		}
		targetTransform, ok := s.world.Components.Transform.Get(target)
		if !ok {
			continue
		}

		dest := vmath.V3FFlatten(targetTransform.Position, s.world.Resources.Config.GroundY)
		waypoints, ok := nav.Query.FindPath(agentTransform.Position, dest)
		if !ok {
			// Later targets are not tried; the run stops at the first unreachable one
			s.statUnreachable.Add(1)
			s.log.Warn().
				Str("target", tc.Label).
				Float64("x", dest.X).
				Float64("z", dest.Z).
				Msg("Target unreachable, dispatch pass aborted")
			s.world.PushEvent(event.EventPathRejected, &event.PathRejectedPayload{
				Agent:  agent,
				Target: target,
				Reason: event.RejectUnreachable,
			})
			s.endRun(RunAborted)
			return
		}

		path, ok := component.NewPath(waypoints)
		if !ok {
			// Already standing at the target
			s.visited[target] = struct{}{}
			s.world.Resources.Dispatch.Continue(0)
			s.log.Debug().Str("target", tc.Label).Msg("Agent already at target")
			return
		}

		s.world.Components.Path.Set(agent, path)
		marker := s.world.SpawnMarker(component.MarkerDispatch, agent, target, dest)

		ac, _ := s.world.Components.Agent.Get(agent)
		ac.AssignedTarget = target
		ac.Marker = marker
		s.world.Components.Agent.Set(agent, ac)

		s.statJourneys.Add(1)
		s.log.Info().
			Str("agent", ac.Name).
			Str("target", tc.Label).
			Int("waypoints", path.Len()).
			Msg("Agent dispatched")
		s.world.PushEvent(event.EventJourneyStarted, &event.JourneyPayload{
			Agent:  agent,
			Target: target,
			Marker: marker,
			To:     dest,
		})
		return
	}

	s.endRun(RunComplete)
}
