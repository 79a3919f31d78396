package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/floorsim/component"
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/vmath"
)

func TestDispatch_VisitsSelectedTargetsInOrder(t *testing.T) {
	s := newSim(t)
	t1 := s.world.SpawnTarget("T1", vmath.Vec3F{X: 5, Y: 0.7}, true)
	t2 := s.world.SpawnTarget("T2", vmath.Vec3F{X: 5, Y: 0.7, Z: 5}, true)
	t3 := s.world.SpawnTarget("T3", vmath.Vec3F{X: -5, Y: 0.7}, false)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.runUntilIdle(100)

	started := s.rec.journeys(event.EventJourneyStarted)
	require.Len(t, started, 2)
	assert.Equal(t, t1, started[0].Target)
	assert.Equal(t, t2, started[1].Target)
	assert.Equal(t, vmath.Vec3F{X: 5}, started[0].To, "destination is the target flattened to the ground")

	done := s.rec.journeys(event.EventJourneyComplete)
	require.Len(t, done, 2)
	assert.Equal(t, t1, done[0].Target)
	assert.Equal(t, t2, done[1].Target)
	assert.NotEqual(t, started[0].Marker, started[1].Marker, "one marker per journey")

	assert.True(t, s.dispatch.Visited(t1))
	assert.True(t, s.dispatch.Visited(t2))
	assert.False(t, s.dispatch.Visited(t3))

	pos, assigned, marker := s.agentState()
	assert.Equal(t, vmath.Vec3F{X: 5, Z: 5}, pos)
	assert.Equal(t, core.Entity(0), assigned)
	assert.Equal(t, core.Entity(0), marker)
	assert.Equal(t, 0, s.world.Components.Marker.Count())
	assert.Equal(t, 0, s.world.Components.Light.Count(), "lights go with their markers")

	assert.Equal(t, int64(2), s.metric(status.KeyDispatches))
	assert.Equal(t, int64(2), s.metric(status.KeyArrivals))
	assert.Equal(t, RunComplete, s.world.Resources.Status.Strings.Get(status.KeyRunState).Load())
}

func TestDispatch_MarkerAnchoredToTarget(t *testing.T) {
	s := newSim(t)
	t1 := s.world.SpawnTarget("T1", vmath.Vec3F{X: 8, Y: 0.7}, true)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)

	_, assigned, marker := s.agentState()
	require.Equal(t, t1, assigned)
	require.NotZero(t, marker)

	m, ok := s.world.Components.Marker.Get(marker)
	require.True(t, ok)
	assert.Equal(t, component.MarkerDispatch, m.Kind)
	assert.Equal(t, t1, m.Anchor)
	assert.Equal(t, s.agent, m.Owner)

	tr, _ := s.world.Components.Transform.Get(marker)
	assert.Equal(t, vmath.Vec3F{X: 8, Y: 0.7}, tr.Position)
	assert.True(t, s.world.Components.Light.Has(m.Light))
}

func TestDispatch_SingleActiveJourney(t *testing.T) {
	s := newSim(t)
	t1 := s.world.SpawnTarget("T1", vmath.Vec3F{X: 10}, true)
	s.world.SpawnTarget("T2", vmath.Vec3F{Z: 10}, true)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(2)
	pathBefore, ok := s.world.Components.Path.Get(s.agent)
	require.True(t, ok)

	// Repeated presses mid-journey are discarded
	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)

	pathAfter, ok := s.world.Components.Path.Get(s.agent)
	require.True(t, ok)
	assert.Equal(t, pathBefore.Current, pathAfter.Current)
	_, assigned, _ := s.agentState()
	assert.Equal(t, t1, assigned)
	assert.Equal(t, int64(1), s.metric(status.KeyDispatches))
	assert.Equal(t, 1, s.world.Components.Marker.Count())
}

func TestDispatch_SimulateCoalesces(t *testing.T) {
	s := newSim(t)
	s.world.SpawnTarget("T1", vmath.Vec3F{X: 3}, true)

	for i := 0; i < 5; i++ {
		s.world.PushEvent(event.EventSimulateRequest, nil)
	}
	s.step(1)

	assert.Equal(t, 1, s.nav.queries, "five presses, one pass")
	assert.Equal(t, int64(1), s.metric(status.KeyDispatches))
}

func TestDispatch_NoSelectedTargets(t *testing.T) {
	s := newSim(t)
	s.world.SpawnTarget("T1", vmath.Vec3F{X: 3}, false)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)

	assert.False(t, s.world.Components.Path.Has(s.agent))
	assert.Equal(t, 0, s.nav.queries)
	assert.False(t, s.dispatch.Running())
	assert.Equal(t, RunComplete, s.world.Resources.Status.Strings.Get(status.KeyRunState).Load())
}

func TestDispatch_NoPathIsNoOp(t *testing.T) {
	s := newSim(t)
	s.world.SpawnTarget("T1", vmath.Vec3F{X: 3}, true)
	s.nav.blockedTo[[2]float64{3, 0}] = true

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)

	pos, assigned, marker := s.agentState()
	assert.False(t, s.world.Components.Path.Has(s.agent))
	assert.Equal(t, vmath.Vec3F{}, pos)
	assert.Zero(t, assigned)
	assert.Zero(t, marker)
	assert.Equal(t, 0, s.world.Components.Marker.Count())
	assert.Equal(t, int64(1), s.metric(status.KeyUnreachable))
}

// An unreachable target ends the pass even when later selected targets are reachable
func TestDispatch_AbortsAtUnreachableTarget(t *testing.T) {
	s := newSim(t)
	s.world.SpawnTarget("T1", vmath.Vec3F{X: 3}, true)
	s.world.SpawnTarget("T2", vmath.Vec3F{X: -3}, true)
	s.nav.blockedTo[[2]float64{3, 0}] = true

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(3)

	assert.False(t, s.world.Components.Path.Has(s.agent), "T2 is not tried")
	assert.Equal(t, 1, s.nav.queries)
	assert.False(t, s.dispatch.Running())
	assert.Equal(t, RunAborted, s.world.Resources.Status.Strings.Get(status.KeyRunState).Load())

	require.Equal(t, 1, s.rec.count(event.EventPathRejected))
	rej := s.rec.events[0].Payload.(*event.PathRejectedPayload)
	assert.Equal(t, event.RejectUnreachable, rej.Reason)
}

func TestDispatch_EmptyPathMarksVisitedAndContinues(t *testing.T) {
	s := newSim(t)
	t1 := s.world.SpawnTarget("T1", vmath.Vec3F{Y: 0.7}, true)
	t2 := s.world.SpawnTarget("T2", vmath.Vec3F{X: 4}, true)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)

	// Standing on T1: no journey, no marker
	_, assigned, marker := s.agentState()
	assert.False(t, s.world.Components.Path.Has(s.agent))
	assert.Zero(t, assigned)
	assert.Zero(t, marker)
	assert.Equal(t, 0, s.world.Components.Marker.Count())
	assert.True(t, s.dispatch.Visited(t1))
	assert.True(t, s.world.Resources.Dispatch.Pending())

	s.step(1)
	_, assigned, _ = s.agentState()
	assert.Equal(t, t2, assigned)
	assert.True(t, s.world.Components.Path.Has(s.agent))
}

func TestDispatch_NewRunRevisitsTargets(t *testing.T) {
	s := newSim(t)
	t1 := s.world.SpawnTarget("T1", vmath.Vec3F{X: 2}, true)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.runUntilIdle(50)
	require.Equal(t, 1, s.rec.count(event.EventJourneyStarted))

	// Move the agent away so the second run has somewhere to go
	s.world.Components.Transform.Set(s.agent, component.TransformComponent{})

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.runUntilIdle(50)

	started := s.rec.journeys(event.EventJourneyStarted)
	require.Len(t, started, 2)
	assert.Equal(t, t1, started[1].Target)
}

func TestDispatch_ContinueOutsideRunIgnored(t *testing.T) {
	s := newSim(t)
	s.world.SpawnTarget("T1", vmath.Vec3F{X: 2}, true)

	s.world.Resources.Dispatch.Continue(0)
	s.step(1)

	assert.False(t, s.world.Components.Path.Has(s.agent))
	assert.Equal(t, 0, s.nav.queries)
}

func TestDispatch_MissingAgentOrNavMesh(t *testing.T) {
	s := newSim(t)
	s.world.SpawnTarget("T1", vmath.Vec3F{X: 2}, true)
	s.world.Resources.NavMesh = nil

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)
	assert.False(t, s.world.Components.Path.Has(s.agent))

	s2 := newSim(t)
	s2.world.SpawnTarget("T1", vmath.Vec3F{X: 2}, true)
	s2.world.DestroyEntity(s2.agent)

	s2.world.PushEvent(event.EventSimulateRequest, nil)
	s2.step(1)
	assert.Equal(t, 0, s2.nav.queries)
	assert.False(t, s2.dispatch.Running())
}
