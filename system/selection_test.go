package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/vmath"
)

func TestSelection_Toggle(t *testing.T) {
	s := newSim(t)
	target := s.world.SpawnTarget("T1", vmath.Vec3F{X: 1}, false)

	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: target})
	s.step(2)

	tc, _ := s.world.Components.Target.Get(target)
	assert.True(t, tc.Selected)

	require.Equal(t, 1, s.rec.count(event.EventTargetSelectionChanged))
	changed := s.rec.events[0].Payload.(*event.TargetSelectionChangedPayload)
	assert.Equal(t, target, changed.Target)
	assert.True(t, changed.Selected)

	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: target})
	s.step(1)
	tc, _ = s.world.Components.Target.Get(target)
	assert.False(t, tc.Selected)
}

func TestSelection_UnknownTargetIgnored(t *testing.T) {
	s := newSim(t)
	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: 999})
	s.step(2)
	assert.Equal(t, 0, s.rec.count(event.EventTargetSelectionChanged))
}

func TestSelection_SelectAll(t *testing.T) {
	s := newSim(t)
	a := s.world.SpawnTarget("A", vmath.Vec3F{}, true)
	s.world.SpawnTarget("B", vmath.Vec3F{}, false)
	s.world.SpawnTarget("C", vmath.Vec3F{}, false)

	s.world.PushEvent(event.EventTargetSelectAll, &event.TargetSelectAllPayload{Selected: true})
	s.step(2)

	for _, e := range s.world.Components.Target.All() {
		tc, _ := s.world.Components.Target.Get(e)
		assert.True(t, tc.Selected)
	}
	assert.Equal(t, 2, s.rec.count(event.EventTargetSelectionChanged), "only changed targets are reported")

	s.world.PushEvent(event.EventTargetSelectAll, &event.TargetSelectAllPayload{Selected: false})
	s.step(1)
	tc, _ := s.world.Components.Target.Get(a)
	assert.False(t, tc.Selected)
}

func TestSelection_DeselectDoesNotCancelJourney(t *testing.T) {
	s := newSim(t)
	target := s.world.SpawnTarget("T1", vmath.Vec3F{X: 9}, true)

	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.step(1)
	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: target})
	s.step(1)

	_, assigned, _ := s.agentState()
	assert.Equal(t, target, assigned)
	assert.True(t, s.world.Components.Path.Has(s.agent))
}

func TestOverlay_Toggle(t *testing.T) {
	s := newSim(t)
	nav := s.world.Resources.NavMesh
	query := nav.Query

	s.world.PushEvent(event.EventNavMeshToggle, nil)
	s.step(1)
	assert.True(t, nav.Visible)
	assert.Same(t, query, nav.Query, "visibility does not touch the query")

	s.world.PushEvent(event.EventNavMeshToggle, nil)
	s.step(1)
	assert.False(t, nav.Visible)
}

type fakePlayer struct {
	muted bool
	cues  []engine.Cue
}

func (p *fakePlayer) Play(c engine.Cue) bool {
	p.cues = append(p.cues, c)
	return true
}

func (p *fakePlayer) IsMuted() bool { return p.muted }

func TestAudio_Cues(t *testing.T) {
	s := newSim(t)
	player := &fakePlayer{}
	s.world.Resources.Audio = &engine.AudioResource{Player: player}
	s.world.AddSystem(NewAudioSystem(s.world))

	target := s.world.SpawnTarget("T1", vmath.Vec3F{X: 1}, false)
	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: target})
	s.world.PushEvent(event.EventSimulateRequest, nil)
	s.runUntilIdle(20)
	s.step(1)

	assert.Equal(t, []engine.Cue{engine.CueToggle, engine.CueDispatch, engine.CueArrive}, player.cues)

	player.cues = nil
	player.muted = true
	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: target})
	s.step(2)
	assert.Empty(t, player.cues)
}

func TestAudio_NoPlayer(t *testing.T) {
	s := newSim(t)
	s.world.AddSystem(NewAudioSystem(s.world))
	target := s.world.SpawnTarget("T1", vmath.Vec3F{X: 1}, false)

	s.world.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: target})
	assert.NotPanics(t, func() { s.step(2) })
}
