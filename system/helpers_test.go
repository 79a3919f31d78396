package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/vmath"
)

// tick is one step at the clamp limit: 1 world unit of travel at the default speed
const tick = 100 * time.Millisecond

// fakeNav answers straight-line paths on an unbounded floor
type fakeNav struct {
	blockedTo   map[[2]float64]bool
	blockedFrom map[[2]float64]bool
	offMesh     func(p vmath.Vec3F) bool
	route       func(from, to vmath.Vec3F) []vmath.Vec3F

	queries int
}

func newFakeNav() *fakeNav {
	return &fakeNav{
		blockedTo:   make(map[[2]float64]bool),
		blockedFrom: make(map[[2]float64]bool),
	}
}

func xz(p vmath.Vec3F) [2]float64 { return [2]float64{p.X, p.Z} }

func (n *fakeNav) IsWalkable(p vmath.Vec3F) bool {
	return n.offMesh == nil || !n.offMesh(p)
}

func (n *fakeNav) FindPath(from, to vmath.Vec3F) ([]vmath.Vec3F, bool) {
	n.queries++
	if n.blockedTo[xz(to)] || n.blockedFrom[xz(from)] || !n.IsWalkable(to) {
		return nil, false
	}
	if vmath.V3FDistXZ(from, to) < 1e-6 {
		return []vmath.Vec3F{}, true
	}
	if n.route != nil {
		return n.route(from, to), true
	}
	return []vmath.Vec3F{to}, true
}

// fakeViewport returns the same ray for every in-bounds cell
type fakeViewport struct {
	ray vmath.Ray
}

func (v *fakeViewport) ViewportToWorld(x, y int) (vmath.Ray, bool) {
	if x < 0 || y < 0 {
		return vmath.Ray{}, false
	}
	return v.ray, true
}

// downAt is a ray looking straight down onto (x, z)
func downAt(x, z float64) vmath.Ray {
	return vmath.Ray{Origin: vmath.Vec3F{X: x, Y: 10, Z: z}, Dir: vmath.Vec3F{Y: -1}}
}

// recorder captures routed events
type recorder struct {
	types  []event.EventType
	events []event.GameEvent
}

func (r *recorder) Name() string                 { return "recorder" }
func (r *recorder) Priority() int                 { return 0 }
func (r *recorder) Update()                       {}
func (r *recorder) EventTypes() []event.EventType { return r.types }
func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) journeys(t event.EventType) []*event.JourneyPayload {
	var out []*event.JourneyPayload
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev.Payload.(*event.JourneyPayload))
		}
	}
	return out
}

type sim struct {
	t     *testing.T
	world *engine.World
	nav   *fakeNav
	view  *fakeViewport
	rec   *recorder
	agent core.Entity

	dispatch *DispatchSystem
}

// newSim builds a world with every simulation system, one agent at the origin and a fake navmesh
func newSim(t *testing.T) *sim {
	t.Helper()
	w := engine.NewTestWorld()
	nav := newFakeNav()
	view := &fakeViewport{ray: downAt(0, 0)}

	w.Resources.NavMesh = &engine.NavMeshResource{ID: "test", Query: nav}
	w.Resources.Camera = &engine.CameraResource{Viewport: view}

	agent := w.SpawnAgent("agent", vmath.Vec3F{})
	w.Resources.Simulation.PrimaryAgent = agent

	rec := &recorder{types: []event.EventType{
		event.EventTargetSelectionChanged,
		event.EventJourneyStarted,
		event.EventJourneyComplete,
		event.EventPathRejected,
	}}

	dispatch := NewDispatchSystem(w).(*DispatchSystem)
	w.AddSystem(NewSelectionSystem(w))
	w.AddSystem(NewClickSystem(w))
	w.AddSystem(dispatch)
	w.AddSystem(NewFollowSystem(w))
	w.AddSystem(NewMarkerSystem(w))
	w.AddSystem(NewOverlaySystem(w))
	w.AddSystem(rec)

	return &sim{t: t, world: w, nav: nav, view: view, rec: rec, agent: agent, dispatch: dispatch}
}

func (s *sim) step(n int) {
	for i := 0; i < n; i++ {
		s.world.Step(tick)
	}
}

// runUntilIdle steps until the agent has no path and no dispatch is queued, failing after limit steps
func (s *sim) runUntilIdle(limit int) int {
	s.t.Helper()
	for i := 1; i <= limit; i++ {
		s.world.Step(tick)
		if !s.world.Components.Path.Has(s.agent) && !s.world.Resources.Dispatch.Pending() && !s.dispatch.Running() {
			return i
		}
	}
	s.t.Fatalf("simulation still busy after %d steps", limit)
	return limit
}

func (s *sim) agentState() (vmath.Vec3F, core.Entity, core.Entity) {
	tr, _ := s.world.Components.Transform.Get(s.agent)
	ac, _ := s.world.Components.Agent.Get(s.agent)
	return tr.Position, ac.AssignedTarget, ac.Marker
}

func (s *sim) metric(key string) int64 {
	return s.world.Resources.Status.Ints.Get(key).Load()
}
