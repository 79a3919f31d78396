package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/status"
)

// World contains all entities, their components, resources and systems
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resource

	router  *event.Router
	systems []System

	// frame mirrors Time.FrameNumber for lock-free reads by producers
	frame atomic.Int64

	updateMutex sync.Mutex
}

// NewWorld creates a world with default resources and no systems
func NewWorld(log zerolog.Logger) *World {
	queue := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources: &Resource{
			Time: &TimeResource{},
			Config: &ConfigResource{
				Speed:            parameter.AgentSpeed,
				ArrivalTolerance: parameter.ArrivalTolerance,
				GroundY:          parameter.GroundY,
			},
			Event:      &EventQueueResource{Queue: queue},
			Simulation: &SimulationResource{},
			Dispatch:   NewDispatchQueue(),
			Status:     status.NewRegistry(),
			Log:        log,
		},
		router:  event.NewRouter(queue),
		systems: make([]System, 0, 8),
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.Remove(e)
	}
}

// Alive reports whether the entity still has any component
func (w *World) Alive(e core.Entity) bool {
	if !e.Valid() {
		return false
	}
	for _, s := range w.Components.all() {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.Components.all() {
		s.Clear()
	}
}

// AddSystem adds a system sorted by priority, registering it for events if it handles any
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})

	if h, ok := system.(event.Handler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Renderers use it to read a consistent snapshot between steps
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step advances the simulation by one tick
// Routes queued events to handlers, then runs systems in priority order
func (w *World) Step(dt time.Duration) {
	w.RunSafe(func() {
		w.StepLocked(dt)
	})
}

// StepLocked runs one tick assuming the caller already holds the update lock
func (w *World) StepLocked(dt time.Duration) {
	if dt > parameter.MaxStepDelta {
		dt = parameter.MaxStepDelta
	}
	w.Resources.Time.Advance(dt)
	w.frame.Store(w.Resources.Time.FrameNumber)

	w.router.DispatchAll()

	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent emits a game event tagged with the current frame
// Safe to call from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// FrameNumber returns the current step index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// Logger returns a sub-logger tagged with the system name
func (w *World) Logger(system string) zerolog.Logger {
	return w.Resources.Log.With().Str("system", system).Logger()
}
