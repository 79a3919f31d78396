package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/vmath"
)

// Resource holds singleton simulation resources, accessed via World.Resources
// Optional collaborators (NavMesh, Camera, Audio) may be nil; systems treat nil as nothing to do
type Resource struct {
	Time       *TimeResource
	Config     *ConfigResource
	Event      *EventQueueResource
	Simulation *SimulationResource
	Dispatch   *DispatchQueue

	NavMesh *NavMeshResource
	Camera  *CameraResource
	Audio   *AudioResource

	Status *status.Registry
	Log    zerolog.Logger
}

// TimeResource wraps per-tick time data for systems
type TimeResource struct {
	// SimTime is accumulated simulated time
	SimTime time.Duration

	// DeltaTime is the duration of the current step
	DeltaTime time.Duration

	// FrameNumber is the current step count
	FrameNumber int64
}

// Advance moves time forward by one step
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.SimTime += dt
	tr.FrameNumber++
}

// ConfigResource holds simulation tuning
type ConfigResource struct {
	Speed            float64 // World units per second
	ArrivalTolerance float64
	GroundY          float64
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// SimulationResource holds the global single-entity invariants of the simulation
type SimulationResource struct {
	// PrimaryAgent is the one agent driven by the dispatch engine
	// Other agents only respond to click-to-move
	PrimaryAgent core.Entity
}

// === Collaborators ===

// NavMeshQuery is the walkable-surface query service
type NavMeshQuery interface {
	// IsWalkable reports whether the horizontal projection of p lies in the walkable region
	IsWalkable(p vmath.Vec3F) bool

	// FindPath returns waypoints from 'from' (exclusive) to 'to' (inclusive)
	// ok is false when no path exists; an empty slice with ok means already there
	FindPath(from, to vmath.Vec3F) (waypoints []vmath.Vec3F, ok bool)
}

// NavMeshResource is the single active navmesh
type NavMeshResource struct {
	ID      string
	Query   NavMeshQuery
	Visible bool // Overlay display only, does not affect queries
}

// Viewport resolves pointer positions into world rays
type Viewport interface {
	ViewportToWorld(x, y int) (vmath.Ray, bool)
}

// CameraResource wraps the active camera
type CameraResource struct {
	Viewport Viewport
}

// Cue identifies a feedback sound
type Cue uint8

const (
	CueToggle Cue = iota + 1
	CueDispatch
	CueArrive
	CueReject
)

// AudioPlayer defines the minimal audio interface used by systems
type AudioPlayer interface {
	Play(Cue) bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
