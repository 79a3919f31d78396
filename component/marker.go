package component

import (
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/vmath"
)

// MarkerKind separates the lifecycles of markers spawned by different flows
type MarkerKind uint8

const (
	// MarkerDispatch is spawned by the dispatch engine and anchored to a target
	MarkerDispatch MarkerKind = iota + 1
	// MarkerClick is spawned by click-to-move at an absolute position
	MarkerClick
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerDispatch:
		return "dispatch"
	case MarkerClick:
		return "click"
	default:
		return "unknown"
	}
}

// MarkerComponent is a transient visit indicator for an in-progress journey
type MarkerComponent struct {
	Kind  MarkerKind
	Owner core.Entity // Agent whose journey this marks

	// Anchor is the parent entity (target) the marker follows, zero for absolute markers
	Anchor core.Entity
	Offset vmath.Vec3F

	// Light is the attached point light child, zero if none
	Light core.Entity

	Radius float64
}

// LightComponent is a point light attached to a marker
type LightComponent struct {
	Parent    core.Entity
	Offset    vmath.Vec3F
	Range     float64
	Intensity float64 // 0..1, pulsed by MarkerSystem
}
