package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys written by the simulation systems
const (
	KeyDispatches   = "dispatch.journeys"
	KeyUnreachable  = "dispatch.unreachable"
	KeyRunState     = "dispatch.state"
	KeyWaypoints    = "follow.waypoints"
	KeyArrivals     = "follow.arrivals"
	KeyClicks       = "click.journeys"
	KeyClickReject  = "click.rejected"
	KeyMarkersAlive = "marker.alive"
	KeyTicks        = "engine.ticks"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Lines renders every metric as "key value" in sorted key order, ints first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Strings.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s %s", key, v.Load()))
	})
	return lines
}
