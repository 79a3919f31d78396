package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/floorsim/status"
)

// ClockScheduler drives World.Step on a fixed tick
// dt handed to systems is the measured wall time between ticks
type ClockScheduler struct {
	world        *World
	tickInterval time.Duration

	tickCount atomic.Uint64
	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler with the given tick interval
func NewClockScheduler(world *World, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		statTicks:    world.Resources.Status.Ints.Get(status.KeyTicks),
	}
}

// Run ticks until ctx is cancelled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			cs.world.Step(dt)
			cs.statTicks.Store(int64(cs.tickCount.Add(1)))
		}
	}
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
