package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockSchedulerRunsUntilCancelled(t *testing.T) {
	w := NewTestWorld()
	cs := NewClockScheduler(w, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cs.Run(ctx) }()

	require.Eventually(t, func() bool { return cs.TickCount() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}

	var frame int64
	w.RunSafe(func() { frame = w.Resources.Time.FrameNumber })
	assert.GreaterOrEqual(t, frame, int64(3))
}
