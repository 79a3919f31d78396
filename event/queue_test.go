package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/floorsim/parameter"
)

func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventSimulateRequest, Frame: 1})
	eq.Push(GameEvent{Type: EventTargetToggle, Payload: &TargetTogglePayload{Target: 3}, Frame: 2})
	eq.Push(GameEvent{Type: EventPointerClick, Payload: &PointerClickPayload{X: 4, Y: 5}, Frame: 3})

	events := eq.Consume()
	require.Len(t, events, 3)

	// FIFO order
	assert.Equal(t, EventSimulateRequest, events[0].Type)
	assert.Equal(t, EventTargetToggle, events[1].Type)
	assert.Equal(t, EventPointerClick, events[2].Type)
	assert.Equal(t, &PointerClickPayload{X: 4, Y: 5}, events[2].Payload)

	assert.Empty(t, eq.Consume())
	assert.Equal(t, 0, eq.Len())
}

func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	producers := 8
	perProducer := 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				eq.Push(GameEvent{Type: EventTargetToggle, Payload: id*100 + j})
			}
		}(i)
	}
	wg.Wait()

	events := eq.Consume()
	assert.Len(t, events, producers*perProducer)

	seen := make(map[int]bool)
	for _, ev := range events {
		v := ev.Payload.(int)
		assert.False(t, seen[v], "duplicate payload %d", v)
		seen[v] = true
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventPointerClick, Payload: i})
	}
	assert.Equal(t, parameter.EventQueueSize, eq.Len())

	events := eq.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, 10, events[0].Payload)
	assert.Equal(t, total-1, events[len(events)-1].Payload)
}
