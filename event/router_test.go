package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	types []EventType
	got   []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.got = append(h.got, ev) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatchesByType(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter(eq)

	clicks := &recordingHandler{types: []EventType{EventPointerClick}}
	both := &recordingHandler{types: []EventType{EventPointerClick, EventSimulateRequest}}
	r.Register(clicks)
	r.Register(both)

	eq.Push(GameEvent{Type: EventSimulateRequest})
	eq.Push(GameEvent{Type: EventPointerClick})
	eq.Push(GameEvent{Type: EventNavMeshToggle})

	assert.Equal(t, 3, r.DispatchAll())
	assert.Len(t, clicks.got, 1)
	assert.Len(t, both.got, 2)
	assert.Equal(t, EventSimulateRequest, both.got[0].Type)
	assert.Equal(t, 2, r.HandlerCount(EventPointerClick))
	assert.Equal(t, 0, r.HandlerCount(EventNavMeshToggle))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "SimulateRequest", EventSimulateRequest.String())
	assert.Equal(t, "Unknown", EventType(9999).String())
	assert.Equal(t, "off_mesh", RejectOffMesh.String())
}
