package engine

import (
	"github.com/lixenwraith/floorsim/core"
)

// DispatchRequest is the coalesced content of one drain of the DispatchQueue
type DispatchRequest struct {
	// Start is set when the operator asked for a new run
	Start bool

	// Reached lists targets arrived at since the previous drain, in arrival order
	Reached []core.Entity
}

// DispatchQueue is the work queue between the operator, the path follower and the dispatch engine
// Any number of pushes between two drains collapse into a single dispatch pass
// Single-threaded: pushed and drained from systems inside World.Step
type DispatchQueue struct {
	pending bool
	req     DispatchRequest
}

// NewDispatchQueue creates an empty queue
func NewDispatchQueue() *DispatchQueue {
	return &DispatchQueue{}
}

// Start requests a new simulation run
func (q *DispatchQueue) Start() {
	q.pending = true
	q.req.Start = true
}

// Continue requests the next dispatch pass of the current run
// target is the target just reached, zero when the journey had none
func (q *DispatchQueue) Continue(target core.Entity) {
	q.pending = true
	if target != 0 {
		q.req.Reached = append(q.req.Reached, target)
	}
}

// Drain returns and clears the pending request
func (q *DispatchQueue) Drain() (DispatchRequest, bool) {
	if !q.pending {
		return DispatchRequest{}, false
	}
	req := q.req
	q.pending = false
	q.req = DispatchRequest{}
	return req, true
}

// Pending reports whether a pass is queued
func (q *DispatchQueue) Pending() bool {
	return q.pending
}
