package component

import "github.com/lixenwraith/floorsim/vmath"

// PathComponent is present only while the entity moves along an unfinished route
type PathComponent struct {
	// Current is the waypoint being approached
	Current vmath.Vec3F

	// Remaining holds the subsequent waypoints in traversal order
	Remaining []vmath.Vec3F
}

// NewPath splits waypoints into the first target and the forward queue
// Returns false for an empty waypoint list
func NewPath(waypoints []vmath.Vec3F) (PathComponent, bool) {
	if len(waypoints) == 0 {
		return PathComponent{}, false
	}
	rest := make([]vmath.Vec3F, len(waypoints)-1)
	copy(rest, waypoints[1:])
	return PathComponent{Current: waypoints[0], Remaining: rest}, true
}

// Advance pops the next waypoint into Current
// Returns false when the route is exhausted
func (p *PathComponent) Advance() bool {
	if len(p.Remaining) == 0 {
		return false
	}
	p.Current = p.Remaining[0]
	p.Remaining = p.Remaining[1:]
	return true
}

// Len is the number of waypoints still to reach, including Current
func (p PathComponent) Len() int {
	return len(p.Remaining) + 1
}

// Waypoints returns Current followed by Remaining
func (p PathComponent) Waypoints() []vmath.Vec3F {
	out := make([]vmath.Vec3F, 0, p.Len())
	out = append(out, p.Current)
	return append(out, p.Remaining...)
}
