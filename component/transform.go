package component

import "github.com/lixenwraith/floorsim/vmath"

// TransformComponent is the world placement of an entity
type TransformComponent struct {
	Position vmath.Vec3F
	Yaw      float64 // Radians around +Y, 0 faces +Z
}
