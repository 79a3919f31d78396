// Package camera implements the perspective view used to project the floor onto terminal cells
// and to turn pointer cells back into world rays.
package camera

import (
	"math"
	"sync"

	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/vmath"
)

// Camera is a pinhole perspective camera over a cell viewport
// Safe for concurrent use: input pans it, render projects through it, systems cast rays
type Camera struct {
	mu sync.RWMutex

	position vmath.Vec3F
	lookAt   vmath.Vec3F
	fov      float64 // Vertical, degrees

	width, height int
	cellAspect    float64

	home    [2]vmath.Vec3F
	homeFOV float64
}

// basis is the orthonormal camera frame for one projection
type basis struct {
	origin             vmath.Vec3F
	forward, right, up vmath.Vec3F
	tanHalfY, tanHalfX float64
	width, height      int
}

// New creates a camera at position looking at lookAt with vertical field of view in degrees
func New(position, lookAt vmath.Vec3F, fov float64) *Camera {
	return &Camera{
		position:   position,
		lookAt:     lookAt,
		fov:        clampFOV(fov),
		cellAspect: parameter.CellAspect,
		home:       [2]vmath.Vec3F{position, lookAt},
		homeFOV:    clampFOV(fov),
	}
}

func clampFOV(fov float64) float64 {
	return math.Max(parameter.CameraMinFOV, math.Min(parameter.CameraMaxFOV, fov))
}

// SetViewport sets the viewport size in cells
func (c *Camera) SetViewport(width, height int) {
	c.mu.Lock()
	c.width, c.height = width, height
	c.mu.Unlock()
}

// Viewport returns the viewport size in cells
func (c *Camera) Viewport() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// Position returns the eye position and look-at point
func (c *Camera) Position() (vmath.Vec3F, vmath.Vec3F) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position, c.lookAt
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fov
}

func (c *Camera) frame() basis {
	forward := vmath.V3FNormalize(vmath.V3FSub(c.lookAt, c.position))
	right := vmath.V3FNormalize(vmath.V3FCross(forward, vmath.Up))
	if vmath.V3FMagSq(right) == 0 {
		// Looking straight down or up; pick +X as screen right
		right = vmath.Vec3F{X: 1}
	}
	up := vmath.V3FCross(right, forward)

	tanHalfY := math.Tan(c.fov * math.Pi / 360)
	aspect := 1.0
	if c.height > 0 {
		aspect = float64(c.width) / (float64(c.height) * c.cellAspect)
	}
	return basis{
		origin:   c.position,
		forward:  forward,
		right:    right,
		up:       up,
		tanHalfY: tanHalfY,
		tanHalfX: tanHalfY * aspect,
		width:    c.width,
		height:   c.height,
	}
}

// ViewportToWorld returns the ray through the center of cell (x, y)
// Returns false when the cell is outside the viewport
func (c *Camera) ViewportToWorld(x, y int) (vmath.Ray, bool) {
	c.mu.RLock()
	b := c.frame()
	c.mu.RUnlock()

	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return vmath.Ray{}, false
	}

	ndcX := 2*(float64(x)+0.5)/float64(b.width) - 1
	ndcY := 1 - 2*(float64(y)+0.5)/float64(b.height)

	dir := vmath.V3FAdd(b.forward, vmath.V3FAdd(
		vmath.V3FScale(b.right, ndcX*b.tanHalfX),
		vmath.V3FScale(b.up, ndcY*b.tanHalfY),
	))
	return vmath.Ray{Origin: b.origin, Dir: vmath.V3FNormalize(dir)}, true
}

// WorldToViewport projects p to the containing cell
// Returns false when p is behind the camera or outside the viewport
func (c *Camera) WorldToViewport(p vmath.Vec3F) (int, int, bool) {
	c.mu.RLock()
	b := c.frame()
	c.mu.RUnlock()

	v := vmath.V3FSub(p, b.origin)
	depth := vmath.V3FDot(v, b.forward)
	if depth <= 1e-6 || b.width <= 0 || b.height <= 0 {
		return 0, 0, false
	}

	ndcX := vmath.V3FDot(v, b.right) / (depth * b.tanHalfX)
	ndcY := vmath.V3FDot(v, b.up) / (depth * b.tanHalfY)

	x := int(math.Floor((ndcX + 1) / 2 * float64(b.width)))
	y := int(math.Floor((1 - ndcY) / 2 * float64(b.height)))
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return x, y, false
	}
	return x, y, true
}

// Pan moves eye and look-at together in the ground plane
// right and forward are measured along the camera's flattened axes
func (c *Camera) Pan(right, forward float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.frame()
	fwd := vmath.V3FNormalize(vmath.V3FFlatten(b.forward, 0))
	if vmath.V3FMagSq(fwd) == 0 {
		fwd = vmath.V3FNormalize(vmath.V3FFlatten(b.up, 0))
	}
	rgt := vmath.V3FNormalize(vmath.V3FFlatten(b.right, 0))

	delta := vmath.V3FAdd(vmath.V3FScale(rgt, right), vmath.V3FScale(fwd, forward))
	c.position = vmath.V3FAdd(c.position, delta)
	c.lookAt = vmath.V3FAdd(c.lookAt, delta)
}

// Zoom scales the field of view; factors below 1 zoom in
func (c *Camera) Zoom(factor float64) {
	c.mu.Lock()
	c.fov = clampFOV(c.fov * factor)
	c.mu.Unlock()
}

// Reset restores the initial placement
func (c *Camera) Reset() {
	c.mu.Lock()
	c.position, c.lookAt = c.home[0], c.home[1]
	c.fov = c.homeFOV
	c.mu.Unlock()
}
