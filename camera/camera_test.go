package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/vmath"
)

func floorCamera() *Camera {
	c := New(vmath.Vec3F{X: -4, Y: 15, Z: 20}, vmath.Vec3F{X: 0, Y: 2, Z: 0}, 45)
	c.SetViewport(80, 40)
	return c
}

func TestViewportToWorld_Bounds(t *testing.T) {
	c := floorCamera()

	_, ok := c.ViewportToWorld(-1, 0)
	assert.False(t, ok)
	_, ok = c.ViewportToWorld(80, 10)
	assert.False(t, ok)
	_, ok = c.ViewportToWorld(10, 40)
	assert.False(t, ok)

	r, ok := c.ViewportToWorld(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, vmath.V3FMag(r.Dir), 1e-9)
}

func TestViewportToWorld_CenterLooksAtTarget(t *testing.T) {
	c := New(vmath.Vec3F{Y: 10}, vmath.Vec3F{Y: 0, Z: -0.0001}, 60)
	c.SetViewport(2, 2)

	// The four center-adjacent cells bracket the look-at direction symmetrically
	var sum vmath.Vec3F
	for _, xy := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		r, ok := c.ViewportToWorld(xy[0], xy[1])
		require.True(t, ok)
		sum = vmath.V3FAdd(sum, r.Dir)
	}
	dir := vmath.V3FNormalize(sum)
	assert.InDelta(t, -1.0, dir.Y, 1e-6)
}

func TestProjectionRoundTrip(t *testing.T) {
	c := floorCamera()
	ground := vmath.GroundPlane(0)

	for _, xy := range [][2]int{{40, 30}, {10, 35}, {70, 25}, {5, 39}} {
		r, ok := c.ViewportToWorld(xy[0], xy[1])
		require.True(t, ok)
		hit, ok := vmath.IntersectRayPlane(r, ground, parameter.RayParallelEpsilon)
		require.True(t, ok, "cell %v looks at the floor", xy)

		x, y, ok := c.WorldToViewport(hit)
		require.True(t, ok)
		assert.Equal(t, xy[0], x)
		assert.Equal(t, xy[1], y)
	}
}

func TestWorldToViewport_Behind(t *testing.T) {
	c := floorCamera()
	_, _, ok := c.WorldToViewport(vmath.Vec3F{X: -8, Y: 30, Z: 40})
	assert.False(t, ok)
}

func TestPan(t *testing.T) {
	c := floorCamera()
	pos0, look0 := c.Position()

	c.Pan(2, 0)
	pos, look := c.Position()
	assert.InDelta(t, pos0.Y, pos.Y, 1e-9, "pan stays level")
	assert.InDelta(t, 2.0, vmath.V3FDist(pos0, pos), 1e-9)
	assert.InDelta(t, vmath.V3FDist(pos0, look0), vmath.V3FDist(pos, look), 1e-9)
	assert.Greater(t, pos.X, pos0.X, "screen right is world +X for this view")

	c.Reset()
	pos, look = c.Position()
	assert.Equal(t, pos0, pos)
	assert.Equal(t, look0, look)
}

func TestZoomClamp(t *testing.T) {
	c := floorCamera()

	c.Zoom(0.5)
	assert.InDelta(t, 22.5, c.FOV(), 1e-9)

	for i := 0; i < 10; i++ {
		c.Zoom(0.5)
	}
	assert.Equal(t, parameter.CameraMinFOV, c.FOV())

	for i := 0; i < 10; i++ {
		c.Zoom(2)
	}
	assert.Equal(t, parameter.CameraMaxFOV, c.FOV())
}
