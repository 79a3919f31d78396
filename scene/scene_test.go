package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/vmath"
)

const smallScene = `
name: bay
floor:
  min: {x: 0, z: 0}
  max: {x: 10, z: 4}
  cellSize: 1
obstacles:
  - name: crate
    min: {x: 4, z: 0}
    max: {x: 6, z: 2}
agents:
  - name: a1
    position: {x: 1, y: 0.5, z: 1}
  - name: a2
    position: {x: 2, z: 3}
targets:
  - label: left
    position: {x: 1, y: 0.7, z: 3}
    selected: true
  - label: right
    position: {x: 9, y: 0.7, z: 1}
camera:
  position: {x: 5, y: 10, z: 10}
  lookAt: {x: 5, y: 0, z: 2}
  fov: 60
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(smallScene))
	require.NoError(t, err)

	assert.Equal(t, "bay", s.Name)
	assert.Equal(t, 10.0, s.Floor.Max.X)
	require.Len(t, s.Obstacles, 1)
	assert.Equal(t, "crate", s.Obstacles[0].Name)
	require.Len(t, s.Agents, 2)
	assert.Equal(t, vmath.Vec3F{X: 1, Y: 0.5, Z: 1}, s.Agents[0].Position.Vec())
	require.Len(t, s.Targets, 2)
	assert.True(t, s.Targets[0].Selected)
	assert.False(t, s.Targets[1].Selected)
	assert.Equal(t, 60.0, s.Camera.FOV)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("name: empty\nfloor: {min: {x: 0, z: 0}, max: {x: 1, z: 1}, cellSize: 1}\n"))
	assert.ErrorIs(t, err, ErrNoAgents)

	_, err = Parse([]byte("agents: [{name: a}]\nfloor: {min: {x: 0, z: 0}, max: {x: 1, z: 1}}\n"))
	assert.ErrorIs(t, err, ErrInvalidFloor)

	_, err = Parse([]byte("agents: [{name: a}]\nfloor: {min: {x: 2, z: 0}, max: {x: 1, z: 1}, cellSize: 1}\n"))
	assert.ErrorIs(t, err, ErrInvalidFloor)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallScene), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bay", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Factory().Marshal()
	require.NoError(t, err)

	s, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Factory(), s)
}

func TestBuildNavMesh_Obstacle(t *testing.T) {
	s, err := Parse([]byte(smallScene))
	require.NoError(t, err)

	m, err := s.BuildNavMesh()
	require.NoError(t, err)

	assert.Equal(t, 2*(40-4), m.TriangleCount())
	assert.False(t, m.IsWalkable(vmath.Vec3F{X: 5, Z: 1}))
	assert.True(t, m.IsWalkable(vmath.Vec3F{X: 5, Z: 3}))

	from, to := vmath.Vec3F{X: 1, Z: 1}, vmath.Vec3F{X: 9, Z: 1}
	path, ok := m.FindPath(from, to)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(path), 2, "crate forces at least one corner")
	assert.Equal(t, to, path[len(path)-1])

	// Sample every segment: none may cut through the crate interior
	prev := from
	for _, p := range path {
		for i := 0; i <= 20; i++ {
			q := vmath.V3FLerp(prev, p, float64(i)/20)
			inside := q.X > 4+1e-9 && q.X < 6-1e-9 && q.Z > 0 && q.Z < 2-1e-9
			assert.False(t, inside, "segment %v -> %v crosses the crate at %v", prev, p, q)
		}
		prev = p
	}
}

func TestFactory(t *testing.T) {
	s := Factory()
	require.NoError(t, s.Validate())
	require.Len(t, s.Targets, 20)

	assert.Equal(t, XYZ{X: -20.5, Y: 0.7, Z: -7.5}, s.Targets[0].Position)
	assert.Equal(t, XYZ{X: -16.5, Y: 0.7, Z: -7.5}, s.Targets[1].Position)
	assert.Equal(t, XYZ{X: -20.5, Y: 0.7, Z: 12.5}, s.Targets[8].Position)
	assert.Equal(t, XYZ{X: -8, Y: 0.7, Z: -7.5}, s.Targets[10].Position)
	assert.Equal(t, XYZ{X: -4, Y: 0.7, Z: 12.5}, s.Targets[19].Position)
	assert.Equal(t, XYZ{X: 0, Y: 0.5, Z: 0}, s.Agents[0].Position)

	m, err := s.BuildNavMesh()
	require.NoError(t, err)
	agent := s.Agents[0].Position.Vec()
	for _, tg := range s.Targets {
		p := tg.Position.Vec()
		p.Y = 0
		_, ok := m.FindPath(agent, p)
		assert.True(t, ok, "target %s reachable", tg.Label)
	}
}

func TestSpawn(t *testing.T) {
	w := engine.NewTestWorld()
	s, err := Parse([]byte(smallScene))
	require.NoError(t, err)

	out, err := Spawn(w, s)
	require.NoError(t, err)

	require.Len(t, out.Targets, 2)
	require.Len(t, out.Agents, 2)
	assert.Less(t, out.Targets[0], out.Targets[1], "handles follow file order")
	assert.Equal(t, out.Agents[0], w.Resources.Simulation.PrimaryAgent)

	require.NotNil(t, w.Resources.NavMesh)
	assert.Equal(t, "bay", w.Resources.NavMesh.ID)
	assert.False(t, w.Resources.NavMesh.Visible)

	tc, ok := w.Components.Target.Get(out.Targets[0])
	require.True(t, ok)
	assert.Equal(t, "left", tc.Label)
	assert.True(t, tc.Selected)

	ac, ok := w.Components.Agent.Get(out.Agents[1])
	require.True(t, ok)
	assert.Equal(t, "a2", ac.Name)
}
