// Package scene describes the factory floor: walkable floor, obstacles, agents, targets and camera.
// Scenes are read from YAML or taken from the built-in factory layout.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/floorsim/navmesh"
	"github.com/lixenwraith/floorsim/vmath"
)

var (
	ErrNoAgents     = errors.New("scene: no agents")
	ErrInvalidFloor = errors.New("scene: invalid floor")
)

// XYZ is a YAML-friendly world position
type XYZ struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to the math type
func (p XYZ) Vec() vmath.Vec3F {
	return vmath.Vec3F{X: p.X, Y: p.Y, Z: p.Z}
}

// Rect is an axis-aligned XZ rectangle; Y is ignored
type Rect struct {
	Min XYZ `yaml:"min"`
	Max XYZ `yaml:"max"`
}

// Floor is the walkable ground area rasterized into the navmesh
type Floor struct {
	Rect     `yaml:",inline"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cellSize"`
}

// Obstacle is a blocked floor area (walls, machines)
type Obstacle struct {
	Name string `yaml:"name,omitempty"`
	Rect `yaml:",inline"`
}

type Agent struct {
	Name     string `yaml:"name"`
	Position XYZ    `yaml:"position"`
}

type Target struct {
	Label    string `yaml:"label"`
	Position XYZ    `yaml:"position"`
	Selected bool   `yaml:"selected,omitempty"`
}

// Camera is the initial view
type Camera struct {
	Position XYZ     `yaml:"position"`
	LookAt   XYZ     `yaml:"lookAt"`
	FOV      float64 `yaml:"fov"` // Vertical, degrees
}

// Scene is the complete static description of a simulation
type Scene struct {
	Name      string     `yaml:"name"`
	Floor     Floor      `yaml:"floor"`
	Obstacles []Obstacle `yaml:"obstacles,omitempty"`
	Agents    []Agent    `yaml:"agents"`
	Targets   []Target   `yaml:"targets"`
	Camera    Camera     `yaml:"camera"`
}

// Load reads and validates a YAML scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scene document
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the scene as YAML
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks structural requirements
func (s *Scene) Validate() error {
	if len(s.Agents) == 0 {
		return ErrNoAgents
	}
	f := s.Floor
	if f.CellSize <= 0 {
		return fmt.Errorf("%w: cellSize %.3f", ErrInvalidFloor, f.CellSize)
	}
	if f.Max.X <= f.Min.X || f.Max.Z <= f.Min.Z {
		return fmt.Errorf("%w: empty extent", ErrInvalidFloor)
	}
	return nil
}

// BuildNavMesh rasterizes the floor minus obstacles into a navmesh
func (s *Scene) BuildNavMesh() (*navmesh.NavMesh, error) {
	f := s.Floor
	cols := int((f.Max.X - f.Min.X) / f.CellSize)
	rows := int((f.Max.Z - f.Min.Z) / f.CellSize)

	g := navmesh.NewGrid(vmath.Vec3F{X: f.Min.X, Y: f.Height, Z: f.Min.Z}, f.CellSize, cols, rows)
	for _, o := range s.Obstacles {
		g.Block(o.Min.Vec(), o.Max.Vec())
	}

	m, err := navmesh.FromGrid(g)
	if err != nil {
		return nil, fmt.Errorf("build navmesh for %q: %w", s.Name, err)
	}
	return m, nil
}
