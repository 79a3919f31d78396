package navmesh

import (
	"fmt"

	"github.com/lixenwraith/floorsim/vmath"
)

// Grid is a walkable occupancy raster over the XZ plane
// Cell (col,row) spans [Origin.X+col*CellSize, +CellSize] x [Origin.Z+row*CellSize, +CellSize]
type Grid struct {
	Origin   vmath.Vec3F
	CellSize float64
	Cols     int
	Rows     int
	Walkable []bool // row-major, len Cols*Rows
}

// NewGrid returns a fully walkable grid
func NewGrid(origin vmath.Vec3F, cellSize float64, cols, rows int) *Grid {
	w := make([]bool, cols*rows)
	for i := range w {
		w[i] = true
	}
	return &Grid{
		Origin:   origin,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		Walkable: w,
	}
}

// CellCenter returns the world center of a cell at the grid height
func (g *Grid) CellCenter(col, row int) vmath.Vec3F {
	return vmath.Vec3F{
		X: g.Origin.X + (float64(col)+0.5)*g.CellSize,
		Y: g.Origin.Y,
		Z: g.Origin.Z + (float64(row)+0.5)*g.CellSize,
	}
}

// Block marks cells whose centers fall inside the XZ rectangle [min,max] as not walkable
func (g *Grid) Block(min, max vmath.Vec3F) int {
	blocked := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.CellCenter(col, row)
			if c.X < min.X || c.X > max.X || c.Z < min.Z || c.Z > max.Z {
				continue
			}
			i := row*g.Cols + col
			if g.Walkable[i] {
				g.Walkable[i] = false
				blocked++
			}
		}
	}
	return blocked
}

// FromGrid triangulates every walkable cell into two triangles sharing grid vertices
func FromGrid(g *Grid) (*NavMesh, error) {
	if g.Cols <= 0 || g.Rows <= 0 || g.CellSize <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d cell %.3f", ErrEmptyMesh, g.Cols, g.Rows, g.CellSize)
	}
	if len(g.Walkable) != g.Cols*g.Rows {
		return nil, fmt.Errorf("navmesh: grid walkable mask has %d cells, want %d", len(g.Walkable), g.Cols*g.Rows)
	}

	stride := g.Cols + 1
	verts := make([]vmath.Vec3F, 0, stride*(g.Rows+1))
	for row := 0; row <= g.Rows; row++ {
		for col := 0; col <= g.Cols; col++ {
			verts = append(verts, vmath.Vec3F{
				X: g.Origin.X + float64(col)*g.CellSize,
				Y: g.Origin.Y,
				Z: g.Origin.Z + float64(row)*g.CellSize,
			})
		}
	}

	indices := make([][3]int, 0, 2*g.Cols*g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if !g.Walkable[row*g.Cols+col] {
				continue
			}
			v00 := row*stride + col
			v10 := v00 + 1
			v01 := v00 + stride
			v11 := v01 + 1
			indices = append(indices,
				[3]int{v00, v10, v11},
				[3]int{v00, v11, v01},
			)
		}
	}

	return New(verts, indices)
}
