// Package navmesh implements the walkable-surface query service:
// point containment and shortest paths over a triangle mesh lying in the XZ plane.
package navmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/lixenwraith/floorsim/vmath"
)

var (
	ErrEmptyMesh       = errors.New("navmesh: no triangles")
	ErrInvalidTriangle = errors.New("navmesh: invalid triangle")
)

// triangle is one walkable polygon
// neighbors[i] is the triangle across edge v[i]->v[(i+1)%3], -1 for a border edge
type triangle struct {
	v         [3]int
	neighbors [3]int
	centroid  vmath.Vec3F
	area      geom.Geometry

	minX, maxX, minZ, maxZ float64
}

// NavMesh is an immutable triangle navigation mesh
// Safe for concurrent queries after construction
type NavMesh struct {
	verts []vmath.Vec3F
	tris  []triangle

	min, max vmath.Vec3F
}

// New builds a navmesh from vertices and triangle vertex indices
// Triangles sharing an edge must share the two vertex indices of that edge
func New(verts []vmath.Vec3F, indices [][3]int) (*NavMesh, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &NavMesh{
		verts: append([]vmath.Vec3F(nil), verts...),
		tris:  make([]triangle, len(indices)),
		min:   vmath.Vec3F{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		max:   vmath.Vec3F{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}

	for i, idx := range indices {
		for _, vi := range idx {
			if vi < 0 || vi >= len(verts) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrInvalidTriangle, i, vi, len(verts))
			}
		}
		a, b, c := verts[idx[0]], verts[idx[1]], verts[idx[2]]
		if math.Abs(cross2(a, b, c)) < 1e-12 {
			return nil, fmt.Errorf("%w: triangle %d is degenerate", ErrInvalidTriangle, i)
		}

		t := triangle{
			v:         idx,
			neighbors: [3]int{-1, -1, -1},
			centroid:  vmath.V3FScale(vmath.V3FAdd(vmath.V3FAdd(a, b), c), 1.0/3.0),
			area:      trianglePolygon(a, b, c),
			minX:      math.Min(a.X, math.Min(b.X, c.X)),
			maxX:      math.Max(a.X, math.Max(b.X, c.X)),
			minZ:      math.Min(a.Z, math.Min(b.Z, c.Z)),
			maxZ:      math.Max(a.Z, math.Max(b.Z, c.Z)),
		}
		m.tris[i] = t

		for _, p := range []vmath.Vec3F{a, b, c} {
			m.min = vmath.Vec3F{X: math.Min(m.min.X, p.X), Y: math.Min(m.min.Y, p.Y), Z: math.Min(m.min.Z, p.Z)}
			m.max = vmath.Vec3F{X: math.Max(m.max.X, p.X), Y: math.Max(m.max.Y, p.Y), Z: math.Max(m.max.Z, p.Z)}
		}
	}

	m.link()
	return m, nil
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

type edgeRef struct{ tri, edge int }

// link fills neighbor indices from shared vertex pairs
func (m *NavMesh) link() {
	open := make(map[edgeKey]edgeRef, len(m.tris)*3/2)
	for ti := range m.tris {
		for e := 0; e < 3; e++ {
			k := makeEdgeKey(m.tris[ti].v[e], m.tris[ti].v[(e+1)%3])
			if other, ok := open[k]; ok {
				m.tris[ti].neighbors[e] = other.tri
				m.tris[other.tri].neighbors[other.edge] = ti
				delete(open, k)
				continue
			}
			open[k] = edgeRef{ti, e}
		}
	}
}

func trianglePolygon(a, b, c vmath.Vec3F) geom.Geometry {
	seq := geom.NewSequence([]float64{
		a.X, a.Z,
		b.X, b.Z,
		c.X, c.Z,
		a.X, a.Z,
	}, geom.DimXY)
	ring := geom.NewLineString(seq)
	return geom.NewPolygon([]geom.LineString{ring}).AsGeometry()
}

// Locate returns the index of a triangle containing the horizontal projection of p
func (m *NavMesh) Locate(p vmath.Vec3F) (int, bool) {
	if p.X < m.min.X || p.X > m.max.X || p.Z < m.min.Z || p.Z > m.max.Z {
		return -1, false
	}
	pt := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: p.X, Y: p.Z}}).AsGeometry()
	for i := range m.tris {
		t := &m.tris[i]
		if p.X < t.minX || p.X > t.maxX || p.Z < t.minZ || p.Z > t.maxZ {
			continue
		}
		if geom.Intersects(t.area, pt) {
			return i, true
		}
	}
	return -1, false
}

// IsWalkable reports whether the horizontal projection of p lies within the mesh
func (m *NavMesh) IsWalkable(p vmath.Vec3F) bool {
	_, ok := m.Locate(p)
	return ok
}

// HeightAt interpolates the surface height of triangle tri at p
func (m *NavMesh) HeightAt(tri int, p vmath.Vec3F) float64 {
	t := m.tris[tri]
	a, b, c := m.verts[t.v[0]], m.verts[t.v[1]], m.verts[t.v[2]]
	den := cross2(a, b, c)
	wb := cross2(a, p, c) / den
	wc := cross2(a, b, p) / den
	wa := 1 - wb - wc
	return wa*a.Y + wb*b.Y + wc*c.Y
}

// TriangleCount returns the number of walkable triangles
func (m *NavMesh) TriangleCount() int {
	return len(m.tris)
}

// Triangle returns the corner positions of triangle i
func (m *NavMesh) Triangle(i int) [3]vmath.Vec3F {
	t := m.tris[i]
	return [3]vmath.Vec3F{m.verts[t.v[0]], m.verts[t.v[1]], m.verts[t.v[2]]}
}

// Triangles returns the corner positions of every triangle
func (m *NavMesh) Triangles() [][3]vmath.Vec3F {
	out := make([][3]vmath.Vec3F, len(m.tris))
	for i := range m.tris {
		out[i] = m.Triangle(i)
	}
	return out
}

// Stats summarizes mesh shape for display
type Stats struct {
	Triangles int
	Vertices  int
	Islands   int
	Area      float64
}

// Stats counts triangles, referenced vertices, connected islands and walkable area
func (m *NavMesh) Stats() Stats {
	used := make(map[int]struct{}, len(m.verts))
	var area float64
	for i := range m.tris {
		t := m.tris[i]
		for _, v := range t.v {
			used[v] = struct{}{}
		}
		area += math.Abs(cross2(m.verts[t.v[0]], m.verts[t.v[1]], m.verts[t.v[2]])) / 2
	}

	islands := 0
	seen := make([]bool, len(m.tris))
	stack := make([]int, 0, 64)
	for i := range m.tris {
		if seen[i] {
			continue
		}
		islands++
		seen[i] = true
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range m.tris[cur].neighbors {
				if n >= 0 && !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
	}

	return Stats{
		Triangles: len(m.tris),
		Vertices:  len(used),
		Islands:   islands,
		Area:      area,
	}
}

// Bounds returns the axis-aligned bounding box of the mesh
func (m *NavMesh) Bounds() (vmath.Vec3F, vmath.Vec3F) {
	return m.min, m.max
}

// cross2 is twice the signed XZ area of abc, positive when c is left of a->b
func cross2(a, b, c vmath.Vec3F) float64 {
	return (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
}
