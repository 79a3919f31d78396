package navmesh

import (
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/vmath"
)

type portal struct {
	left, right vmath.Vec3F
}

// portals lists the shared edges along a triangle corridor, oriented by travel direction
// The first and last portals collapse to the endpoints
func (m *NavMesh) portals(corridor []int, from, to vmath.Vec3F) []portal {
	out := make([]portal, 0, len(corridor)+1)
	out = append(out, portal{from, from})

	for i := 0; i+1 < len(corridor); i++ {
		cur, next := m.tris[corridor[i]], corridor[i+1]
		for e, nb := range cur.neighbors {
			if nb != next {
				continue
			}
			a, b := m.verts[cur.v[e]], m.verts[cur.v[(e+1)%3]]
			mid := vmath.V3FScale(vmath.V3FAdd(a, b), 0.5)
			if cross2(cur.centroid, mid, a) > 0 {
				out = append(out, portal{left: a, right: b})
			} else {
				out = append(out, portal{left: b, right: a})
			}
			break
		}
	}

	return append(out, portal{to, to})
}

// funnelArea is twice the signed XZ area, negative when c is left of a->b
func funnelArea(a, b, c vmath.Vec3F) float64 {
	return -cross2(a, b, c)
}

func samePoint(a, b vmath.Vec3F) bool {
	dx, dz := a.X-b.X, a.Z-b.Z
	return dx*dx+dz*dz < parameter.NavEdgeEpsilon*parameter.NavEdgeEpsilon
}

// stringPull runs the simple stupid funnel over the corridor portals
// Output excludes `from` and ends with `to`
func (m *NavMesh) stringPull(corridor []int, from, to vmath.Vec3F) []vmath.Vec3F {
	ps := m.portals(corridor, from, to)

	out := make([]vmath.Vec3F, 0, 8)
	apex, left, right := from, ps[0].left, ps[0].right
	apexIdx, leftIdx, rightIdx := 0, 0, 0

	emit := func(p vmath.Vec3F) {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			return
		}
		if len(out) == 0 && samePoint(from, p) {
			return
		}
		out = append(out, p)
	}

	for i := 1; i < len(ps); i++ {
		pl, pr := ps[i].left, ps[i].right

		// Tighten right side
		if funnelArea(apex, right, pr) <= 0 {
			if samePoint(apex, right) || funnelArea(apex, left, pr) > 0 {
				right = pr
				rightIdx = i
			} else {
				emit(left)
				apex = left
				apexIdx = leftIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}

		// Tighten left side
		if funnelArea(apex, left, pl) >= 0 {
			if samePoint(apex, left) || funnelArea(apex, right, pl) < 0 {
				left = pl
				leftIdx = i
			} else {
				emit(right)
				apex = right
				apexIdx = rightIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}
	}

	if len(out) == 0 || !samePoint(out[len(out)-1], to) {
		out = append(out, to)
	} else {
		out[len(out)-1] = to
	}
	return out
}
