package navmesh

import (
	"container/heap"

	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/vmath"
)

// searchNode is A* bookkeeping for one triangle
type searchNode struct {
	tri    int
	parent int
	pos    vmath.Vec3F
	g, f   float64
	index  int
	closed bool
}

type openList []*searchNode

func (o openList) Len() int           { return len(o) }
func (o openList) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openList) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openList) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openList) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*o = old[:len(old)-1]
	return n
}

// FindPath returns waypoints from `from` to `to`, excluding `from` and ending at `to`
// Returns an empty slice when already at the destination, false when either end is off-mesh or unreachable
func (m *NavMesh) FindPath(from, to vmath.Vec3F) ([]vmath.Vec3F, bool) {
	startTri, ok := m.Locate(from)
	if !ok {
		return nil, false
	}
	endTri, ok := m.Locate(to)
	if !ok {
		return nil, false
	}

	if vmath.V3FDistXZ(from, to) < parameter.NavSamePointEpsilon {
		return []vmath.Vec3F{}, true
	}
	if startTri == endTri {
		return []vmath.Vec3F{to}, true
	}

	corridor, ok := m.corridor(startTri, endTri, from, to)
	if !ok {
		return nil, false
	}

	return m.stringPull(corridor, from, to), true
}

// corridor runs A* over triangle adjacency using edge midpoints as node positions
func (m *NavMesh) corridor(startTri, endTri int, from, to vmath.Vec3F) ([]int, bool) {
	nodes := make(map[int]*searchNode, 64)
	start := &searchNode{
		tri:    startTri,
		parent: -1,
		pos:    from,
		f:      vmath.V3FDistXZ(from, to),
	}
	nodes[startTri] = start

	open := &openList{}
	heap.Push(open, start)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		cur.closed = true

		if cur.tri == endTri {
			path := make([]int, 0, 16)
			for n := cur; n != nil; {
				path = append(path, n.tri)
				if n.parent < 0 {
					break
				}
				n = nodes[n.parent]
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, true
		}

		t := m.tris[cur.tri]
		for e, nb := range t.neighbors {
			if nb < 0 {
				continue
			}
			a, b := m.verts[t.v[e]], m.verts[t.v[(e+1)%3]]
			mid := vmath.V3FScale(vmath.V3FAdd(a, b), 0.5)

			g := cur.g + vmath.V3FDistXZ(cur.pos, mid)
			if nb == endTri {
				g += vmath.V3FDistXZ(mid, to)
			}

			n, seen := nodes[nb]
			if seen && (n.closed || g >= n.g) {
				continue
			}
			if !seen {
				n = &searchNode{tri: nb, index: -1}
				nodes[nb] = n
			}
			n.parent = cur.tri
			n.pos = mid
			n.g = g
			n.f = g + vmath.V3FDistXZ(mid, to)
			if nb == endTri {
				n.f = g
			}

			if n.index >= 0 {
				heap.Fix(open, n.index)
			} else {
				heap.Push(open, n)
			}
		}
	}

	return nil, false
}
