package scene

import (
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/navmesh"
)

// Spawned lists the entities created for a scene, in file order
type Spawned struct {
	Mesh    *navmesh.NavMesh
	Agents  []core.Entity
	Targets []core.Entity
}

// Spawn builds the navmesh and creates scene entities in the world
// Targets are created first so handle order follows file order; the first agent becomes the primary agent
func Spawn(w *engine.World, s *Scene) (*Spawned, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	mesh, err := s.BuildNavMesh()
	if err != nil {
		return nil, err
	}

	log := w.Logger("scene")
	out := &Spawned{Mesh: mesh}

	for _, t := range s.Targets {
		e := w.SpawnTarget(t.Label, t.Position.Vec(), t.Selected)
		out.Targets = append(out.Targets, e)
		if !mesh.IsWalkable(t.Position.Vec()) {
			log.Warn().Str("target", t.Label).Msg("Target is off the walkable floor and will be unreachable")
		}
	}
	for _, a := range s.Agents {
		out.Agents = append(out.Agents, w.SpawnAgent(a.Name, a.Position.Vec()))
	}

	w.Resources.Simulation.PrimaryAgent = out.Agents[0]
	w.Resources.NavMesh = &engine.NavMeshResource{
		ID:    s.Name,
		Query: mesh,
	}

	st := mesh.Stats()
	log.Info().
		Str("scene", s.Name).
		Int("agents", len(out.Agents)).
		Int("targets", len(out.Targets)).
		Int("triangles", st.Triangles).
		Int("islands", st.Islands).
		Msg("Scene spawned")

	return out, nil
}
