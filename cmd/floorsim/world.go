package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/camera"
	"github.com/lixenwraith/floorsim/config"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/scene"
	"github.com/lixenwraith/floorsim/system"
)

// sim is the assembled simulation before any terminal is attached
type sim struct {
	world   *engine.World
	camera  *camera.Camera
	spawned *scene.Spawned
}

// loadScene reads the configured scene file or falls back to the built-in floor
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Factory(), nil
	}
	s, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return s, nil
}

// buildSim creates the world, spawns the scene and registers every system
func buildSim(cfg *config.Config, sc *scene.Scene, log zerolog.Logger) (*sim, error) {
	world := engine.NewWorld(log)
	world.Resources.Config.Speed = cfg.Sim.Speed
	world.Resources.Config.ArrivalTolerance = cfg.Sim.ArrivalTolerance
	world.Resources.Config.GroundY = sc.Floor.Height

	spawned, err := scene.Spawn(world, sc)
	if err != nil {
		return nil, fmt.Errorf("spawn scene: %w", err)
	}

	cam := camera.New(sc.Camera.Position.Vec(), sc.Camera.LookAt.Vec(), sc.Camera.FOV)
	world.Resources.Camera = &engine.CameraResource{Viewport: cam}

	world.AddSystem(system.NewSelectionSystem(world))
	world.AddSystem(system.NewClickSystem(world))
	world.AddSystem(system.NewDispatchSystem(world))
	world.AddSystem(system.NewFollowSystem(world))
	world.AddSystem(system.NewMarkerSystem(world))
	world.AddSystem(system.NewOverlaySystem(world))
	world.AddSystem(system.NewAudioSystem(world))

	return &sim{world: world, camera: cam, spawned: spawned}, nil
}
