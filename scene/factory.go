package scene

import (
	"fmt"
	"math"
)

// Factory returns the built-in factory floor: two racks of ten targets on either side of a wall
// with the agent starting in the open area to the east
func Factory() *Scene {
	s := &Scene{
		Name: "factory",
		Floor: Floor{
			Rect:     Rect{Min: XYZ{X: -24, Z: -11}, Max: XYZ{X: 12, Z: 16}},
			Height:   0,
			CellSize: 1,
		},
		Obstacles: []Obstacle{
			{Name: "wall", Rect: Rect{Min: XYZ{X: -14, Z: -5}, Max: XYZ{X: -11, Z: 10}}},
			{Name: "press", Rect: Rect{Min: XYZ{X: 3, Z: -3}, Max: XYZ{X: 7, Z: 5}}},
		},
		Agents: []Agent{
			{Name: "agent", Position: XYZ{X: 0, Y: 0.5, Z: 0}},
		},
		Camera: Camera{
			Position: XYZ{X: -4, Y: 15, Z: 20},
			LookAt:   XYZ{X: 0, Y: 2, Z: 0},
			FOV:      45,
		},
	}

	for i := 0; i < 20; i++ {
		x := -20.5 + 4*float64(i%2)
		if i >= 10 {
			x = -8 + 4*float64(i%2)
		}
		z := -7.5 + math.Floor(float64(i%10)/2)*5
		s.Targets = append(s.Targets, Target{
			Label:    fmt.Sprintf("T%02d", i+1),
			Position: XYZ{X: x, Y: 0.7, Z: z},
		})
	}
	return s
}
