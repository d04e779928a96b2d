package factory

import (
	"github.com/automoto/husky-loves-ducky/archetypes"
	"github.com/automoto/husky-loves-ducky/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centres a 1x camera on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
		Zoom:     1,
	})
}

func CreateInput(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
}
