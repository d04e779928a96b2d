package systems

import (
	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/yohamta/donburi/ecs"
)

// Source reports which actions are held this frame.
type Source func() [input.ActionCount]bool

// UpdateInput returns a system that advances the input entity from src.
// Must run BEFORE the systems that read input.
func UpdateInput(src Source) ecs.System {
	return func(ecs *ecs.ECS) {
		in := getOrCreateInput(ecs)
		in.State = in.State.Next(src())
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
