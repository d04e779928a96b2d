package factory

import (
	"github.com/automoto/husky-loves-ducky/archetypes"
	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/automoto/husky-loves-ducky/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cats walk at this speed in pixels per tick.
const catSpeed = 2.0

func CreateObject(ecs *ecs.ECS, o leveldata.Object) *donburi.Entry {
	entry := archetypes.ForKind(o.Kind).Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(o.X, o.Y, o.W, o.H, tags.Resolv(o.Kind)...)
	obj.SetShape(resolv.NewRectangle(0, 0, o.W, o.H))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.LevelObject.SetValue(entry, components.LevelObjectData{Kind: o.Kind})

	if o.Kind == leveldata.KindCat {
		components.Patrol.SetValue(entry, components.PatrolData{
			Origin: o.X,
			Range:  o.Patrol,
			Speed:  catSpeed,
			Dir:    1,
		})
	}

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
