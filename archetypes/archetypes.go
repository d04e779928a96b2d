package archetypes

import (
	"github.com/automoto/husky-loves-ducky/components"
	cfg "github.com/automoto/husky-loves-ducky/config"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/automoto/husky-loves-ducky/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.LevelObject,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
		components.LevelObject,
	)
	Gem = newArchetype(
		tags.Gem,
		components.Object,
		components.LevelObject,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Object,
		components.LevelObject,
	)
	Cat = newArchetype(
		tags.Cat,
		components.Object,
		components.LevelObject,
		components.Patrol,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Object,
		components.LevelObject,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

// ForKind returns the archetype level objects of kind k spawn from.
func ForKind(k leveldata.Kind) *archetype {
	switch k {
	case leveldata.KindGoal:
		return Goal
	case leveldata.KindGem:
		return Gem
	case leveldata.KindCoin:
		return Coin
	case leveldata.KindCat:
		return Cat
	case leveldata.KindSpike:
		return Spike
	}
	return Obstacle
}

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
