package factory

import (
	"github.com/automoto/husky-loves-ducky/archetypes"
	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, its collision space and one entity
// per level object. Objects are added after the space so they land in it.
func CreateLevel(ecs *ecs.ECS, path string, m *leveldata.Map, cellSize int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Path: path, Map: m})

	CreateSpace(ecs, m, cellSize)
	for _, o := range m.Objects {
		CreateObject(ecs, o)
	}
	return level
}
