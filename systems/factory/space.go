package factory

import (
	"github.com/automoto/husky-loves-ducky/archetypes"
	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace sizes the collision space to the level, at least one cell.
func CreateSpace(ecs *ecs.ECS, m *leveldata.Map, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width := max(m.Width, cellSize)
	height := max(m.Height, cellSize)
	components.Space.Set(space, resolv.NewSpace(width, height, cellSize, cellSize))
	return space
}
