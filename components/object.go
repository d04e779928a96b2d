package components

import (
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// LevelObjectData remembers which level object an entity was spawned from.
type LevelObjectData struct {
	Kind leveldata.Kind
}

var LevelObject = donburi.NewComponentType[LevelObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
