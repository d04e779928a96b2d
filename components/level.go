package components

import (
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path string
	Map  *leveldata.Map
}

var Level = donburi.NewComponentType[LevelData]()
