package tags

import (
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/yohamta/donburi"
)

var (
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Goal     = donburi.NewTag().SetName("Goal")
	Gem      = donburi.NewTag().SetName("Gem")
	Coin     = donburi.NewTag().SetName("Coin")
	Cat      = donburi.NewTag().SetName("Cat")
	Spike    = donburi.NewTag().SetName("Spike")
)

// Resolv tags for the collision space
const (
	ResolvSolid       = "solid"
	ResolvGoal        = "goal"
	ResolvCollectable = "collectable"
	ResolvHazard      = "hazard"
	ResolvEnemy       = "enemy"
)

// Resolv returns the collision tags an object of kind k carries, ending with
// its kind name.
func Resolv(k leveldata.Kind) []string {
	switch k {
	case leveldata.KindObstacle:
		return []string{ResolvSolid, k.String()}
	case leveldata.KindGoal:
		return []string{ResolvGoal, k.String()}
	case leveldata.KindGem, leveldata.KindCoin:
		return []string{ResolvCollectable, k.String()}
	case leveldata.KindCat:
		return []string{ResolvEnemy, ResolvHazard, k.String()}
	case leveldata.KindSpike:
		return []string{ResolvHazard, k.String()}
	}
	return []string{k.String()}
}
