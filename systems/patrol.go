package systems

import (
	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrols walks patrolling objects back and forth over their range,
// turning early when the next step would hit something solid.
func UpdatePatrols(ecs *ecs.ECS) {
	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		if patrol.Range <= 0 {
			return
		}
		obj := components.Object.Get(e)

		dx := patrol.Speed * patrol.Dir
		if blocked(obj.Object, dx) {
			patrol.Dir = -patrol.Dir
			return
		}

		x := obj.X + dx
		switch {
		case x >= patrol.Origin+patrol.Range:
			x = patrol.Origin + patrol.Range
			patrol.Dir = -1
		case x <= patrol.Origin:
			x = patrol.Origin
			patrol.Dir = 1
		}
		obj.X = x
	})
}

// blocked reports whether moving obj by dx overlaps a solid object. The space
// check only finds neighbours by cell; touching edges do not count.
func blocked(obj *resolv.Object, dx float64) bool {
	c := obj.Check(dx, 0, tags.ResolvSolid)
	if c == nil {
		return false
	}
	x := obj.X + dx
	for _, o := range c.Objects {
		if x < o.X+o.W && x+obj.W > o.X && obj.Y < o.Y+o.H && obj.Y+obj.H > o.Y {
			return true
		}
	}
	return false
}
