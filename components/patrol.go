package components

import "github.com/yohamta/donburi"

// PatrolData walks an object between Origin and Origin+Range on the X axis.
type PatrolData struct {
	Origin float64
	Range  float64
	Speed  float64 // pixels per tick
	Dir    float64 // +1 right, -1 left
}

var Patrol = donburi.NewComponentType[PatrolData]()
