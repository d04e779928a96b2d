package config

import "github.com/yohamta/donburi/ecs"

// Render layers of the level viewer, drawn in order.
const (
	Default ecs.LayerID = iota
	Overlay
)
