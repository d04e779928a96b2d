package systems

import (
	"math"

	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/config"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera pans with the directional actions, zooms with the zoom
// actions and recentres on back. The camera never leaves the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	in := getOrCreateInput(e).State

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Map == nil {
		return
	}
	levelWidth := float64(levelData.Map.Width)
	levelHeight := float64(levelData.Map.Height)

	cfg := config.LevelViewer
	if in.Pressed(input.ActionMenuBack) {
		camera.Position.X = levelWidth / 2
		camera.Position.Y = levelHeight / 2
		camera.Zoom = 1
		return
	}

	switch {
	case in.Down(input.ActionZoomIn) && !in.Down(input.ActionZoomOut):
		camera.Zoom *= 1 + cfg.ZoomStep
	case in.Down(input.ActionZoomOut) && !in.Down(input.ActionZoomIn):
		camera.Zoom /= 1 + cfg.ZoomStep
	}
	camera.Zoom = math.Max(cfg.MinZoom, math.Min(cfg.MaxZoom, camera.Zoom))

	// Pan speed is in screen pixels, so it feels the same at every zoom.
	speed := cfg.PanSpeed / camera.Zoom
	if in.Down(input.ActionMenuLeft) {
		camera.Position.X -= speed
	}
	if in.Down(input.ActionMenuRight) {
		camera.Position.X += speed
	}
	if in.Down(input.ActionMenuUp) {
		camera.Position.Y -= speed
	}
	if in.Down(input.ActionMenuDown) {
		camera.Position.Y += speed
	}

	camera.Position.X = math.Max(0, math.Min(levelWidth, camera.Position.X))
	camera.Position.Y = math.Max(0, math.Min(levelHeight, camera.Position.Y))
}
