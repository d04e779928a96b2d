// Package render holds the level viewer's ECS renderers.
package render

import (
	"image/color"

	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/config"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world coordinates to the screen for the current camera.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

func (v view) visible(x, y, w, h float64) bool {
	viewX := v.camX - v.halfW/v.zoom
	viewY := v.camY - v.halfH/v.zoom
	viewW := 2 * v.halfW / v.zoom
	viewH := 2 * v.halfH / v.zoom
	return !(x+w < viewX || x > viewX+viewW || y+h < viewY || y > viewY+viewH)
}

func colorFor(k leveldata.Kind) color.RGBA {
	c := config.LevelViewer
	switch k {
	case leveldata.KindGoal:
		return c.GoalColor
	case leveldata.KindGem:
		return c.GemColor
	case leveldata.KindCoin:
		return c.CoinColor
	case leveldata.KindCat:
		return c.CatColor
	case leveldata.KindSpike:
		return c.SpikeColor
	}
	return c.ObstacleColor
}

// DrawGrid draws the level cell grid and its border.
func DrawGrid(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	m := components.Level.Get(levelEntry).Map
	if m == nil {
		return
	}

	c := config.LevelViewer.GridColor
	cell := float64(config.LevelViewer.CellSize)
	w, h := float64(m.Width), float64(m.Height)
	for x := 0.0; x <= w; x += cell {
		x0, y0 := v.point(x, 0)
		_, y1 := v.point(x, h)
		vector.StrokeLine(screen, x0, y0, x0, y1, 1, c, false)
	}
	for y := 0.0; y <= h; y += cell {
		x0, y0 := v.point(0, y)
		x1, _ := v.point(w, y)
		vector.StrokeLine(screen, x0, y0, x1, y0, 1, c, false)
	}
}

// DrawObjects outlines every collision object, coloured by level kind.
func DrawObjects(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	components.LevelObject.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			return
		}
		x, y := v.point(obj.X, obj.Y)
		w, h := float32(obj.W*v.zoom), float32(obj.H*v.zoom)
		c := colorFor(components.LevelObject.Get(entry).Kind)

		// Draw outline
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	})
}
