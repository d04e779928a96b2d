package render

import (
	"fmt"
	"strings"

	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

var kinds = []leveldata.Kind{
	leveldata.KindObstacle,
	leveldata.KindGoal,
	leveldata.KindGem,
	leveldata.KindCoin,
	leveldata.KindCat,
	leveldata.KindSpike,
}

// DrawInfo prints the level path, object counts and camera state.
func DrawInfo(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %dx%d\n", level.Path, level.Map.Width, level.Map.Height)
	for _, k := range kinds {
		fmt.Fprintf(&b, "%s: %d\n", k, level.Map.Count(k))
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		fmt.Fprintf(&b, "camera %.0f,%.0f zoom %.2f\n", camera.Position.X, camera.Position.Y, camera.Zoom)
	}
	b.WriteString("arrows pan, +/- zoom, esc recentre")
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 8)
}
