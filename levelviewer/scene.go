// Package levelviewer shows a level's layout: every object outlined by kind
// over the cell grid, with a free camera.
package levelviewer

import (
	"fmt"
	"io/fs"

	"github.com/automoto/husky-loves-ducky/config"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/automoto/husky-loves-ducky/systems"
	"github.com/automoto/husky-loves-ducky/systems/factory"
	"github.com/automoto/husky-loves-ducky/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Scene struct {
	ecs *ecs.ECS
}

// Load reads the level at path from fsys and builds a scene for it.
func Load(fsys fs.FS, path string, src systems.Source) (*Scene, error) {
	m, err := leveldata.Load(fsys, path, config.LevelViewer.CellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	return New(path, m, src), nil
}

func New(path string, m *leveldata.Map, src systems.Source) *Scene {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput(src))
	e.AddSystem(systems.UpdatePatrols)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(config.Default, render.DrawGrid)
	e.AddRenderer(config.Default, render.DrawObjects)
	e.AddRenderer(config.Overlay, render.DrawInfo)

	factory.CreateInput(e)
	factory.CreateLevel(e, path, m, config.LevelViewer.CellSize)
	factory.CreateCamera(e, float64(m.Width)/2, float64(m.Height)/2)

	return &Scene{ecs: e}
}

func (s *Scene) Update() {
	s.ecs.Update()
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(config.C.ClearColor)
	s.ecs.Draw(screen)
}

// World exposes the entities for inspection.
func (s *Scene) World() donburi.World {
	return s.ecs.World
}
