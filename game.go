package main

import (
	"fmt"
	"os"

	"github.com/automoto/husky-loves-ducky/assets"
	"github.com/automoto/husky-loves-ducky/clock"
	"github.com/automoto/husky-loves-ducky/config"
	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/input/device"
	"github.com/automoto/husky-loves-ducky/levelviewer"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/scenes"
	"github.com/automoto/husky-loves-ducky/scores"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// Game drives the screen state machine and its asset mirror at a fixed rate.
type Game struct {
	logger *log.Logger
	env    scenes.Env
	clock  *clock.Fixed
	input  input.State
	world  scenes.World
	assets scenes.Assets
}

func NewGame(logger *log.Logger, env scenes.Env, data *gamedata.Game) (*Game, error) {
	world := scenes.NewWorld(data.Animators())
	a, err := scenes.LoadAssets(world, env)
	if err != nil {
		return nil, err
	}
	return &Game{
		logger: logger,
		env:    env,
		clock:  clock.NewFixed(config.C.TPS),
		world:  world,
		assets: a,
	}, nil
}

func (g *Game) Update() error {
	g.input = g.input.Next(device.Poll())
	step := g.clock.Next()

	from := g.world.Screen.Kind()
	g.world = g.world.Update(g.input, step.Elapsed)
	if to := g.world.Screen.Kind(); to != from {
		g.logger.Debug("screen transition", "from", from, "to", to, "tick", step.Tick)
	}

	a, err := g.assets.Next(g.world, step, g.env)
	if err != nil {
		return fmt.Errorf("failed to sync assets: %w", err)
	}
	g.assets = a
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.C.ClearColor)
	if err := g.assets.Show(assets.Renderer{Target: screen}); err != nil {
		g.logger.Error("draw failed", "screen", g.assets.Kind(), "err", err)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

// viewerGame adapts the level viewer scene to ebiten.Game.
type viewerGame struct {
	scene *levelviewer.Scene
}

func (v viewerGame) Update() error {
	v.scene.Update()
	return nil
}

func (v viewerGame) Draw(screen *ebiten.Image) {
	v.scene.Draw(screen)
}

func (v viewerGame) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

func runGame(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	media := os.DirFS(config.Paths.Media)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(config.Debug.Fullscreen)

	var game ebiten.Game
	if config.Debug.LevelViewer {
		scene, err := levelviewer.Load(media, config.Paths.Level, device.Poll)
		if err != nil {
			return err
		}
		logger.Info("opening level viewer", "level", config.Paths.Level)
		game = viewerGame{scene: scene}
	} else {
		data, err := gamedata.Load(config.Paths.GameData)
		if err != nil {
			return err
		}
		store, err := scores.Open()
		if err != nil {
			return err
		}
		env := scenes.Env{
			Manager: resource.NewHelper(assets.NewLoader(media, logger), data),
			Scores:  store,
		}
		g, err := NewGame(logger, env, data)
		if err != nil {
			return err
		}
		game = g
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}
