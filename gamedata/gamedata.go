// Package gamedata describes the static game configuration: which textures
// and sprite sheets each entity uses, how big they are drawn and how fast
// their animations run.
package gamedata

import (
	_ "embed"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/automoto/husky-loves-ducky/assets/animations"
	"gopkg.in/yaml.v3"
)

//go:embed game_data.yaml
var defaultData []byte

type Dimension struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

func (d Dimension) Point() image.Point {
	return image.Pt(int(d.X), int(d.Y))
}

// Sprite is a tile sheet animation. Duration is the full cycle in milliseconds.
type Sprite struct {
	Texture  string    `yaml:"texture"`
	Frames   uint32    `yaml:"frames"`
	Tiles    Dimension `yaml:"tiles"`
	Duration uint64    `yaml:"duration"`
}

// Animation converts the sprite timing into animator data.
func (s Sprite) Animation() animations.Data {
	return animations.NewData(s.Frames, time.Duration(s.Duration)*time.Millisecond)
}

type Player struct {
	Animation   Sprite    `yaml:"animation"`
	IdleTexture string    `yaml:"idle_texture"`
	OutSize     Dimension `yaml:"out_size"`
}

type Cat struct {
	Idle    Sprite    `yaml:"idle"`
	Walking Sprite    `yaml:"walking"`
	OutSize Dimension `yaml:"out_size"`
}

type Image struct {
	Texture string    `yaml:"texture"`
	OutSize Dimension `yaml:"out_size"`
}

type Collectable struct {
	Animation Sprite    `yaml:"animation"`
	OutSize   Dimension `yaml:"out_size"`
	Score     uint32    `yaml:"score"`
}

type Ground struct {
	Center   string    `yaml:"center"`
	Left     string    `yaml:"left"`
	Right    string    `yaml:"right"`
	Top      string    `yaml:"top"`
	TopLeft  string    `yaml:"top_left"`
	TopRight string    `yaml:"top_right"`
	OutSize  Dimension `yaml:"out_size"`
}

// Game is the whole game configuration. It is read once at startup and never mutated.
type Game struct {
	Duck       Player      `yaml:"duck"`
	Husky      Player      `yaml:"husky"`
	Ground     Ground      `yaml:"ground"`
	Gem        Collectable `yaml:"gem"`
	Coin       Collectable `yaml:"coin"`
	Cat        Cat         `yaml:"cat"`
	Background Image       `yaml:"background"`
	Goal       Image       `yaml:"goal"`
	Heart      Image       `yaml:"heart"`
	Spike      Image       `yaml:"spike"`
}

// Animators is the shared animation timing every fresh sub-screen is seeded from.
type Animators struct {
	Duck       animations.Data
	Husky      animations.Data
	Gem        animations.Data
	Coin       animations.Data
	CatIdle    animations.Data
	CatWalking animations.Data
}

func (g *Game) Animators() Animators {
	return Animators{
		Duck:       g.Duck.Animation.Animation(),
		Husky:      g.Husky.Animation.Animation(),
		Gem:        g.Gem.Animation.Animation(),
		Coin:       g.Coin.Animation.Animation(),
		CatIdle:    g.Cat.Idle.Animation(),
		CatWalking: g.Cat.Walking.Animation(),
	}
}

// Parse decodes game data from YAML.
func Parse(data []byte) (*Game, error) {
	var g Game
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse game data: %w", err)
	}
	return &g, nil
}

// Load reads game data from path. An empty path yields the built-in data.
func Load(path string) (*Game, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in game data.
func Default() (*Game, error) {
	return Parse(defaultData)
}
