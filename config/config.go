package config

import "image/color"

type Config struct {
	Width  int
	Height int
	// TPS is the fixed update rate; game data timings assume 30.
	TPS        int
	Title      string
	ClearColor color.RGBA
}

// PathConfig says where runtime files are read from.
type PathConfig struct {
	Media    string // textures and fonts, relative to this root
	GameData string // empty uses the built-in game data
	Level    string // level shown by the level viewer, relative to Media
}

// LevelViewerConfig contains the level viewer camera and palette
type LevelViewerConfig struct {
	CellSize  int     // pixels per level grid unit
	PanSpeed  float64 // pixels per tick at zoom 1
	ZoomStep  float64
	MinZoom   float64
	MaxZoom   float64
	GridColor color.RGBA

	ObstacleColor color.RGBA
	GoalColor     color.RGBA
	GemColor      color.RGBA
	CoinColor     color.RGBA
	CatColor      color.RGBA
	SpikeColor    color.RGBA
}

type DebugConfig struct {
	LevelViewer bool // Run the level viewer instead of the game
	Verbose     bool // Log screen transitions and resource loads
	Fullscreen  bool
}

var C *Config
var Paths PathConfig
var LevelViewer LevelViewerConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:      1280,
		Height:     720,
		TPS:        30,
		Title:      "Husky Loves Ducky",
		ClearColor: color.RGBA{R: 60, G: 0, B: 70, A: 255},
	}

	Paths = PathConfig{
		Media: "media",
		Level: "levels/level1.yaml",
	}

	LevelViewer = LevelViewerConfig{
		CellSize:  32,
		PanSpeed:  12.0,
		ZoomStep:  0.05,
		MinZoom:   0.25,
		MaxZoom:   4.0,
		GridColor: color.RGBA{R: 80, G: 30, B: 90, A: 255},

		ObstacleColor: color.RGBA{R: 120, G: 200, B: 80, A: 255},
		GoalColor:     color.RGBA{R: 255, G: 215, B: 0, A: 255},
		GemColor:      color.RGBA{R: 80, G: 200, B: 255, A: 255},
		CoinColor:     color.RGBA{R: 255, G: 180, B: 0, A: 255},
		CatColor:      color.RGBA{R: 255, G: 100, B: 100, A: 255},
		SpikeColor:    color.RGBA{R: 230, G: 230, B: 230, A: 255},
	}

	Debug = DebugConfig{
		LevelViewer: false,
		Verbose:     false,
		Fullscreen:  false,
	}
}
