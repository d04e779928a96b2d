package gameplay

import (
	"image"
	"image/color"

	"github.com/automoto/husky-loves-ducky/clock"
	"github.com/automoto/husky-loves-ducky/hud"
	"github.com/automoto/husky-loves-ducky/player"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Assets mirrors a GamePlay value.
type Assets interface {
	resource.Shower
	Kind() Kind
}

type RunningAssets struct {
	background resource.Image
	player     player.Assets
	hud        hud.Assets
}

func (RunningAssets) Kind() Kind { return KindRunning }

func LoadRunning(r Running, m resource.Manager) (RunningAssets, error) {
	bg, err := m.Image(resource.TextureBackground, resource.Left(0).Top(0))
	if err != nil {
		return RunningAssets{}, err
	}
	p, err := player.LoadAssets(r.Player, m)
	if err != nil {
		return RunningAssets{}, err
	}
	h, err := hud.LoadAssets(r.Hud, m)
	if err != nil {
		return RunningAssets{}, err
	}
	return RunningAssets{background: bg, player: p, hud: h}, nil
}

func (a RunningAssets) Next(r Running) (RunningAssets, error) {
	a.player = a.player.Next(r.Player)
	h, err := a.hud.Next(r.Hud)
	if err != nil {
		return a, err
	}
	a.hud = h
	return a, nil
}

func (a RunningAssets) Show(r resource.Renderer) error {
	return resource.ShowAll(r, a.background, a.player, a.hud)
}

var (
	border   = color.RGBA{A: 255}
	backdrop = color.RGBA{R: 60, B: 70, A: 255}
	panel    = image.Rect(640-1080/2, 360-360/2, 640+1080/2, 360+360/2)
)

const (
	panelInset  = 6
	dropSeconds = 0.6
)

// TimeUpAssets draws the last running frame with a banner on top. The alert
// drops in from above the screen.
type TimeUpAssets struct {
	game         RunningAssets
	alert        resource.Image
	instructions resource.Image

	drop       *gween.Tween
	dropOffset float32
}

func (TimeUpAssets) Kind() Kind { return KindTimeUp }

// LoadTimeUp builds the banner over an existing running mirror. Only the
// banner font and its two labels are loaded.
func LoadTimeUp(game RunningAssets, m resource.Manager) (TimeUpAssets, error) {
	font, err := m.Font(resource.KenPixel, 48)
	if err != nil {
		return TimeUpAssets{}, err
	}
	alert, err := text.Static(font, "TIME'S UP", text.Red, resource.Bottom(360).Center(640))
	if err != nil {
		return TimeUpAssets{}, err
	}
	instructions, err := text.Static(font, "<PRESS ENTER>", text.White, resource.Top(360).Center(640))
	if err != nil {
		return TimeUpAssets{}, err
	}
	start := float32(-alert.Dst().Max.Y)
	return TimeUpAssets{
		game:         game,
		alert:        alert,
		instructions: instructions,
		drop:         gween.New(start, 0, dropSeconds, ease.OutBounce),
		dropOffset:   start,
	}, nil
}

func (a TimeUpAssets) Next(step clock.Step) TimeUpAssets {
	a.dropOffset, _ = a.drop.Update(float32(step.Elapsed.Seconds()))
	return a
}

func (a TimeUpAssets) Show(r resource.Renderer) error {
	if err := a.game.Show(r); err != nil {
		return err
	}
	if err := r.FillRect(panel, border); err != nil {
		return err
	}
	if err := r.FillRect(panel.Inset(panelInset), backdrop); err != nil {
		return err
	}
	dst := a.alert.Dst().Add(image.Pt(0, int(a.dropOffset)))
	if err := r.Draw(a.alert.Texture, resource.DrawOptions{Dst: dst}); err != nil {
		return err
	}
	return a.instructions.Show(r)
}

// LoadAssets builds the mirror for g from scratch. A TimeUp state is built
// from its final running value.
func LoadAssets(g GamePlay, m resource.Manager) (Assets, error) {
	switch v := g.(type) {
	case Running:
		return LoadRunning(v, m)
	case TimeUp:
		game, err := LoadRunning(v.Final, m)
		if err != nil {
			return nil, err
		}
		return LoadTimeUp(game, m)
	default:
		panic(inconsistent(g))
	}
}

// NextAssets brings a in line with g, reusing what it can. Running to TimeUp
// keeps the running mirror as the backdrop.
func NextAssets(a Assets, g GamePlay, step clock.Step, m resource.Manager) (Assets, error) {
	switch v := g.(type) {
	case Running:
		if ra, ok := a.(RunningAssets); ok {
			return ra.Next(v)
		}
		return LoadRunning(v, m)
	case TimeUp:
		switch prev := a.(type) {
		case TimeUpAssets:
			return prev.Next(step), nil
		case RunningAssets:
			return LoadTimeUp(prev, m)
		default:
			return LoadAssets(v, m)
		}
	default:
		panic(inconsistent(g))
	}
}
