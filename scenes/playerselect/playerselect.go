// Package playerselect is the character choice screen. It doubles as a short
// guide showing what to collect and what to avoid.
package playerselect

import (
	"time"

	"github.com/automoto/husky-loves-ducky/assets/animations"
	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/player"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/text"
)

// Guide animates the example sprites.
type Guide struct {
	Gem  animations.Animator
	Coin animations.Animator
	Cat  animations.Animator
}

func NewGuide(a gamedata.Animators) Guide {
	return Guide{
		Gem:  a.Gem.Start(),
		Coin: a.Coin.Start(),
		Cat:  a.CatIdle.Start(),
	}
}

func (g Guide) Update(elapsed time.Duration) Guide {
	g.Gem = g.Gem.Advance(elapsed)
	g.Coin = g.Coin.Advance(elapsed)
	g.Cat = g.Cat.Advance(elapsed)
	return g
}

type PlayerSelect struct {
	Guide Guide
	Gui   Gui
}

func New(a gamedata.Animators) PlayerSelect {
	return PlayerSelect{Guide: NewGuide(a), Gui: NewGui(a)}
}

// Update quits with the chosen character once one is selected and enter is pressed.
func (ps PlayerSelect) Update(in input.State, elapsed time.Duration) (PlayerSelect, player.Kind, bool) {
	gui, kind, done := ps.Gui.Update(in, elapsed)
	if done {
		return ps, kind, true
	}
	ps.Gui = gui
	ps.Guide = ps.Guide.Update(elapsed)
	return ps, 0, false
}

type Assets struct {
	title        resource.Image
	collect      resource.Image
	avoid        resource.Image
	instructions resource.Image
	gem          resource.Sprite
	coin         resource.Sprite
	cat          resource.Sprite
	gui          GuiAssets
}

const collectGap = 50

func LoadAssets(ps PlayerSelect, m resource.Manager) (Assets, error) {
	var a Assets
	big, err := m.Font(resource.KenPixel, 64)
	if err != nil {
		return a, err
	}
	if a.title, err = text.Static(big, "Select Player", text.Yellow, resource.Top(50).Center(640)); err != nil {
		return a, err
	}
	if a.collect, err = text.Static(big, "Collect", text.Yellow, resource.Top(400).Center(320)); err != nil {
		return a, err
	}
	if a.avoid, err = text.Static(big, "Avoid", text.Yellow, resource.Top(400).Center(960)); err != nil {
		return a, err
	}
	small, err := m.Font(resource.KenPixel, 32)
	if err != nil {
		return a, err
	}
	if a.instructions, err = text.Static(small, "<Use Arrow Keys to choose player; then press Enter>", text.Yellow, resource.Bottom(700).Center(640)); err != nil {
		return a, err
	}
	if a.coin, err = m.Sprite(resource.AnimationCoin, resource.Top(525).Right(320-collectGap/2)); err != nil {
		return a, err
	}
	if a.gem, err = m.Sprite(resource.AnimationGem, resource.Top(525).Left(320+collectGap/2)); err != nil {
		return a, err
	}
	if a.cat, err = m.Sprite(resource.AnimationCatIdle, resource.Top(500).Center(960)); err != nil {
		return a, err
	}
	a.coin, a.gem, a.cat = a.coin.Scale(2), a.gem.Scale(2), a.cat.Scale(2)
	if a.gui, err = LoadGuiAssets(m); err != nil {
		return a, err
	}
	return a.Next(ps), nil
}

// Next copies the animator frames onto the sprites. It never loads.
func (a Assets) Next(ps PlayerSelect) Assets {
	a.gem.Tile = ps.Guide.Gem.Frame()
	a.coin.Tile = ps.Guide.Coin.Frame()
	a.cat.Tile = ps.Guide.Cat.Frame()
	a.gui = a.gui.Next(ps.Gui)
	return a
}

func (a Assets) Show(r resource.Renderer) error {
	return resource.ShowAll(r, a.title, a.collect, a.avoid, a.instructions, a.gem, a.coin, a.cat, a.gui)
}
