// Package menu is the title screen: pick between a new game and the high scores.
package menu

import (
	"image"

	"github.com/automoto/husky-loves-ducky/clock"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Button is both the highlighted option and the quit signal.
type Button int

const (
	NewGame Button = iota
	HighScore
)

func (b Button) String() string {
	if b == HighScore {
		return "high score"
	}
	return "new game"
}

func (b Button) toggle() Button {
	if b == NewGame {
		return HighScore
	}
	return NewGame
}

type Menu struct {
	Selected Button
}

func New() Menu {
	return Menu{Selected: NewGame}
}

// Update toggles the selection when exactly one of up and down was pressed and
// quits with the selection on enter.
func (m Menu) Update(in input.State) (Menu, Button, bool) {
	if in.Pressed(input.ActionMenuUp) != in.Pressed(input.ActionMenuDown) {
		m.Selected = m.Selected.toggle()
	}
	if in.Pressed(input.ActionMenuSelect) {
		return m, m.Selected, true
	}
	return m, 0, false
}

type Assets struct {
	husky        resource.Image
	duck         resource.Image
	heart        resource.Image
	instructions resource.Image
	gui          guiAssets
}

func LoadAssets(m Menu, mgr resource.Manager) (Assets, error) {
	husky, err := mgr.Image(resource.TextureHusky, resource.Right(640-32-30).Middle(125))
	if err != nil {
		return Assets{}, err
	}
	duck, err := mgr.Image(resource.TextureDuck, resource.Left(640+32+30).Middle(125))
	if err != nil {
		return Assets{}, err
	}
	heart, err := mgr.Image(resource.TextureHeart, resource.Center(640).Middle(125))
	if err != nil {
		return Assets{}, err
	}
	small, err := mgr.Font(resource.KenPixel, 32)
	if err != nil {
		return Assets{}, err
	}
	instructions, err := text.Static(small, "<Use Arrow Keys to select option; then press Enter>", text.Yellow, resource.Bottom(700).Center(640))
	if err != nil {
		return Assets{}, err
	}
	picker, err := mgr.Texture(resource.TextureHeart)
	if err != nil {
		return Assets{}, err
	}
	big, err := mgr.Font(resource.KenPixel, 64)
	if err != nil {
		return Assets{}, err
	}
	gui, err := loadGui(big, picker, m)
	if err != nil {
		return Assets{}, err
	}
	return Assets{
		husky:        husky.Scale(2),
		duck:         duck.Scale(2),
		heart:        heart.Scale(2),
		instructions: instructions,
		gui:          gui,
	}, nil
}

func (a Assets) Next(m Menu, step clock.Step) Assets {
	a.gui = a.gui.next(m, step)
	return a
}

// Selected is the highlighted button as last mirrored.
func (a Assets) Selected() Button { return a.gui.selected }

func (a Assets) Show(r resource.Renderer) error {
	return resource.ShowAll(r, a.husky, a.duck, a.heart, a.instructions, a.gui)
}

type button struct {
	idle     resource.Texture
	selected resource.Texture
	dst      image.Rectangle
}

func loadButton(f resource.Font, label string, center image.Point) (button, error) {
	dims, err := f.Measure(label)
	if err != nil {
		return button{}, err
	}
	idle, err := f.Texturize(label, text.White)
	if err != nil {
		return button{}, err
	}
	selected, err := f.Texturize(label, text.Yellow)
	if err != nil {
		return button{}, err
	}
	return button{
		idle:     idle,
		selected: selected,
		dst:      resource.Middle(center.Y).Center(center.X).Dims(dims),
	}, nil
}

const (
	bobDistance = 8
	bobSeconds  = 0.4
)

type guiAssets struct {
	selected  Button
	newGame   button
	highScore button
	picker    resource.Texture

	bob       *gween.Tween
	bobOut    bool
	bobOffset float32
}

func loadGui(f resource.Font, picker resource.Texture, m Menu) (guiAssets, error) {
	newGame, err := loadButton(f, "New Game", image.Pt(640, 325))
	if err != nil {
		return guiAssets{}, err
	}
	highScore, err := loadButton(f, "High Scores", image.Pt(640, 500))
	if err != nil {
		return guiAssets{}, err
	}
	return guiAssets{
		selected:  m.Selected,
		newGame:   newGame,
		highScore: highScore,
		picker:    picker,
		bob:       gween.New(0, bobDistance, bobSeconds, ease.InOutSine),
		bobOut:    true,
	}, nil
}

func (g guiAssets) next(m Menu, step clock.Step) guiAssets {
	if m.Selected != g.selected {
		g.selected = m.Selected
		g.bob = gween.New(0, bobDistance, bobSeconds, ease.InOutSine)
		g.bobOut, g.bobOffset = true, 0
		return g
	}
	var done bool
	g.bobOffset, done = g.bob.Update(float32(step.Elapsed.Seconds()))
	if done {
		from, to := float32(bobDistance), float32(0)
		if !g.bobOut {
			from, to = to, from
		}
		g.bobOut = !g.bobOut
		g.bob = gween.New(from, to, bobSeconds, ease.InOutSine)
	}
	return g
}

func (g guiAssets) Show(r resource.Renderer) error {
	selected, unselected := g.newGame, g.highScore
	if g.selected == HighScore {
		selected, unselected = g.highScore, g.newGame
	}
	mid := (selected.dst.Min.Y + selected.dst.Max.Y) / 2
	picker := resource.Right(selected.dst.Min.X - 10 - int(g.bobOffset)).Middle(mid).Dims(g.picker.Size())
	if err := r.Draw(g.picker, resource.DrawOptions{Dst: picker}); err != nil {
		return err
	}
	if err := r.Draw(selected.selected, resource.DrawOptions{Dst: selected.dst}); err != nil {
		return err
	}
	return r.Draw(unselected.idle, resource.DrawOptions{Dst: unselected.dst})
}
