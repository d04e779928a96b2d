package playerselect

import (
	"time"

	"github.com/automoto/husky-loves-ducky/assets/animations"
	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/player"
	"github.com/automoto/husky-loves-ducky/resource"
)

// Selection is the highlighted character, if any. The selected button walks in
// place, driven by Anim.
type Selection struct {
	Kind   player.Kind
	Anim   animations.Animator
	Active bool
}

type Gui struct {
	Selected Selection
	husky    animations.Data
	duck     animations.Data
}

func NewGui(a gamedata.Animators) Gui {
	return Gui{husky: a.Husky, duck: a.Duck}
}

func (g Gui) selects(k player.Kind) bool {
	return g.Selected.Active && g.Selected.Kind == k
}

// Update moves the selection with left and right. Pressing both at once
// counts as neither. A button that stays selected keeps its walk cycle going.
func (g Gui) Update(in input.State, elapsed time.Duration) (Gui, player.Kind, bool) {
	dir := in.HorizontalPressed()
	left, right := dir == input.Left, dir == input.Right

	switch {
	case g.selects(player.Husky) && !right, g.selects(player.Duck) && !left:
		g.Selected.Anim = g.Selected.Anim.Advance(elapsed)
	case right:
		g.Selected = Selection{Kind: player.Duck, Anim: g.duck.Start(), Active: true}
	case left:
		g.Selected = Selection{Kind: player.Husky, Anim: g.husky.Start(), Active: true}
	default:
		g.Selected = Selection{}
	}

	if g.Selected.Active && in.Pressed(input.ActionMenuSelect) {
		return g, g.Selected.Kind, true
	}
	return g, 0, false
}

// button shows the idle texture until selected, then the walk sheet with a
// picker underneath.
type button struct {
	image    resource.Image
	sprite   resource.Sprite
	picker   resource.Image
	selected bool
}

func (b button) Show(r resource.Renderer) error {
	if !b.selected {
		return b.image.Show(r)
	}
	return resource.ShowAll(r, b.sprite, b.picker)
}

func (b button) next(sel Selection, k player.Kind) button {
	b.selected = sel.Active && sel.Kind == k
	if b.selected {
		b.sprite.Tile = sel.Anim.Frame()
	}
	return b
}

type GuiAssets struct {
	husky button
	duck  button
}

const buttonGap = 50

func LoadGuiAssets(m resource.Manager) (GuiAssets, error) {
	picker, err := m.Texture(resource.TextureHeart)
	if err != nil {
		return GuiAssets{}, err
	}
	husky, err := loadButton(m, picker, resource.TextureHusky, resource.AnimationHusky, resource.Right(640-buttonGap/2).Bottom(300))
	if err != nil {
		return GuiAssets{}, err
	}
	duck, err := loadButton(m, picker, resource.TextureDuck, resource.AnimationDuck, resource.Left(640+buttonGap/2).Bottom(300))
	if err != nil {
		return GuiAssets{}, err
	}
	return GuiAssets{husky: husky, duck: duck}, nil
}

func loadButton(m resource.Manager, picker resource.Texture, tex resource.TextureID, anim resource.AnimationID, pos resource.Position) (button, error) {
	img, err := m.Image(tex, pos)
	if err != nil {
		return button{}, err
	}
	sheet, err := m.Sheet(anim)
	if err != nil {
		return button{}, err
	}
	img = img.Scale(2)
	dst := img.Dst()
	return button{
		image:  img,
		sprite: resource.Sprite{Sheet: sheet, Pos: img.Pos, Size: img.Size},
		picker: resource.NewImage(picker, resource.Top(dst.Max.Y+10).Center((dst.Min.X+dst.Max.X)/2)),
	}, nil
}

func (a GuiAssets) Next(g Gui) GuiAssets {
	a.husky = a.husky.next(g.Selected, player.Husky)
	a.duck = a.duck.next(g.Selected, player.Duck)
	return a
}

// Selected reports which button is highlighted.
func (a GuiAssets) Selected() (player.Kind, bool) {
	switch {
	case a.husky.selected:
		return player.Husky, true
	case a.duck.selected:
		return player.Duck, true
	default:
		return 0, false
	}
}

func (a GuiAssets) Show(r resource.Renderer) error {
	return resource.ShowAll(r, a.duck, a.husky)
}
