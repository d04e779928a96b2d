// Package player is the controllable character: its action state machine and
// the sprite that mirrors it.
package player

import (
	"fmt"
	"time"

	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/resource"
)

type Kind int

const (
	Husky Kind = iota
	Duck
)

func (k Kind) String() string {
	switch k {
	case Husky:
		return "husky"
	case Duck:
		return "duck"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) ids() (resource.TextureID, resource.AnimationID) {
	if k == Duck {
		return resource.TextureDuck, resource.AnimationDuck
	}
	return resource.TextureHusky, resource.AnimationHusky
}

type Player struct {
	Kind   Kind
	Action Action
}

// New returns an idle player using the walk timing of its kind.
func New(k Kind, a gamedata.Animators) Player {
	data := a.Husky
	if k == Duck {
		data = a.Duck
	}
	return Player{Kind: k, Action: Idle{Anim: data.Stopped()}}
}

func (p Player) Update(in input.State, elapsed time.Duration) Player {
	p.Action = Update(p.Action, in, elapsed)
	return p
}

func inconsistent(a Action) error {
	return fmt.Errorf("player: action %T is not Idle, Walk or Jump", a)
}

// Assets draws the idle texture while standing or airborne and the walk
// sheet while walking. Both are kept so switching never reloads.
type Assets struct {
	idle     resource.Image
	sprite   resource.Sprite
	animated bool
	flip     bool
}

var spawn = resource.Left(0).Top(200)

func LoadAssets(p Player, m resource.Manager) (Assets, error) {
	tex, anim := p.Kind.ids()
	idle, err := m.Image(tex, spawn)
	if err != nil {
		return Assets{}, err
	}
	sheet, err := m.Sheet(anim)
	if err != nil {
		return Assets{}, err
	}
	a := Assets{
		idle:   idle,
		sprite: resource.Sprite{Sheet: sheet, Pos: idle.Pos, Size: idle.Size},
	}
	return a.Next(p), nil
}

// Next re-tags the sprite for the player's current action.
func (a Assets) Next(p Player) Assets {
	switch v := p.Action.(type) {
	case Idle:
		a.animated = false
	case Jump:
		a.animated = false
		if v.Direction != input.None {
			a.flip = v.Direction.Flip()
		}
	case Walk:
		a.animated = true
		a.sprite.Tile = v.Anim.Frame()
		a.flip = v.Direction.Flip()
	default:
		panic(inconsistent(p.Action))
	}
	return a
}

func (a Assets) Animated() bool { return a.animated }

func (a Assets) Flipped() bool { return a.flip }

func (a Assets) Tile() uint32 { return a.sprite.Tile }

func (a Assets) Show(r resource.Renderer) error {
	if a.animated {
		return a.sprite.ShowFlipped(r, a.flip)
	}
	return a.idle.ShowFlipped(r, a.flip)
}
