// Package gameplay is the in-level screen: running until the clock runs out,
// then a time's up banner over the frozen level.
package gameplay

import (
	"fmt"
	"time"

	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/hud"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/player"
)

// GamePlay is either Running or TimeUp.
type GamePlay interface {
	Kind() Kind
	isGamePlay()
}

type Kind int

const (
	KindRunning Kind = iota
	KindTimeUp
)

func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "running"
	case KindTimeUp:
		return "time up"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Running struct {
	Player player.Player
	Hud    hud.Hud
}

// TimeUp keeps the last running frame so it can be drawn underneath the banner.
type TimeUp struct {
	Final Running
}

func (Running) Kind() Kind { return KindRunning }
func (TimeUp) Kind() Kind  { return KindTimeUp }

func (Running) isGamePlay() {}
func (TimeUp) isGamePlay()  {}

// New starts a level with a fresh player of kind k and a full timer.
func New(k player.Kind, a gamedata.Animators) GamePlay {
	return Running{Player: player.New(k, a), Hud: hud.New()}
}

// Update reports false once the timer has run out.
func (r Running) Update(in input.State, elapsed time.Duration) (Running, bool) {
	h, ok := r.Hud.Update(0, elapsed)
	if !ok {
		return r, false
	}
	r.Hud = h
	r.Player = r.Player.Update(in, elapsed)
	return r, true
}

// Update reports true once the player confirms with enter.
func (t TimeUp) Update(in input.State) (TimeUp, bool) {
	return t, in.Pressed(input.ActionMenuSelect)
}

// Update advances g. Running turns into TimeUp on its own; the returned bool
// is true when TimeUp is dismissed and the parent should leave gameplay.
func Update(g GamePlay, in input.State, elapsed time.Duration) (GamePlay, bool) {
	switch v := g.(type) {
	case Running:
		next, ok := v.Update(in, elapsed)
		if !ok {
			return TimeUp{Final: next}, false
		}
		return next, false
	case TimeUp:
		next, done := v.Update(in)
		return next, done
	default:
		panic(inconsistent(g))
	}
}

func inconsistent(v any) error {
	return fmt.Errorf("gameplay: %T is not Running or TimeUp", v)
}
