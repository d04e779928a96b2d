// Package scenes ties the sub-screens together: the top level screen state
// machine and the asset mirror that follows it.
package scenes

import (
	"fmt"
	"time"

	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/scenes/gameplay"
	"github.com/automoto/husky-loves-ducky/scenes/highscore"
	"github.com/automoto/husky-loves-ducky/scenes/menu"
	"github.com/automoto/husky-loves-ducky/scenes/playerselect"
)

type Kind int

const (
	KindMenu Kind = iota
	KindPlayerSelect
	KindGamePlay
	KindHighScore
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindPlayerSelect:
		return "player select"
	case KindGamePlay:
		return "gameplay"
	case KindHighScore:
		return "high score"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Screen is one of Menu, PlayerSelect, GamePlay or HighScore.
type Screen interface {
	Kind() Kind
	isScreen()
}

type Menu struct{ State menu.Menu }

type PlayerSelect struct{ State playerselect.PlayerSelect }

type GamePlay struct{ State gameplay.GamePlay }

type HighScore struct{ State highscore.HighScore }

func (Menu) Kind() Kind         { return KindMenu }
func (PlayerSelect) Kind() Kind { return KindPlayerSelect }
func (GamePlay) Kind() Kind     { return KindGamePlay }
func (HighScore) Kind() Kind    { return KindHighScore }

func (Menu) isScreen()         {}
func (PlayerSelect) isScreen() {}
func (GamePlay) isScreen()     {}
func (HighScore) isScreen()    {}

// InconsistencyError is raised with panic when a value outside the closed
// set of screens reaches a dispatch.
type InconsistencyError struct {
	Value any
}

func (e InconsistencyError) Error() string {
	return fmt.Sprintf("scenes: %T is not a known screen", e.Value)
}

// World is the whole simulation state. Animators seed every fresh sub-screen.
type World struct {
	Screen    Screen
	Animators gamedata.Animators
}

// NewWorld starts at the menu.
func NewWorld(a gamedata.Animators) World {
	return World{Screen: Menu{State: menu.New()}, Animators: a}
}

// Update advances the active sub-screen. When it quits, the quit signal
// picks a freshly built successor.
func (w World) Update(in input.State, elapsed time.Duration) World {
	w.Screen = w.next(in, elapsed)
	return w
}

func (w World) next(in input.State, elapsed time.Duration) Screen {
	switch s := w.Screen.(type) {
	case Menu:
		m, choice, done := s.State.Update(in)
		if !done {
			return Menu{State: m}
		}
		if choice == menu.HighScore {
			return HighScore{}
		}
		return PlayerSelect{State: playerselect.New(w.Animators)}
	case HighScore:
		if _, done := s.State.Update(in); done {
			return Menu{State: menu.New()}
		}
		return s
	case PlayerSelect:
		ps, kind, done := s.State.Update(in, elapsed)
		if done {
			return GamePlay{State: gameplay.New(kind, w.Animators)}
		}
		return PlayerSelect{State: ps}
	case GamePlay:
		g, done := gameplay.Update(s.State, in, elapsed)
		if done {
			return Menu{State: menu.New()}
		}
		return GamePlay{State: g}
	default:
		panic(InconsistencyError{Value: w.Screen})
	}
}
