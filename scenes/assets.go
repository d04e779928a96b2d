package scenes

import (
	"github.com/automoto/husky-loves-ducky/clock"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/scenes/gameplay"
	"github.com/automoto/husky-loves-ducky/scenes/highscore"
	"github.com/automoto/husky-loves-ducky/scenes/menu"
	"github.com/automoto/husky-loves-ducky/scenes/playerselect"
	"github.com/automoto/husky-loves-ducky/scores"
)

// Env is what asset loads may reach for.
type Env struct {
	Manager resource.Manager
	Scores  scores.Store
}

type screenAssets interface {
	resource.Shower
	Kind() Kind
}

type menuAssets struct{ menu.Assets }

type playerSelectAssets struct{ playerselect.Assets }

type gamePlayAssets struct{ gameplay.Assets }

type highScoreAssets struct{ highscore.Assets }

func (menuAssets) Kind() Kind         { return KindMenu }
func (playerSelectAssets) Kind() Kind { return KindPlayerSelect }
func (gamePlayAssets) Kind() Kind     { return KindGamePlay }
func (highScoreAssets) Kind() Kind    { return KindHighScore }

// Assets mirrors the active screen with loaded textures. After every
// successful LoadAssets or Next its Kind matches the world's screen.
type Assets struct {
	screen screenAssets
}

// LoadAssets builds the mirror of the active screen from scratch.
func LoadAssets(w World, env Env) (Assets, error) {
	s, err := load(w.Screen, env)
	if err != nil {
		return Assets{}, err
	}
	return Assets{screen: s}, nil
}

func load(s Screen, env Env) (screenAssets, error) {
	switch v := s.(type) {
	case Menu:
		a, err := menu.LoadAssets(v.State, env.Manager)
		return menuAssets{a}, err
	case PlayerSelect:
		a, err := playerselect.LoadAssets(v.State, env.Manager)
		return playerSelectAssets{a}, err
	case GamePlay:
		a, err := gameplay.LoadAssets(v.State, env.Manager)
		return gamePlayAssets{a}, err
	case HighScore:
		a, err := highscore.LoadAssets(env.Manager, env.Scores)
		return highScoreAssets{a}, err
	default:
		panic(InconsistencyError{Value: s})
	}
}

// Next brings the mirror in line with w. A matching variant is updated in
// place; a mismatch drops the old mirror and loads the new screen.
func (a Assets) Next(w World, step clock.Step, env Env) (Assets, error) {
	s, err := a.next(w.Screen, step, env)
	if err != nil {
		return a, err
	}
	return Assets{screen: s}, nil
}

func (a Assets) next(s Screen, step clock.Step, env Env) (screenAssets, error) {
	switch v := s.(type) {
	case Menu:
		if m, ok := a.screen.(menuAssets); ok {
			return menuAssets{m.Assets.Next(v.State, step)}, nil
		}
	case PlayerSelect:
		if ps, ok := a.screen.(playerSelectAssets); ok {
			return playerSelectAssets{ps.Assets.Next(v.State)}, nil
		}
	case GamePlay:
		// The gameplay mirror handles its own Running to TimeUp change.
		if gp, ok := a.screen.(gamePlayAssets); ok {
			next, err := gameplay.NextAssets(gp.Assets, v.State, step, env.Manager)
			return gamePlayAssets{next}, err
		}
	case HighScore:
		if hs, ok := a.screen.(highScoreAssets); ok {
			return hs, nil
		}
	default:
		panic(InconsistencyError{Value: s})
	}
	return load(s, env)
}

// Kind is the screen variant currently mirrored.
func (a Assets) Kind() Kind {
	if a.screen == nil {
		panic(InconsistencyError{Value: a.screen})
	}
	return a.screen.Kind()
}

// GamePlayKind reports the nested gameplay variant when gameplay is mirrored.
func (a Assets) GamePlayKind() (gameplay.Kind, bool) {
	gp, ok := a.screen.(gamePlayAssets)
	if !ok {
		return 0, false
	}
	return gp.Assets.Kind(), true
}

func (a Assets) Show(r resource.Renderer) error {
	if a.screen == nil {
		return nil
	}
	return a.screen.Show(r)
}
