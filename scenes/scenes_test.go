package scenes

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/husky-loves-ducky/clock"
	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/hud"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/player"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/resource/resourcetest"
	"github.com/automoto/husky-loves-ducky/scenes/gameplay"
	"github.com/automoto/husky-loves-ducky/scenes/menu"
	"github.com/automoto/husky-loves-ducky/scenes/playerselect"
	"github.com/automoto/husky-loves-ducky/scores"
)

const tick = time.Second / 30

type memStore struct{ entries []scores.Score }

func (s *memStore) Get() ([]scores.Score, error) { return s.entries, nil }

func (s *memStore) Create(entries []scores.Score) error {
	s.entries = entries
	return nil
}

func setup(t *testing.T) (World, *resourcetest.Loader, Env) {
	t.Helper()
	data, err := gamedata.Default()
	if err != nil {
		t.Fatal(err)
	}
	l := resourcetest.NewLoader()
	env := Env{
		Manager: resource.NewHelper(l, data),
		Scores:  &memStore{entries: []scores.Score{{Points: 10, Name: "duck"}}},
	}
	return NewWorld(data.Animators()), l, env
}

func press(actions ...input.Action) input.State {
	return input.Hold(actions...)
}

func TestTransitions(t *testing.T) {
	w, _, _ := setup(t)
	a := w.Animators
	expired := gameplay.New(player.Duck, a).(gameplay.Running)
	expired.Hud = hud.Hud{Timer: time.Millisecond}

	tests := []struct {
		name string
		from Screen
		in   input.State
		want Kind
	}{
		{"menu stays", Menu{State: menu.New()}, press(), KindMenu},
		{"menu new game", Menu{State: menu.New()}, press(input.ActionMenuSelect), KindPlayerSelect},
		{"menu high score", Menu{State: menu.Menu{Selected: menu.HighScore}}, press(input.ActionMenuSelect), KindHighScore},
		{"high score stays", HighScore{}, press(input.ActionMenuDown), KindHighScore},
		{"high score back to menu", HighScore{}, press(input.ActionMenuSelect), KindMenu},
		{"player select without choice", PlayerSelect{State: playerselect.New(a)}, press(input.ActionMenuSelect), KindPlayerSelect},
		{"timer expiry stays in gameplay", GamePlay{State: expired}, press(), KindGamePlay},
		{"time up back to menu", GamePlay{State: gameplay.TimeUp{Final: expired}}, press(input.ActionMenuSelect), KindMenu},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.Screen = tt.from
			if got := w.Update(tt.in, tick).Screen.Kind(); got != tt.want {
				t.Errorf("Update() kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreshSubScreens(t *testing.T) {
	w, _, _ := setup(t)

	w.Screen = HighScore{}
	w = w.Update(press(input.ActionMenuSelect), tick)
	if m := w.Screen.(Menu); m.State.Selected != menu.NewGame {
		t.Errorf("menu after high score should start at new game, got %v", m.State.Selected)
	}

	w = w.Update(press(input.ActionMenuSelect), tick)
	ps := w.Screen.(PlayerSelect)
	if ps.State.Gui.Selected.Active {
		t.Error("player select should start with no selection")
	}

	w = w.Update(press(input.ActionMenuRight), tick)
	w = w.Update(press(input.ActionMenuSelect), tick)
	gp, ok := w.Screen.(GamePlay)
	if !ok {
		t.Fatalf("screen = %T, want GamePlay", w.Screen)
	}
	r := gp.State.(gameplay.Running)
	if r.Player.Kind != player.Duck || r.Hud != hud.New() {
		t.Errorf("gameplay not seeded with the chosen duck: %+v", r)
	}
}

func TestMenuToPlayerSelectRebuilds(t *testing.T) {
	w, l, env := setup(t)
	a, err := LoadAssets(w, env)
	if err != nil {
		t.Fatal(err)
	}
	l.Reset()

	w = w.Update(press(input.ActionMenuSelect), tick)
	if w.Screen.Kind() != KindPlayerSelect {
		t.Fatalf("screen = %v", w.Screen.Kind())
	}
	a, err = a.Next(w, clock.Step{Tick: 1, Elapsed: tick}, env)
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind() != KindPlayerSelect {
		t.Fatalf("mirror = %v, want player select", a.Kind())
	}

	// Three guide sheets, two idle images, two walk sheets and the picker.
	if got := l.TextureLoads(); got != 8 {
		t.Errorf("texture loads = %d, want 8: %v", got, l.Textures)
	}
	if got := l.FontLoads(); got != 2 {
		t.Errorf("font loads = %d, want 2: %v", got, l.Fonts)
	}

	l.Reset()
	w = w.Update(press(input.ActionMenuLeft), tick)
	if a, err = a.Next(w, clock.Step{Tick: 2, Elapsed: tick}, env); err != nil {
		t.Fatal(err)
	}
	if l.TextureLoads()+l.FontLoads() != 0 {
		t.Error("same variant Next should not load")
	}
}

func TestRunningToTimeUpTouchesOnlyBannerResources(t *testing.T) {
	w, l, env := setup(t)
	r := gameplay.New(player.Husky, w.Animators).(gameplay.Running)
	r.Hud = hud.Hud{Timer: tick}
	w.Screen = GamePlay{State: r}

	a, err := LoadAssets(w, env)
	if err != nil {
		t.Fatal(err)
	}
	l.Reset()

	w = w.Update(press(), 2*tick)
	a, err = a.Next(w, clock.Step{Tick: 1, Elapsed: 2 * tick}, env)
	if err != nil {
		t.Fatal(err)
	}
	if k, ok := a.GamePlayKind(); !ok || k != gameplay.KindTimeUp {
		t.Fatalf("gameplay mirror = %v %v, want time up", k, ok)
	}
	if l.TextureLoads() != 0 || l.FontLoads() != 1 || len(l.Texturized()) != 2 {
		t.Errorf("loads: textures %v fonts %v texturized %v", l.Textures, l.Fonts, l.Texturized())
	}
}

func TestMirrorKindFollowsScreen(t *testing.T) {
	w, _, env := setup(t)
	a, err := LoadAssets(w, env)
	if err != nil {
		t.Fatal(err)
	}

	actions := []input.Action{
		input.ActionNone, input.ActionMoveLeft, input.ActionMoveRight, input.ActionJump,
		input.ActionMenuUp, input.ActionMenuDown, input.ActionMenuLeft, input.ActionMenuRight,
		input.ActionMenuSelect,
	}
	rng := rand.New(rand.NewSource(7))
	in := input.State{}
	step := clock.NewFixed(30)
	for i := 0; i < 3000; i++ {
		var held []input.Action
		for _, act := range actions {
			if rng.Intn(4) == 0 {
				held = append(held, act)
			}
		}
		in = in.Next(input.Hold(held...).Current)
		s := step.Next()
		// Long ticks now and then so levels actually time out.
		if rng.Intn(50) == 0 {
			s.Elapsed = 40 * time.Second
		}
		w = w.Update(in, s.Elapsed)
		if a, err = a.Next(w, s, env); err != nil {
			t.Fatal(err)
		}
		if a.Kind() != w.Screen.Kind() {
			t.Fatalf("tick %d: mirror %v, screen %v", i, a.Kind(), w.Screen.Kind())
		}
		if gp, ok := w.Screen.(GamePlay); ok {
			if k, _ := a.GamePlayKind(); k != gp.State.Kind() {
				t.Fatalf("tick %d: gameplay mirror %v, state %v", i, k, gp.State.Kind())
			}
		}
	}
}

func TestLoadFailurePropagates(t *testing.T) {
	w, l, env := setup(t)
	l.Missing[resource.KenPixel.Path()] = true
	_, err := LoadAssets(w, env)
	if !errors.Is(err, resource.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUnknownScreenPanics(t *testing.T) {
	w, _, _ := setup(t)
	w.Screen = nil
	defer func() {
		r := recover()
		if _, ok := r.(InconsistencyError); !ok {
			t.Errorf("recovered %v, want InconsistencyError", r)
		}
	}()
	w.Update(input.State{}, tick)
}
