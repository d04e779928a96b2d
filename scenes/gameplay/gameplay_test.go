package gameplay

import (
	"slices"
	"testing"
	"time"

	"github.com/automoto/husky-loves-ducky/clock"
	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/hud"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/player"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/resource/resourcetest"
)

func setup(t *testing.T) (*gamedata.Game, *resourcetest.Loader, resource.Manager) {
	t.Helper()
	data, err := gamedata.Default()
	if err != nil {
		t.Fatal(err)
	}
	l := resourcetest.NewLoader()
	return data, l, resource.NewHelper(l, data)
}

func TestRunningToTimeUp(t *testing.T) {
	data, _, _ := setup(t)
	g := New(player.Husky, data.Animators())
	r := g.(Running)
	r.Hud = hud.Hud{Timer: time.Second, Score: 5}

	next, done := Update(r, input.Hold(input.ActionMoveRight), 2*time.Second)
	if done {
		t.Fatal("time running out should not leave gameplay")
	}
	tu, ok := next.(TimeUp)
	if !ok {
		t.Fatalf("got %T, want TimeUp", next)
	}
	if tu.Final.Hud.Score != 5 {
		t.Errorf("final score = %d, want 5", tu.Final.Hud.Score)
	}

	next, done = Update(tu, input.Hold(), time.Second)
	if done || next.Kind() != KindTimeUp {
		t.Error("TimeUp should wait for enter")
	}
	if _, done = Update(next, input.Hold(input.ActionMenuSelect), 0); !done {
		t.Error("enter should dismiss TimeUp")
	}
}

func TestRunningUpdatesPlayer(t *testing.T) {
	data, _, _ := setup(t)
	g, _ := Update(New(player.Duck, data.Animators()), input.Hold(input.ActionMoveLeft), 100*time.Millisecond)
	r := g.(Running)
	if _, ok := r.Player.Action.(player.Walk); !ok {
		t.Errorf("action = %T, want Walk", r.Player.Action)
	}
	if r.Hud.Timer != hud.DefaultTimer-100*time.Millisecond {
		t.Errorf("timer = %v", r.Hud.Timer)
	}
}

func TestTimeUpAssetsReuseRunningMirror(t *testing.T) {
	data, l, m := setup(t)
	var g GamePlay = New(player.Husky, data.Animators())
	a, err := LoadAssets(g, m)
	if err != nil {
		t.Fatal(err)
	}
	l.Reset()

	g = TimeUp{Final: g.(Running)}
	a, err = NextAssets(a, g, clock.Step{Tick: 1, Elapsed: time.Second / 30}, m)
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind() != KindTimeUp {
		t.Fatalf("kind = %v, want time up", a.Kind())
	}
	if l.TextureLoads() != 0 {
		t.Errorf("TimeUp reloaded textures: %v", l.Textures)
	}
	if l.FontLoads() != 1 || l.Fonts[resource.KenPixel.Path()+"@48"] != 1 {
		t.Errorf("font loads = %v, want only the banner font", l.Fonts)
	}
	got := l.Texturized()
	slices.Sort(got)
	if want := []string{"<PRESS ENTER>", "TIME'S UP"}; !slices.Equal(got, want) {
		t.Errorf("texturized %v, want %v", got, want)
	}

	l.Reset()
	for i := 0; i < 30; i++ {
		if a, err = NextAssets(a, g, clock.Step{Elapsed: time.Second / 30}, m); err != nil {
			t.Fatal(err)
		}
	}
	if l.TextureLoads()+l.FontLoads()+len(l.Texturized()) != 0 {
		t.Error("TimeUp.Next should not load anything")
	}

	var r resourcetest.Renderer
	if err := a.Show(&r); err != nil {
		t.Fatal(err)
	}
	if len(r.Fills) != 2 {
		t.Errorf("fills = %d, want border and backdrop", len(r.Fills))
	}
	names := r.Names()
	if names[len(names)-2] != "TIME'S UP" {
		t.Errorf("banner drawn out of order: %v", names)
	}
	// After the drop tween finished the alert rests on the middle line.
	if y := r.Draws[len(r.Draws)-2].Options.Dst.Max.Y; y != 360 {
		t.Errorf("alert bottom = %d, want 360", y)
	}
}

func TestColdLoadTimeUp(t *testing.T) {
	data, l, m := setup(t)
	g := TimeUp{Final: New(player.Duck, data.Animators()).(Running)}
	a, err := LoadAssets(g, m)
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind() != KindTimeUp {
		t.Errorf("kind = %v", a.Kind())
	}
	if l.Textures["sprites/"+data.Duck.IdleTexture] != 1 {
		t.Errorf("backdrop should be built from the final running value: %v", l.Textures)
	}
}

func TestBackToRunningReloads(t *testing.T) {
	data, l, m := setup(t)
	g := TimeUp{Final: New(player.Duck, data.Animators()).(Running)}
	a, err := LoadAssets(g, m)
	if err != nil {
		t.Fatal(err)
	}
	l.Reset()
	a, err = NextAssets(a, g.Final, clock.Step{}, m)
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind() != KindRunning || l.TextureLoads() == 0 {
		t.Errorf("variant mismatch should rebuild: kind %v, loads %d", a.Kind(), l.TextureLoads())
	}
}

func TestUnknownVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Update(nil, input.State{}, 0)
}
