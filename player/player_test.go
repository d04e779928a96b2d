package player

import (
	"testing"
	"time"

	"github.com/automoto/husky-loves-ducky/assets/animations"
	"github.com/automoto/husky-loves-ducky/gamedata"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/resource/resourcetest"
)

var walk = animations.NewData(4, 400*time.Millisecond)

const tick = 100 * time.Millisecond

func TestNextTransitions(t *testing.T) {
	walking := Walk{Direction: input.Right, Anim: walk.Start().Advance(250 * time.Millisecond)}
	tests := []struct {
		name  string
		from  Action
		jump  bool
		dir   input.Direction
		check func(t *testing.T, got Action)
	}{
		{"idle stays idle", Idle{Anim: walk.Stopped()}, false, input.None, func(t *testing.T, got Action) {
			if _, ok := got.(Idle); !ok {
				t.Fatalf("got %T, want Idle", got)
			}
		}},
		{"idle to walk starts fresh", Idle{Anim: walk.Stopped()}, false, input.Left, func(t *testing.T, got Action) {
			w, ok := got.(Walk)
			if !ok || w.Direction != input.Left {
				t.Fatalf("got %#v, want Walk left", got)
			}
			if !w.Anim.Running() || w.Anim.Elapsed() != 0 {
				t.Errorf("animator = running %v elapsed %v, want fresh", w.Anim.Running(), w.Anim.Elapsed())
			}
		}},
		{"walk to walk keeps phase", walking, false, input.Left, func(t *testing.T, got Action) {
			w := got.(Walk)
			if w.Anim.Elapsed() != 250*time.Millisecond+tick {
				t.Errorf("elapsed = %v, want %v", w.Anim.Elapsed(), 250*time.Millisecond+tick)
			}
			if w.Direction != input.Left {
				t.Errorf("direction = %v, want left", w.Direction)
			}
		}},
		{"walk to idle stops", walking, false, input.None, func(t *testing.T, got Action) {
			i := got.(Idle)
			if i.Anim.Running() || i.Anim.Frame() != 0 {
				t.Errorf("animator should be stopped at frame 0")
			}
		}},
		{"walk to jump keeps direction", walking, true, input.Right, func(t *testing.T, got Action) {
			j := got.(Jump)
			if j.Direction != input.Right || j.Anim.Running() {
				t.Errorf("got %#v", j)
			}
		}},
		{"jump without direction", Idle{Anim: walk.Stopped()}, true, input.None, func(t *testing.T, got Action) {
			if j := got.(Jump); j.Direction != input.None {
				t.Errorf("direction = %v, want none", j.Direction)
			}
		}},
		{"jump to walk starts fresh", Jump{Direction: input.Left, Anim: walk.Stopped()}, false, input.Right, func(t *testing.T, got Action) {
			w := got.(Walk)
			if w.Anim.Elapsed() != 0 || !w.Anim.Running() {
				t.Errorf("animator not fresh: %v", w.Anim.Elapsed())
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Next(tt.from, tt.jump, tt.dir, tick))
		})
	}
}

func TestUpdateReadsInput(t *testing.T) {
	a := Update(Idle{Anim: walk.Stopped()}, input.Hold(input.ActionMoveLeft, input.ActionMoveRight), tick)
	if _, ok := a.(Idle); !ok {
		t.Errorf("both directions should cancel, got %T", a)
	}
	a = Update(a, input.Hold(input.ActionJump, input.ActionMoveLeft), tick)
	if j, ok := a.(Jump); !ok || j.Direction != input.Left {
		t.Errorf("got %#v, want Jump left", a)
	}
}

func TestNilActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an action outside the closed set")
		}
	}()
	Next(nil, false, input.None, tick)
}

func loadAssets(t *testing.T, p Player) (Assets, *resourcetest.Loader) {
	t.Helper()
	data, err := gamedata.Default()
	if err != nil {
		t.Fatal(err)
	}
	l := resourcetest.NewLoader()
	a, err := LoadAssets(p, resource.NewHelper(l, data))
	if err != nil {
		t.Fatal(err)
	}
	return a, l
}

func TestAssetsFlipWhileAirborne(t *testing.T) {
	data, _ := gamedata.Default()
	p := New(Duck, data.Animators())
	a, l := loadAssets(t, p)
	l.Reset()

	steps := []struct {
		held     []input.Action
		animated bool
		flip     bool
	}{
		{[]input.Action{input.ActionMoveLeft}, true, true},
		{[]input.Action{input.ActionMoveLeft, input.ActionJump}, false, true},
		{[]input.Action{input.ActionJump}, false, true},
		{[]input.Action{input.ActionMoveRight, input.ActionJump}, false, false},
		{nil, false, false},
		{[]input.Action{input.ActionMoveLeft}, true, true},
		{nil, false, true},
	}
	for i, s := range steps {
		p = p.Update(input.Hold(s.held...), tick)
		a = a.Next(p)
		if a.Animated() != s.animated || a.Flipped() != s.flip {
			t.Errorf("step %d (%T): animated %v flip %v, want %v %v", i, p.Action, a.Animated(), a.Flipped(), s.animated, s.flip)
		}
	}
	if l.TextureLoads() != 0 {
		t.Errorf("switching actions loaded %d textures", l.TextureLoads())
	}
}

func TestAssetsWalkFrame(t *testing.T) {
	data, _ := gamedata.Default()
	p := New(Husky, data.Animators())
	a, _ := loadAssets(t, p)

	frameDur := data.Animators().Husky.FrameDuration
	p = p.Update(input.Hold(input.ActionMoveRight), frameDur)
	p = p.Update(input.Hold(input.ActionMoveRight), frameDur)
	a = a.Next(p)
	if a.Tile() != 1 {
		t.Errorf("tile = %d, want 1", a.Tile())
	}

	var r resourcetest.Renderer
	if err := a.Show(&r); err != nil {
		t.Fatal(err)
	}
	if len(r.Draws) != 1 || r.Draws[0].Options.Src.Empty() || r.Draws[0].Options.FlipH {
		t.Errorf("walk should draw one unflipped tile: %+v", r.Draws)
	}
}
