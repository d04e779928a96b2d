package levelviewer

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/husky-loves-ducky/components"
	"github.com/automoto/husky-loves-ducky/config"
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/leveldata"
	"github.com/automoto/husky-loves-ducky/tags"
	"github.com/yohamta/donburi"
)

type fakeSource struct {
	held [input.ActionCount]bool
}

func (f *fakeSource) poll() [input.ActionCount]bool { return f.held }

func (f *fakeSource) hold(actions ...input.Action) {
	f.held = input.Hold(actions...).Current
}

func testMap() *leveldata.Map {
	return &leveldata.Map{
		Width:  320,
		Height: 160,
		Objects: []leveldata.Object{
			{Kind: leveldata.KindObstacle, X: 0, Y: 128, W: 320, H: 32},
			{Kind: leveldata.KindObstacle, X: 64, Y: 96, W: 32, H: 32},
			{Kind: leveldata.KindCat, X: 0, Y: 96, W: 32, H: 32, Patrol: 100},
			{Kind: leveldata.KindGem, X: 200, Y: 32, W: 32, H: 32},
		},
	}
}

func camera(t *testing.T, s *Scene) components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(s.World())
	if !ok {
		t.Fatal("no camera")
	}
	return *components.Camera.Get(entry)
}

func TestSceneSpawnsObjects(t *testing.T) {
	src := &fakeSource{}
	s := New("test", testMap(), src.poll)

	spaceEntry, ok := components.Space.First(s.World())
	if !ok {
		t.Fatal("no collision space")
	}
	if got := len(components.Space.Get(spaceEntry).Objects()); got != 4 {
		t.Errorf("space objects = %d, want 4", got)
	}

	counts := map[string]int{}
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Obstacle, tags.Cat, tags.Gem, tags.Spike} {
		tag.Each(s.World(), func(e *donburi.Entry) { counts[tag.Name()]++ })
	}
	if counts["Obstacle"] != 2 || counts["Cat"] != 1 || counts["Gem"] != 1 || counts["Spike"] != 0 {
		t.Errorf("tag counts = %v", counts)
	}

	c := camera(t, s)
	if c.Position.X != 160 || c.Position.Y != 80 || c.Zoom != 1 {
		t.Errorf("camera = %+v, want centred at zoom 1", c)
	}
}

func TestCameraPanZoomAndRecentre(t *testing.T) {
	src := &fakeSource{}
	s := New("test", testMap(), src.poll)
	cfg := config.LevelViewer

	src.hold(input.ActionMenuRight)
	s.Update()
	if got := camera(t, s).Position.X; got != 160+cfg.PanSpeed {
		t.Errorf("after pan X = %v, want %v", got, 160+cfg.PanSpeed)
	}

	src.hold(input.ActionMenuLeft, input.ActionMenuUp)
	for i := 0; i < 100; i++ {
		s.Update()
	}
	if c := camera(t, s); c.Position.X != 0 || c.Position.Y != 0 {
		t.Errorf("camera left the level: %+v", c.Position)
	}

	src.hold(input.ActionZoomIn)
	for i := 0; i < 200; i++ {
		s.Update()
	}
	if got := camera(t, s).Zoom; got != cfg.MaxZoom {
		t.Errorf("zoom = %v, want clamp at %v", got, cfg.MaxZoom)
	}

	src.hold(input.ActionMenuBack)
	s.Update()
	if c := camera(t, s); c.Position.X != 160 || c.Position.Y != 80 || c.Zoom != 1 {
		t.Errorf("recentre = %+v", c)
	}
}

func TestCatTurnsAtObstacle(t *testing.T) {
	src := &fakeSource{}
	s := New("test", testMap(), src.poll)

	cat, ok := tags.Cat.First(s.World())
	if !ok {
		t.Fatal("no cat")
	}
	obj := components.Object.Get(cat)
	patrol := components.Patrol.Get(cat)

	// The block at x 64 stops the cat at 32, well short of its range.
	for i := 0; i < 16; i++ {
		s.Update()
	}
	if obj.X != 32 {
		t.Fatalf("cat X = %v, want 32", obj.X)
	}
	s.Update()
	if patrol.Dir != -1 || obj.X != 32 {
		t.Errorf("cat should turn in place, dir %v X %v", patrol.Dir, obj.X)
	}
	for i := 0; i < 100; i++ {
		s.Update()
		if obj.X < patrol.Origin || obj.X+obj.W > 64 {
			t.Fatalf("tick %d: cat left its patrol at %v", i, obj.X)
		}
	}
}

func TestLoadMissingLevel(t *testing.T) {
	src := &fakeSource{}
	if _, err := Load(fstest.MapFS{}, "levels/none.yaml", src.poll); err == nil {
		t.Error("expected error for missing level")
	}
}
