package text

import (
	"fmt"
	"slices"
	"testing"

	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/resource/resourcetest"
)

func TestTextRetexturizesOnKeyChange(t *testing.T) {
	f := &resourcetest.Font{Size: 10}
	label, err := Load(f, Yellow, 3, func(n int) string { return fmt.Sprintf("n=%d", n) }, resource.Left(0).Top(0))
	if err != nil {
		t.Fatal(err)
	}

	steps := []int{3, 3, 4, 4, 4, 3}
	for _, k := range steps {
		if label, err = label.Update(k); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"n=3", "n=4", "n=3"}
	if !slices.Equal(f.Texturized, want) {
		t.Errorf("texturized %v, want %v", f.Texturized, want)
	}
	if label.Key() != 3 {
		t.Errorf("Key() = %d, want 3", label.Key())
	}
}

func TestTextShow(t *testing.T) {
	f := &resourcetest.Font{Size: 10}
	label, err := Load(f, White, "hi", func(s string) string { return s }, resource.Center(100).Top(0))
	if err != nil {
		t.Fatal(err)
	}
	var r resourcetest.Renderer
	if err := label.Show(&r); err != nil {
		t.Fatal(err)
	}
	if names := r.Names(); len(names) != 1 || names[0] != "hi" {
		t.Errorf("drew %v", names)
	}
	if got := r.Draws[0].Options.Dst.Min.X; got != 95 {
		t.Errorf("left edge = %d, want 95", got)
	}
}
