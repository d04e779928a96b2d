package assets

import (
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/charmbracelet/log"
)

func TestLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/broken.ttf":   {Data: []byte("not a font")},
		"sprites/broken.png": {Data: []byte("not a png")},
	}
	l := NewLoader(fsys, log.New(io.Discard))

	tests := []struct {
		name     string
		load     func() error
		kind     string
		notFound bool
	}{
		{"missing texture", func() error { _, err := l.LoadTexture("sprites/husky.png"); return err }, "texture", true},
		{"missing font", func() error { _, err := l.LoadFont("fonts/joystix.ttf", 32); return err }, "font", true},
		{"broken texture", func() error { _, err := l.LoadTexture("sprites/broken.png"); return err }, "texture", false},
		{"broken font", func() error { _, err := l.LoadFont("fonts/broken.ttf", 32); return err }, "font", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load()
			var le *resource.LoadError
			if !errors.As(err, &le) {
				t.Fatalf("error = %v, want *resource.LoadError", err)
			}
			if le.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", le.Kind, tt.kind)
			}
			if got := errors.Is(err, resource.ErrNotFound); got != tt.notFound {
				t.Errorf("errors.Is(ErrNotFound) = %v, want %v", got, tt.notFound)
			}
		})
	}
}
