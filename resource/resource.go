// Package resource defines the capabilities the simulation mirror needs from a
// rendering backend: loading textures and fonts, turning text into textures,
// and drawing. Core packages depend only on these interfaces; the ebiten
// implementation lives in package assets.
package resource

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrNotFound is wrapped by loaders when the backing asset does not exist.
var ErrNotFound = errors.New("resource not found")

// Texture is an immutable, shareable handle to a loaded image.
type Texture interface {
	Size() image.Point
}

// Font turns strings into textures.
type Font interface {
	Texturize(text string, c color.RGBA) (Texture, error)
	Measure(text string) (image.Point, error)
}

// Loader is implemented once per rendering backend. Paths are relative to the
// backend's media root.
type Loader interface {
	LoadTexture(path string) (Texture, error)
	LoadFont(path string, size int) (Font, error)
}

// DrawOptions places a texture (or a region of it) on the target.
type DrawOptions struct {
	// Src is the region of the texture to draw; the zero rectangle means all of it.
	Src image.Rectangle
	Dst image.Rectangle
	// FlipH mirrors the texture horizontally inside Dst.
	FlipH bool
}

// Renderer draws textures and flat rectangles.
type Renderer interface {
	Draw(t Texture, opts DrawOptions) error
	FillRect(r image.Rectangle, c color.RGBA) error
}

// Shower is anything that can draw itself.
type Shower interface {
	Show(r Renderer) error
}

// LoadError reports a failed texture or font load.
type LoadError struct {
	Kind string // "texture" or "font"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ShowAll draws each shower in order, stopping at the first error.
func ShowAll(r Renderer, shows ...Shower) error {
	for _, s := range shows {
		if err := s.Show(r); err != nil {
			return err
		}
	}
	return nil
}
