// Package resourcetest provides in-memory loaders and renderers for testing
// asset mirrors without a graphics context.
package resourcetest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/husky-loves-ducky/resource"
)

// Texture is a sized placeholder. Name is the path it was loaded from or the
// text it was rendered from.
type Texture struct {
	Name string
	Dims image.Point
}

func (t *Texture) Size() image.Point { return t.Dims }

// Font renders every glyph as a size/2 by size box and records what it rendered.
type Font struct {
	Path       string
	Size       int
	Texturized []string
}

func (f *Font) Texturize(text string, _ color.RGBA) (resource.Texture, error) {
	f.Texturized = append(f.Texturized, text)
	d, _ := f.Measure(text)
	return &Texture{Name: text, Dims: d}, nil
}

func (f *Font) Measure(text string) (image.Point, error) {
	return image.Pt(len(text)*f.Size/2, f.Size), nil
}

type fontKey struct {
	path string
	size int
}

// Loader counts every call. Paths listed in Missing fail with resource.ErrNotFound.
type Loader struct {
	TextureSize image.Point
	Missing     map[string]bool

	Textures map[string]int
	Fonts    map[string]int

	fonts map[fontKey]*Font
}

var _ resource.Loader = (*Loader)(nil)

func NewLoader() *Loader {
	return &Loader{
		TextureSize: image.Pt(64, 64),
		Missing:     map[string]bool{},
		Textures:    map[string]int{},
		Fonts:       map[string]int{},
		fonts:       map[fontKey]*Font{},
	}
}

func (l *Loader) LoadTexture(path string) (resource.Texture, error) {
	l.Textures[path]++
	if l.Missing[path] {
		return nil, &resource.LoadError{Kind: "texture", Path: path, Err: resource.ErrNotFound}
	}
	return &Texture{Name: path, Dims: l.TextureSize}, nil
}

// LoadFont hands out one Font per path and size so texturize calls accumulate.
func (l *Loader) LoadFont(path string, size int) (resource.Font, error) {
	l.Fonts[fmt.Sprintf("%s@%d", path, size)]++
	if l.Missing[path] {
		return nil, &resource.LoadError{Kind: "font", Path: path, Err: resource.ErrNotFound}
	}
	k := fontKey{path, size}
	f, ok := l.fonts[k]
	if !ok {
		f = &Font{Path: path, Size: size}
		l.fonts[k] = f
	}
	return f, nil
}

// TextureLoads is the total number of texture loads.
func (l *Loader) TextureLoads() int {
	return sum(l.Textures)
}

// FontLoads is the total number of font loads.
func (l *Loader) FontLoads() int {
	return sum(l.Fonts)
}

// Texturized is every string rendered by any font, in no particular order across fonts.
func (l *Loader) Texturized() []string {
	var out []string
	for _, f := range l.fonts {
		out = append(out, f.Texturized...)
	}
	return out
}

// Reset clears the counters but keeps the Missing set.
func (l *Loader) Reset() {
	l.Textures = map[string]int{}
	l.Fonts = map[string]int{}
	for _, f := range l.fonts {
		f.Texturized = nil
	}
}

func sum(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

type Draw struct {
	Texture resource.Texture
	Options resource.DrawOptions
}

type Fill struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// Renderer records draw calls.
type Renderer struct {
	Draws []Draw
	Fills []Fill
}

var _ resource.Renderer = (*Renderer)(nil)

func (r *Renderer) Draw(t resource.Texture, opts resource.DrawOptions) error {
	r.Draws = append(r.Draws, Draw{Texture: t, Options: opts})
	return nil
}

func (r *Renderer) FillRect(rect image.Rectangle, c color.RGBA) error {
	r.Fills = append(r.Fills, Fill{Rect: rect, Color: c})
	return nil
}

// Names lists the drawn textures in order, using Texture.Name where available.
func (r *Renderer) Names() []string {
	out := make([]string, 0, len(r.Draws))
	for _, d := range r.Draws {
		if t, ok := d.Texture.(*Texture); ok {
			out = append(out, t.Name)
			continue
		}
		out = append(out, "?")
	}
	return out
}
