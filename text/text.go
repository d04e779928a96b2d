// Package text renders strings into placed textures.
package text

import (
	"image/color"

	"github.com/automoto/husky-loves-ducky/resource"
)

var (
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, A: 255}
)

// Static renders s once and places it.
func Static(f resource.Font, s string, c color.RGBA, pos resource.Position) (resource.Image, error) {
	t, err := f.Texturize(s, c)
	if err != nil {
		return resource.Image{}, err
	}
	return resource.NewImage(t, pos), nil
}

// Text is a label derived from a value. The texture is only rebuilt when the
// key changes, so a countdown drawn in whole seconds renders once per second
// rather than once per tick.
type Text[K comparable] struct {
	key     K
	format  func(K) string
	font    resource.Font
	color   color.RGBA
	texture resource.Texture
	pos     resource.Position
}

func Load[K comparable](f resource.Font, c color.RGBA, key K, format func(K) string, pos resource.Position) (Text[K], error) {
	t := Text[K]{key: key, format: format, font: f, color: c, pos: pos}
	tex, err := f.Texturize(format(key), c)
	if err != nil {
		return Text[K]{}, err
	}
	t.texture = tex
	return t, nil
}

// Update returns t unchanged when key matches the cached one.
func (t Text[K]) Update(key K) (Text[K], error) {
	if key == t.key {
		return t, nil
	}
	tex, err := t.font.Texturize(t.format(key), t.color)
	if err != nil {
		return t, err
	}
	t.key, t.texture = key, tex
	return t, nil
}

func (t Text[K]) Key() K { return t.key }

func (t Text[K]) Texture() resource.Texture { return t.texture }

func (t Text[K]) Image() resource.Image {
	return resource.NewImage(t.texture, t.pos)
}

func (t Text[K]) Show(r resource.Renderer) error {
	return t.Image().Show(r)
}
