// Package assets is the ebiten backend for the resource interfaces: it decodes
// textures and fonts from the media directory and draws them.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/automoto/husky-loves-ducky/fonts"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Texture wraps a GPU image. It is never drawn onto after load.
type Texture struct {
	img *ebiten.Image
}

func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

func (t *Texture) Size() image.Point { return t.img.Bounds().Size() }

func (t *Texture) Image() *ebiten.Image { return t.img }

// Font renders text into textures.
type Font struct {
	face *fonts.Face
}

func (f *Font) Texturize(s string, c color.RGBA) (resource.Texture, error) {
	return NewTexture(f.face.Render(s, c)), nil
}

func (f *Font) Measure(s string) (image.Point, error) {
	return f.face.Measure(s), nil
}

type fontKey struct {
	path string
	size int
}

// Loader caches one texture per path and one face per path and size, so
// asset mirrors can reload freely.
type Loader struct {
	fsys     fs.FS
	logger   *log.Logger
	textures map[string]*Texture
	fonts    map[fontKey]*Font
}

var _ resource.Loader = (*Loader)(nil)

func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	return &Loader{
		fsys:     fsys,
		logger:   logger,
		textures: make(map[string]*Texture),
		fonts:    make(map[fontKey]*Font),
	}
}

func (l *Loader) LoadTexture(path string) (resource.Texture, error) {
	if t, ok := l.textures[path]; ok {
		return t, nil
	}

	data, err := l.read("texture", path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &resource.LoadError{Kind: "texture", Path: path, Err: err}
	}

	t := NewTexture(img)
	l.textures[path] = t
	l.logger.Debug("loaded texture", "path", path, "size", t.Size())
	return t, nil
}

func (l *Loader) LoadFont(path string, size int) (resource.Font, error) {
	k := fontKey{path: path, size: size}
	if f, ok := l.fonts[k]; ok {
		return f, nil
	}

	data, err := l.read("font", path)
	if err != nil {
		return nil, err
	}
	face, err := fonts.Parse(data, float64(size))
	if err != nil {
		return nil, &resource.LoadError{Kind: "font", Path: path, Err: err}
	}

	f := &Font{face: face}
	l.fonts[k] = f
	l.logger.Debug("loaded font", "path", path, "size", size)
	return f, nil
}

func (l *Loader) read(kind, path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &resource.LoadError{Kind: kind, Path: path, Err: fmt.Errorf("%w: %w", resource.ErrNotFound, err)}
	}
	if err != nil {
		return nil, &resource.LoadError{Kind: kind, Path: path, Err: err}
	}
	return data, nil
}

// Renderer draws onto an ebiten image, normally the screen.
type Renderer struct {
	Target *ebiten.Image
}

var _ resource.Renderer = Renderer{}

func (r Renderer) Draw(t resource.Texture, opts resource.DrawOptions) error {
	tex, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("cannot draw %T with the ebiten renderer", t)
	}
	src := tex.img
	if !opts.Src.Empty() {
		src = tex.img.SubImage(opts.Src).(*ebiten.Image)
	}
	sb := src.Bounds()
	if sb.Empty() || opts.Dst.Empty() {
		return nil
	}

	op := &ebiten.DrawImageOptions{}
	if opts.FlipH {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(sb.Dx()), 0)
	}
	op.GeoM.Scale(float64(opts.Dst.Dx())/float64(sb.Dx()), float64(opts.Dst.Dy())/float64(sb.Dy()))
	op.GeoM.Translate(float64(opts.Dst.Min.X), float64(opts.Dst.Min.Y))
	r.Target.DrawImage(src, op)
	return nil
}

func (r Renderer) FillRect(rect image.Rectangle, c color.RGBA) error {
	vector.FillRect(
		r.Target,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		c,
		false,
	)
	return nil
}
