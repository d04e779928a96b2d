package fonts

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// Face is a truetype face at a fixed size.
type Face struct {
	face font.Face
}

// Parse builds a face from TTF bytes.
func Parse(ttf []byte, size float64) (*Face, error) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Face{face: truetype.NewFace(fontData, &truetype.Options{Size: size})}, nil
}

// Measure is the size of the box Render draws s into.
func (f *Face) Measure(s string) image.Point {
	m := f.face.Metrics()
	return image.Pt(font.MeasureString(f.face, s).Ceil(), (m.Ascent + m.Descent).Ceil())
}

// Render draws s onto a new transparent image sized by Measure.
func (f *Face) Render(s string, c color.Color) *ebiten.Image {
	size := f.Measure(s)
	img := ebiten.NewImage(max(size.X, 1), max(size.Y, 1))
	text.Draw(img, s, f.face, 0, f.face.Metrics().Ascent.Ceil(), c)
	return img
}

// Face exposes the underlying face for direct text drawing.
func (f *Face) Face() font.Face {
	return f.face
}
