package resource

import "image"

// Image is a texture placed on screen. The texture is shared; the placement is owned.
type Image struct {
	Texture Texture
	Pos     Position
	Size    image.Point
}

// NewImage places t at pos using the texture's own size.
func NewImage(t Texture, pos Position) Image {
	return Image{Texture: t, Pos: pos, Size: t.Size()}
}

// Scale multiplies the drawn size, keeping the anchor.
func (i Image) Scale(n int) Image {
	i.Size = i.Size.Mul(n)
	return i
}

// Dst is the on-screen rectangle.
func (i Image) Dst() image.Rectangle {
	return i.Pos.Dims(i.Size)
}

func (i Image) Show(r Renderer) error {
	return r.Draw(i.Texture, DrawOptions{Dst: i.Dst()})
}

// ShowFlipped draws the image mirrored when flip is set.
func (i Image) ShowFlipped(r Renderer, flip bool) error {
	return r.Draw(i.Texture, DrawOptions{Dst: i.Dst(), FlipH: flip})
}

// TileSheet is a texture split into a grid of equally sized tiles, read row-major.
type TileSheet struct {
	Texture Texture
	Tiles   image.Point // columns, rows
}

// Tile returns the source rectangle of tile n. Out of range indices wrap.
func (s TileSheet) Tile(n uint32) image.Rectangle {
	cols, rows := s.Tiles.X, s.Tiles.Y
	if cols <= 0 || rows <= 0 {
		return image.Rectangle{Max: s.Texture.Size()}
	}
	size := s.Texture.Size()
	w, h := size.X/cols, size.Y/rows
	i := int(n) % (cols * rows)
	x, y := (i%cols)*w, (i/cols)*h
	return image.Rect(x, y, x+w, y+h)
}

// Sprite draws one tile of a sheet.
type Sprite struct {
	Sheet TileSheet
	Tile  uint32
	Pos   Position
	Size  image.Point
}

// Scale multiplies the drawn size, keeping the anchor.
func (s Sprite) Scale(n int) Sprite {
	s.Size = s.Size.Mul(n)
	return s
}

func (s Sprite) Dst() image.Rectangle {
	return s.Pos.Dims(s.Size)
}

func (s Sprite) Show(r Renderer) error {
	return s.ShowFlipped(r, false)
}

// ShowFlipped draws the current tile mirrored when flip is set.
func (s Sprite) ShowFlipped(r Renderer, flip bool) error {
	return r.Draw(s.Sheet.Texture, DrawOptions{Src: s.Sheet.Tile(s.Tile), Dst: s.Dst(), FlipH: flip})
}
