package resource

import "image"

type anchor uint8

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

// Position anchors a box horizontally and vertically without knowing its size yet.
// Build one with Left/Center/Right and Top/Middle/Bottom, then resolve it with Dims.
type Position struct {
	x, y   int
	hx, vy anchor
}

func Left(x int) Position   { return Position{}.Left(x) }
func Center(x int) Position { return Position{}.Center(x) }
func Right(x int) Position  { return Position{}.Right(x) }
func Top(y int) Position    { return Position{}.Top(y) }
func Middle(y int) Position { return Position{}.Middle(y) }
func Bottom(y int) Position { return Position{}.Bottom(y) }

func (p Position) Left(x int) Position   { p.x, p.hx = x, anchorStart; return p }
func (p Position) Center(x int) Position { p.x, p.hx = x, anchorMiddle; return p }
func (p Position) Right(x int) Position  { p.x, p.hx = x, anchorEnd; return p }
func (p Position) Top(y int) Position    { p.y, p.vy = y, anchorStart; return p }
func (p Position) Middle(y int) Position { p.y, p.vy = y, anchorMiddle; return p }
func (p Position) Bottom(y int) Position { p.y, p.vy = y, anchorEnd; return p }

// Dims resolves the position into a destination rectangle of the given size.
func (p Position) Dims(size image.Point) image.Rectangle {
	x := place(p.x, size.X, p.hx)
	y := place(p.y, size.Y, p.vy)
	return image.Rect(x, y, x+size.X, y+size.Y)
}

func place(at, length int, a anchor) int {
	switch a {
	case anchorMiddle:
		return at - length/2
	case anchorEnd:
		return at - length
	default:
		return at
	}
}
