package input

// Direction is a horizontal facing. None means no horizontal input, which is
// distinct from either facing: an airborne player with None keeps its last flip.
type Direction int8

const (
	None Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Flip reports whether a sprite facing d is drawn mirrored. Sprites face right.
func (d Direction) Flip() bool {
	return d == Left
}
