// Package leveldata parses level layouts into world-space rectangles. It has
// no dependencies on ebitengine, donburi or resolv, pure data only.
package leveldata

import "fmt"

// Kind is what a level object is.
type Kind int

const (
	KindObstacle Kind = iota
	KindGoal
	KindGem
	KindCoin
	KindCat
	KindSpike
)

var kindNames = [...]string{"obstacle", "goal", "gem", "coin", "cat", "spike"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a Tiled object group or class name onto a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s || n+"s" == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Object is one level object in pixels, origin at the top left.
type Object struct {
	Kind       Kind
	X, Y, W, H float64
	// Patrol is how far a walking cat moves right of X, zero for idle cats.
	Patrol float64
}

// Map is a loaded level.
type Map struct {
	Width   int
	Height  int
	Objects []Object
}

// Count returns how many objects of kind k the map holds.
func (m *Map) Count(k Kind) int {
	n := 0
	for _, o := range m.Objects {
		if o.Kind == k {
			n++
		}
	}
	return n
}
