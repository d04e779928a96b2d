package leveldata

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Cell is a position or extent in grid cells. Y grows upwards from the
// bottom of the level.
type Cell struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

type GroundKind string

const (
	GroundTop    GroundKind = "Top"
	GroundMiddle GroundKind = "Middle"
)

// CatKind is either Idle or Moving with a patrol length in cells.
type CatKind struct {
	Moving uint32
}

func (c CatKind) Idle() bool { return c.Moving == 0 }

func (c *CatKind) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value != "Idle" {
			return fmt.Errorf("unknown cat kind %q", value.Value)
		}
		*c = CatKind{}
		return nil
	case yaml.MappingNode:
		var m struct {
			Moving uint32 `yaml:"Moving"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*c = CatKind{Moving: m.Moving}
		return nil
	}
	return fmt.Errorf("cat kind at line %d must be Idle or Moving", value.Line)
}

type Cat struct {
	Kind       CatKind `yaml:"kind"`
	BottomLeft Cell    `yaml:"bottom_left"`
}

type Obstacle struct {
	Count      Cell `yaml:"count"`
	BottomLeft Cell `yaml:"bottom_left"`
}

// Spike is a horizontal run of spikes; the optional ground kinds say which
// ground tiles frame it.
type Spike struct {
	Count      uint32      `yaml:"count"`
	BottomLeft Cell        `yaml:"bottom_left"`
	Left       *GroundKind `yaml:"left,omitempty"`
	Right      *GroundKind `yaml:"right,omitempty"`
	Bottom     *GroundKind `yaml:"bottom,omitempty"`
}

// Level is the grid level format.
type Level struct {
	Obstacles []Obstacle `yaml:"obstacles"`
	Goal      Cell       `yaml:"goal"`
	Gems      []Cell     `yaml:"gems"`
	Coins     []Cell     `yaml:"coins"`
	Cats      []Cat      `yaml:"cats"`
	Spikes    []Spike    `yaml:"spikes"`
}

func ParseYAML(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	return &l, nil
}

// LoadYAML reads a grid level from fsys and lays it out with cellSize pixel
// cells.
func LoadYAML(fsys fs.FS, path string, cellSize int) (*Map, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l.Map(cellSize), nil
}

type cellRect struct {
	kind       Kind
	x, y, w, h uint32
	patrol     uint32
}

func (l *Level) cells() []cellRect {
	var rs []cellRect
	for _, o := range l.Obstacles {
		rs = append(rs, cellRect{kind: KindObstacle, x: o.BottomLeft.X, y: o.BottomLeft.Y, w: o.Count.X, h: o.Count.Y})
	}
	rs = append(rs, cellRect{kind: KindGoal, x: l.Goal.X, y: l.Goal.Y, w: 1, h: 1})
	for _, g := range l.Gems {
		rs = append(rs, cellRect{kind: KindGem, x: g.X, y: g.Y, w: 1, h: 1})
	}
	for _, c := range l.Coins {
		rs = append(rs, cellRect{kind: KindCoin, x: c.X, y: c.Y, w: 1, h: 1})
	}
	for _, c := range l.Cats {
		rs = append(rs, cellRect{kind: KindCat, x: c.BottomLeft.X, y: c.BottomLeft.Y, w: 1, h: 1, patrol: c.Kind.Moving})
	}
	for _, s := range l.Spikes {
		rs = append(rs, cellRect{kind: KindSpike, x: s.BottomLeft.X, y: s.BottomLeft.Y, w: s.Count, h: 1})
	}
	return rs
}

// Map converts grid cells into pixels with the origin moved to the top left.
// The level is as wide and tall as its furthest object.
func (l *Level) Map(cellSize int) *Map {
	rs := l.cells()
	var cols, rows uint32
	for _, r := range rs {
		cols = max(cols, r.x+r.w+r.patrol)
		rows = max(rows, r.y+r.h)
	}

	cell := float64(cellSize)
	m := &Map{
		Width:   int(cols) * cellSize,
		Height:  int(rows) * cellSize,
		Objects: make([]Object, 0, len(rs)),
	}
	for _, r := range rs {
		m.Objects = append(m.Objects, Object{
			Kind:   r.kind,
			X:      float64(r.x) * cell,
			Y:      float64(rows-r.y-r.h) * cell,
			W:      float64(r.w) * cell,
			H:      float64(r.h) * cell,
			Patrol: float64(r.patrol) * cell,
		})
	}
	return m
}
