package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ObstacleLayer is the tile layer whose non-empty tiles become obstacles.
const ObstacleLayer = "obstacles"

// LoadTMX parses a Tiled map. Tiles of the obstacles layer become one
// obstacle each; object groups are named after the kind they hold ("gems",
// "cats", ...). Cats read their patrol length in pixels from the "patrol"
// property. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := &Map{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if !strings.EqualFold(layer.Name, ObstacleLayer) {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				m.Objects = append(m.Objects, Object{
					Kind: KindObstacle,
					X:    float64(x) * tileW,
					Y:    float64(y) * tileH,
					W:    tileW,
					H:    tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		kind, ok := ParseKind(strings.ToLower(og.Name))
		if !ok {
			continue
		}
		for _, o := range og.Objects {
			w, h := o.Width, o.Height
			if w == 0 || h == 0 {
				w, h = tileW, tileH
			}
			obj := Object{Kind: kind, X: o.X, Y: o.Y, W: w, H: h}
			if kind == KindCat {
				obj.Patrol = float64(o.Properties.GetInt("patrol"))
			}
			m.Objects = append(m.Objects, obj)
		}
	}

	// Left-to-right, then top-to-bottom, for stable entity order.
	sort.SliceStable(m.Objects, func(i, j int) bool {
		a, b := m.Objects[i], m.Objects[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	return m, nil
}

// Load picks the parser from the file extension: .tmx goes through Tiled,
// anything else is read as a grid level.
func Load(fsys fs.FS, levelPath string, cellSize int) (*Map, error) {
	if strings.EqualFold(path.Ext(levelPath), ".tmx") {
		return LoadTMX(fsys, levelPath)
	}
	return LoadYAML(fsys, levelPath, cellSize)
}

// Discover lists the level files under dir, sorted by name.
func Discover(fsys fs.FS, dir string) ([]string, error) {
	var found []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.tmx"} {
		matches, err := fs.Glob(fsys, path.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		found = append(found, matches...)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(found)
	return found, nil
}
