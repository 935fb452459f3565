package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// CollisionLayer is the tile layer that defines the level's collision.
const CollisionLayer = "wg-tiles"

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (server).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid:      NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Grid.Set(x, y, tileCollision(tile))
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: missing %q layer", tmxPath, CollisionLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:      o.X,
					Y:      o.Y,
					Sprite: o.Properties.GetString("sprite"),
					Facing: o.Properties.GetInt("facing"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Exit":
			for _, o := range og.Objects {
				level.Exits = append(level.Exits, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
				if limit := o.Properties.GetFloat("timeLimit"); limit > 0 {
					level.TimeLimit = limit
				}
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
	})

	return level, nil
}

// tileCollision reads the tileset "collision" property of a placed tile.
// Placed tiles are Impassable unless the property says otherwise.
func tileCollision(tile *tiled.LayerTile) TileCollision {
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return Impassable
	}
	switch tilesetTile.Properties.GetString("collision") {
	case "platform":
		return Platform
	case "passable":
		return Passable
	}
	return Impassable
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
