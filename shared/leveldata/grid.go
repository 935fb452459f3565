package leveldata

import (
	"fmt"
	"image"
)

// Grid is the per-tile collision map of a level.
type Grid struct {
	Width, Height         int
	TileWidth, TileHeight int
	tiles                 []TileCollision
}

// NewGrid returns a grid of the given size in tiles with every tile Passable.
func NewGrid(width, height, tileWidth, tileHeight int) *Grid {
	return &Grid{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		tiles:      make([]TileCollision, width*height),
	}
}

// ParseGrid builds a grid from rows of text: '#' is Impassable, '-' is
// Platform and anything else is Passable. All rows must have equal length.
func ParseGrid(rows []string, tileWidth, tileHeight int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	g := NewGrid(len(rows[0]), len(rows), tileWidth, tileHeight)
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("parse grid: row %d has %d tiles, want %d", y, len(row), g.Width)
		}
		for x, ch := range []byte(row) {
			switch ch {
			case '#':
				g.Set(x, y, Impassable)
			case '-':
				g.Set(x, y, Platform)
			}
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid for literals known to be well formed.
func MustParseGrid(rows []string, tileWidth, tileHeight int) *Grid {
	g, err := ParseGrid(rows, tileWidth, tileHeight)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether (x, y) is a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Set changes the classification of an in-bounds tile. Out of bounds writes
// are ignored.
func (g *Grid) Set(x, y int, c TileCollision) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.Width+x] = c
}

// Classify returns the collision of tile (x, y). Everything outside the map is
// Impassable, so nothing can walk or fall off its edges.
func (g *Grid) Classify(x, y int) TileCollision {
	if !g.InBounds(x, y) {
		return Impassable
	}
	return g.tiles[y*g.Width+x]
}

// TileSize returns the tile dimensions in world units.
func (g *Grid) TileSize() (int, int) {
	return g.TileWidth, g.TileHeight
}

// Bounds returns the world rectangle covered by tile (x, y).
func (g *Grid) Bounds(x, y int) image.Rectangle {
	return image.Rect(x*g.TileWidth, y*g.TileHeight, (x+1)*g.TileWidth, (y+1)*g.TileHeight)
}
