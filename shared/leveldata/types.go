// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// TileCollision classifies how a tile interacts with characters.
type TileCollision int

const (
	// Passable tiles are empty space.
	Passable TileCollision = iota
	// Impassable tiles block movement from every side.
	Impassable
	// Platform tiles can be stood on but do not block sideways movement.
	Platform
)

func (c TileCollision) String() string {
	switch c {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	}
	return "unknown"
}

// Level holds everything the simulation needs from a TMX level file.
type Level struct {
	Name         string
	Grid         *Grid
	EnemySpawns  []EnemySpawn
	PlayerSpawns []SpawnPoint
	Exits        []Rect
	TimeLimit    float64 // seconds, 0 when the map does not set one
	MapWidth     int
	MapHeight    int
}

// SolidRect represents a collision tile in world space.
type SolidRect struct {
	X, Y, W, H float64
	Collision  TileCollision
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn marks where a patrolling enemy stands. X, Y is the point between
// its feet.
type EnemySpawn struct {
	X, Y   float64
	Sprite string
	Facing int // -1 left, 1 right, 0 default
}

// Rect is an axis-aligned area in world space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// SolidRects lists every non-passable tile of the level as a world rect.
func (l *Level) SolidRects() []SolidRect {
	var rects []SolidRect
	g := l.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Classify(x, y)
			if c == Passable {
				continue
			}
			rects = append(rects, SolidRect{
				X:         float64(x * g.TileWidth),
				Y:         float64(y * g.TileHeight),
				W:         float64(g.TileWidth),
				H:         float64(g.TileHeight),
				Collision: c,
			})
		}
	}
	return rects
}
