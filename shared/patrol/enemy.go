// Package patrol implements the walking enemy that paces a ledge, pauses at
// walls and drops, turns around, and kills the player on contact.
//
// Everything here is pure simulation: the caller supplies elapsed time, the
// level's tile grid and the player each tick.
package patrol

import (
	"image"

	"github.com/automoto/tilepatrol/shared/gamemath"
	"github.com/automoto/tilepatrol/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is the way an enemy faces: -1 or +1, never 0.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Default tuning for a patrolling enemy.
const (
	DefaultMoveSpeed   = 64.0 // world units per second
	DefaultMaxWaitTime = 0.5  // seconds spent at an edge before turning
)

// TileGrid answers collision queries about the level's tiles.
type TileGrid interface {
	Classify(x, y int) leveldata.TileCollision
	TileSize() (width, height int)
}

// Target is the player as seen by an enemy.
type Target interface {
	IsAlive() bool
	BoundingRectangle() image.Rectangle
	// OnKilled is called once per tick for every enemy touching the target.
	// Implementations must tolerate several calls on the same tick.
	OnKilled(killer *Enemy)
}

// Context carries the per-tick inputs of Update.
type Context struct {
	Elapsed float64 // seconds since the previous tick
	Grid    TileGrid
	Target  Target // nil when there is no player in the level
}

// Result reports what an Update call did.
type Result struct {
	Moved          float64 // horizontal displacement this tick
	StartedWaiting bool
	Turned         bool
	Killed         bool
}

// Actor is anything that can be stepped once per tick with a Context.
type Actor interface {
	Update(ctx Context) Result
}

// Enemy is a patrolling monster. Position is the point between its feet.
type Enemy struct {
	Position    dmath.Vec2
	Direction   Direction
	WaitTimer   float64
	MaxWaitTime float64
	MoveSpeed   float64

	// LocalBounds is the collision box relative to the sprite frame's
	// top-left corner. Origin is where Position sits inside the frame.
	LocalBounds image.Rectangle
	Origin      dmath.Vec2
}

var _ Actor = (*Enemy)(nil)

// NewEnemy returns an enemy at position facing left with default tuning.
// LoadContent must be called before the enemy is updated.
func NewEnemy(position dmath.Vec2) *Enemy {
	return &Enemy{
		Position:    position,
		Direction:   Left,
		MaxWaitTime: DefaultMaxWaitTime,
		MoveSpeed:   DefaultMoveSpeed,
	}
}

// LoadContent derives collision bounds and draw origin from the size of one
// sprite frame.
func (e *Enemy) LoadContent(frameW, frameH int) {
	e.LocalBounds = gamemath.LocalBoundsFromFrame(frameW, frameH)
	e.Origin = gamemath.BottomCenter(frameW, frameH)
}

// BoundingRectangle returns the enemy's collision box in world space.
func (e *Enemy) BoundingRectangle() image.Rectangle {
	return gamemath.BoundingRectangle(e.Position, e.Origin, e.LocalBounds)
}

// Waiting reports whether the enemy is paused at an edge.
func (e *Enemy) Waiting() bool {
	return e.WaitTimer > 0
}

// Face sets the direction from a signed value. Zero keeps the current facing.
func (e *Enemy) Face(sign int) {
	switch {
	case sign < 0:
		e.Direction = Left
	case sign > 0:
		e.Direction = Right
	}
}
