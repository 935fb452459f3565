package patrol

import (
	"math"

	"github.com/automoto/tilepatrol/shared/gamemath"
	"github.com/automoto/tilepatrol/shared/leveldata"
)

// Probe returns the tile the enemy's leading edge is over, one step back
// toward its center. The two tiles checked each tick are one column further
// ahead: the one at body height and the floor tile below it.
func (e *Enemy) Probe(grid TileGrid) (x, y int) {
	tw, th := grid.TileSize()
	dir := int(e.Direction)
	lead := e.Position.X + float64(e.LocalBounds.Dx()/2*dir)
	x = gamemath.TileCoord(lead, tw) - dir
	y = gamemath.TileCoord(e.Position.Y, th)
	return x, y
}

// Lookahead returns the wall tile and floor tile in front of the enemy.
func (e *Enemy) Lookahead(grid TileGrid) (wallX, wallY, floorX, floorY int) {
	px, py := e.Probe(grid)
	ahead := px + int(e.Direction)
	return ahead, py - 1, ahead, py
}

// blocked reports whether a wall is ahead or the floor ends.
func (e *Enemy) blocked(grid TileGrid) bool {
	wx, wy, fx, fy := e.Lookahead(grid)
	return grid.Classify(wx, wy) == leveldata.Impassable ||
		grid.Classify(fx, fy) == leveldata.Passable
}

// Update advances the enemy by one tick.
//
// While the target is dead nothing happens. Otherwise a waiting enemy counts
// its timer down and turns around when it runs out. A walking enemy either
// starts waiting because of a wall or drop ahead, or moves MoveSpeed*Elapsed
// in its direction. Finally the target is killed if the boxes overlap.
//
// A tick with no elapsed time (negative values are clamped) leaves the patrol
// state alone but still checks contact.
func (e *Enemy) Update(ctx Context) Result {
	var res Result
	if ctx.Target != nil && !ctx.Target.IsAlive() {
		return res
	}

	elapsed := math.Max(0, ctx.Elapsed)

	switch {
	case elapsed == 0:
	case e.WaitTimer > 0:
		e.WaitTimer = math.Max(0, e.WaitTimer-elapsed)
		if e.WaitTimer <= 0 {
			e.Direction = -e.Direction
			res.Turned = true
		}
	case e.blocked(ctx.Grid):
		e.WaitTimer = e.MaxWaitTime
		res.StartedWaiting = true
	default:
		res.Moved = float64(e.Direction) * e.MoveSpeed * elapsed
		e.Position.X += res.Moved
	}

	if ctx.Target != nil && gamemath.Overlaps(e.BoundingRectangle(), ctx.Target.BoundingRectangle()) {
		ctx.Target.OnKilled(e)
		res.Killed = true
	}
	return res
}
