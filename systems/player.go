package systems

import (
	"math"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/gamemath"
	"github.com/automoto/tilepatrol/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	// runThreshold is the horizontal speed below which the player looks idle.
	runThreshold = 10.0
	// collisionEpsilon absorbs float drift when a body rests flush on a tile.
	collisionEpsilon = 0.01
)

func UpdatePlayer(world donburi.World, dt float64) {
	input := inputState(world)
	lvl, _ := currentLevel(world)

	components.Player.Each(world, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(world, playerEntry, input, lvl, dt)
	})
}

func updateSinglePlayer(world donburi.World, playerEntry *donburi.Entry, input *components.InputData, lvl *components.LevelData, dt float64) {
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return
	}

	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Controls lock once the level is over.
	move, jump := 0, false
	if input != nil && (lvl == nil || (!lvl.ReachedExit && !lvl.TimedOut)) {
		move = input.Horizontal()
		jump = input.JustPressed(cfg.ActionJump)
	}

	handleMovementInput(move, player, physics, dt)
	if jump && physics.OnGround {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = false
	}
	physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed, dt)

	resolveHorizontalCollision(physics, obj.Object, dt)
	resolveVerticalCollision(physics, obj.Object, dt)

	if lvl != nil && lvl.Level != nil {
		clampToLevel(physics, obj, lvl)
		obj.Update()

		if obj.Y >= float64(lvl.Level.MapHeight) {
			KillPlayer(world, playerEntry, nil)
			return
		}
		checkExit(world, lvl, physics, obj)
	} else {
		obj.Update()
	}

	updatePlayerAnimation(player, physics, components.Animation.Get(playerEntry))
}

func handleMovementInput(move int, player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	if move != 0 {
		player.Direction = move
	}
	physics.SpeedX = gamemath.Accelerate(physics.SpeedX, move, physics.Acceleration, physics.Friction, physics.MaxSpeed, dt)
}

// resolveHorizontalCollision moves the object sideways, stopping flush
// against the nearest solid it would run into. Platforms never block
// sideways movement.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dt float64) {
	dx := physics.SpeedX * dt
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsVertically(object, solid) {
				continue
			}
			if dx > 0 && solid.X >= object.X+object.W-collisionEpsilon {
				if gap := solid.X - (object.X + object.W); gap < dx {
					dx = gap
					physics.SpeedX = 0
				}
			} else if dx < 0 && solid.X+solid.W <= object.X+collisionEpsilon {
				if gap := solid.X + solid.W - object.X; gap > dx {
					dx = gap
					physics.SpeedX = 0
				}
			}
		}
	}

	object.X += dx
}

// resolveVerticalCollision moves the object vertically. Falling bodies land
// on solids and platforms; rising bodies bump their head on solids only.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dt float64) {
	dy := physics.SpeedY * dt
	physics.OnGround = false

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsHorizontally(object, solid) || solid.Y+solid.H > object.Y+collisionEpsilon {
				continue
			}
			if gap := solid.Y + solid.H - object.Y; gap > dy {
				dy = gap
				physics.SpeedY = 0
			}
		}
		object.Y += dy
		return
	}

	landed := false
	floors := append(check.ObjectsByTags(tags.ResolvSolid), check.ObjectsByTags(tags.ResolvPlatform)...)
	for _, floor := range floors {
		if !overlapsHorizontally(object, floor) || object.Bottom() > floor.Y+collisionEpsilon {
			continue
		}
		if gap := floor.Y - object.Bottom(); gap <= dy {
			dy = gap
			landed = true
		}
	}
	if landed {
		physics.SpeedY = 0
		physics.OnGround = true
	}
	object.Y += dy
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y+collisionEpsilon && a.Y < b.Y+b.H-collisionEpsilon
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X+collisionEpsilon && a.X < b.X+b.W-collisionEpsilon
}

// clampToLevel keeps the body between the map's left and right edges.
func clampToLevel(physics *components.PhysicsData, obj *components.ObjectData, lvl *components.LevelData) {
	maxX := float64(lvl.Level.MapWidth) - obj.W
	if obj.X < 0 {
		obj.X = 0
		physics.SpeedX = math.Max(0, physics.SpeedX)
	} else if obj.X > maxX {
		obj.X = maxX
		physics.SpeedX = math.Min(0, physics.SpeedX)
	}
}

// checkExit marks the level complete when the grounded player stands in an exit.
func checkExit(world donburi.World, lvl *components.LevelData, physics *components.PhysicsData, obj *components.ObjectData) {
	if lvl.ReachedExit || !physics.OnGround {
		return
	}
	x, y := obj.Feet()
	for _, exit := range lvl.Level.Exits {
		if exit.Contains(x, y-1) {
			onExitReached(world, lvl)
			return
		}
	}
}

func updatePlayerAnimation(player *components.PlayerData, physics *components.PhysicsData, anim *components.AnimationData) {
	if anim == nil {
		return
	}
	anim.FlipX = player.Direction < 0
	switch {
	case !physics.OnGround:
		anim.SetAnimation(cfg.Jump)
	case math.Abs(physics.SpeedX) > runThreshold:
		anim.SetAnimation(cfg.Running)
	default:
		anim.SetAnimation(cfg.Idle)
	}
}
