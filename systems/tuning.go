package systems

import (
	"math"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/yohamta/donburi"
)

// ApplyTuning installs t globally and pushes it into live entities.
func ApplyTuning(world donburi.World, t cfg.Tuning) {
	t.Apply()
	ApplyEnemyTuning(world, t.Enemy)
	applyPlayerTuning(world, t.Player)
}

// ApplyEnemyTuning re-tunes every live enemy. A running wait is shortened
// to the new maximum, never lengthened.
func ApplyEnemyTuning(world donburi.World, tuning cfg.EnemyConfig) {
	components.Enemy.Each(world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.MoveSpeed = tuning.MoveSpeed
		enemy.MaxWaitTime = tuning.MaxWaitTime
		enemy.WaitTimer = math.Min(enemy.WaitTimer, tuning.MaxWaitTime)
		enemy.LoadContent(tuning.FrameWidth, tuning.FrameHeight)

		anim := components.Animation.Get(e)
		anim.FrameWidth = tuning.FrameWidth
		anim.FrameHeight = tuning.FrameHeight
		if a, ok := anim.Animations[cfg.Running]; ok {
			a.FrameTime = tuning.RunFrameTime
		}
		if a, ok := anim.Animations[cfg.Idle]; ok {
			a.FrameTime = tuning.IdleFrameTime
		}
	})
}

func applyPlayerTuning(world donburi.World, tuning cfg.PlayerConfig) {
	components.Physics.Each(world, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Acceleration = tuning.Acceleration
		physics.Gravity = tuning.Gravity
		physics.Friction = tuning.Friction
		physics.MaxSpeed = tuning.MaxSpeed
		physics.MaxFallSpeed = tuning.MaxFallSpeed
	})
}
