package systems

import (
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func startDeath(death *components.DeathData) {
	death.Active = true
	death.Offset = 0
	death.Tween = gween.New(0, float32(cfg.Player.DeathFallSpeed), float32(cfg.Player.DeathDuration), ease.OutQuad)
}

// UpdateDeaths plays running death sequences and respawns the player when
// one finishes.
func UpdateDeaths(world donburi.World, dt float64) {
	components.Death.Each(world, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if !death.Active || death.Tween == nil {
			return
		}
		offset, done := death.Tween.Update(float32(dt))
		death.Offset = float64(offset)
		if done {
			RespawnPlayer(e)
		}
	})
}

// RespawnPlayer puts the player back on its spawn point, alive and at rest.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	player.Alive = true
	player.KilledBy = nil
	player.Direction = cfg.DirectionRight

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = false

	components.Object.Get(e).PlaceFeet(player.SpawnX, player.SpawnY)

	death := components.Death.Get(e)
	death.Active = false
	death.Offset = 0
	death.Tween = nil

	if anim := components.Animation.Get(e); anim != nil {
		anim.SetAnimation(cfg.Idle)
	}
}
