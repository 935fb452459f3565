package systems

import (
	"image"
	"log"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/patrol"
	"github.com/automoto/tilepatrol/tags"
	"github.com/yohamta/donburi"
)

// playerTarget exposes the player entity to the patrol logic. Aliveness is
// sampled once per tick, so every enemy touching the player this tick
// reports the kill and KillPlayer keeps the first.
type playerTarget struct {
	world donburi.World
	entry *donburi.Entry
	alive bool
}

func (t *playerTarget) IsAlive() bool {
	return t.alive
}

func (t *playerTarget) BoundingRectangle() image.Rectangle {
	return components.Object.Get(t.entry).Rect()
}

func (t *playerTarget) OnKilled(killer *patrol.Enemy) {
	KillPlayer(t.world, t.entry, killer)
}

func UpdateEnemies(world donburi.World, dt float64) {
	lvl, ok := currentLevel(world)
	if !ok || lvl.Level == nil {
		return
	}

	ctx := patrol.Context{Elapsed: dt, Grid: lvl.Level.Grid}
	if playerEntry, ok := PlayerEntry(world); ok {
		ctx.Target = &playerTarget{
			world: world,
			entry: playerEntry,
			alive: components.Player.Get(playerEntry).Alive,
		}
	}

	// Enemies stand still once the level is won or the clock has run out.
	active := !lvl.ReachedExit && !lvl.TimedOut

	tags.Enemy.Each(world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Last = patrol.Result{}
		if active {
			enemy.Last = enemy.Update(ctx)
			logPatrol(enemy)
		}

		updateEnemyAnimation(enemy, patrol.View{
			PlayerAlive:   playerAlive(world),
			ReachedExit:   lvl.ReachedExit,
			TimeRemaining: lvl.TimeRemaining,
		}, components.Animation.Get(e))
	})
}

func updateEnemyAnimation(enemy *components.EnemyData, view patrol.View, anim *components.AnimationData) {
	if anim == nil {
		return
	}
	p := patrol.SelectAnimation(enemy.Enemy, view)
	anim.SetAnimation(p.State)
	anim.FlipX = p.FlipX
}

func logPatrol(enemy *components.EnemyData) {
	if !cfg.Debug.LogPatrol {
		return
	}
	res := enemy.Last
	switch {
	case res.StartedWaiting:
		log.Printf("[patrol] enemy %d waiting at x=%.1f", enemy.Index, enemy.Position.X)
	case res.Turned:
		log.Printf("[patrol] enemy %d turned to %d at x=%.1f", enemy.Index, enemy.Direction, enemy.Position.X)
	}
	if res.Killed {
		log.Printf("[patrol] enemy %d touched the player at x=%.1f", enemy.Index, enemy.Position.X)
	}
}

// KillPlayer starts the player's death sequence. killer is nil when the
// player fell out of the level. Killing a dead player does nothing and
// returns false.
func KillPlayer(world donburi.World, playerEntry *donburi.Entry, killer *patrol.Enemy) bool {
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return false
	}

	player.Alive = false
	player.Deaths++
	player.KilledBy = killer
	player.Cause = components.CauseFell
	if killer != nil {
		player.Cause = components.CauseEnemy
	}

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	startDeath(components.Death.Get(playerEntry))
	if anim := components.Animation.Get(playerEntry); anim != nil {
		anim.SetAnimation(cfg.Die)
	}

	RecordDeath(levelName(world))
	if cfg.Debug.LogPatrol {
		log.Printf("[player] killed (%s), deaths=%d", player.Cause, player.Deaths)
	}
	return true
}
