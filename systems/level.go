package systems

import (
	"log"
	"math"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/tags"
	"github.com/yohamta/donburi"
)

// UpdateLevel runs the level clock. After the exit is reached or the clock
// runs out, a jump press either finishes the level or restarts it.
func UpdateLevel(world donburi.World, dt float64) {
	lvl, ok := currentLevel(world)
	if !ok {
		return
	}
	input := inputState(world)
	confirmed := input != nil && input.JustPressed(cfg.ActionJump)

	switch {
	case lvl.ReachedExit:
		if confirmed {
			lvl.Finished = true
		}
	case lvl.TimedOut:
		if confirmed {
			ResetLevel(world)
		}
	case playerAlive(world):
		lvl.Elapsed += dt
		lvl.TimeRemaining = math.Max(0, lvl.TimeRemaining-dt)
		if lvl.TimeRemaining == 0 {
			lvl.TimedOut = true
			log.Printf("[level] %s: time ran out", levelName(world))
		}
	}
}

func onExitReached(world donburi.World, lvl *components.LevelData) {
	lvl.ReachedExit = true
	best := RecordExit(levelName(world), lvl.Elapsed)
	if best {
		log.Printf("[level] %s: exit reached in %.2fs (new best)", levelName(world), lvl.Elapsed)
	} else {
		log.Printf("[level] %s: exit reached in %.2fs", levelName(world), lvl.Elapsed)
	}
}

// ResetLevel restarts the clock and puts every enemy and the player back on
// their spawn points.
func ResetLevel(world donburi.World) {
	lvl, ok := currentLevel(world)
	if !ok {
		return
	}
	lvl.TimeRemaining = lvl.TimeLimit
	lvl.Elapsed = 0
	lvl.ReachedExit = false
	lvl.TimedOut = false
	lvl.Finished = false

	tags.Enemy.Each(world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Position.X = enemy.SpawnX
		enemy.Position.Y = enemy.SpawnY
		enemy.Direction = enemy.SpawnFacing
		enemy.WaitTimer = 0
		enemy.Last.Killed = false
	})

	if playerEntry, ok := PlayerEntry(world); ok {
		RespawnPlayer(playerEntry)
	}
}

// LevelFinished reports whether the player has cleared the level and asked
// to move on.
func LevelFinished(world donburi.World) bool {
	lvl, ok := currentLevel(world)
	return ok && lvl.Finished
}
