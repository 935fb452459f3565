package systems

import (
	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/tags"
	"github.com/yohamta/donburi"
)

// Step advances the simulation by dt seconds. The client, the server and
// the headless simulator all drive the world through it.
func Step(world donburi.World, dt float64) {
	UpdatePlayer(world, dt)
	UpdateEnemies(world, dt)
	UpdateDeaths(world, dt)
	UpdateLevel(world, dt)
	UpdateAnimations(world, dt)
}

func currentLevel(world donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(world)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// PlayerEntry returns the player entity, if the level has one.
func PlayerEntry(world donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(world)
}

// playerAlive reports whether the player is alive. A world without a player
// counts as alive so the level clock keeps running.
func playerAlive(world donburi.World) bool {
	entry, ok := PlayerEntry(world)
	if !ok {
		return true
	}
	return components.Player.Get(entry).Alive
}

func levelName(world donburi.World) string {
	if lvl, ok := currentLevel(world); ok && lvl.Level != nil {
		return lvl.Level.Name
	}
	return ""
}
