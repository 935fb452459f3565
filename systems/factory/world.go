package factory

import (
	"github.com/automoto/tilepatrol/archetypes"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/yohamta/donburi"
)

// BuildWorld returns a new world populated from lvl.
func BuildWorld(lvl *leveldata.Level) donburi.World {
	world := donburi.NewWorld()
	Populate(world, lvl)
	return world
}

// Populate adds the level, its enemies, the player and the input state to
// world. The player is left out when the level has no player spawn.
func Populate(world donburi.World, lvl *leveldata.Level) {
	CreateLevel(world, lvl)
	archetypes.Input.Spawn(world)

	for i, spawn := range lvl.EnemySpawns {
		CreateEnemy(world, i, spawn)
	}

	if spawn, ok := PlayerSpawn(lvl); ok {
		CreatePlayer(world, spawn.X, spawn.Y)
	}
}

// PlayerSpawn returns the spawn with index 0, falling back to the leftmost.
func PlayerSpawn(lvl *leveldata.Level) (leveldata.SpawnPoint, bool) {
	if len(lvl.PlayerSpawns) == 0 {
		return leveldata.SpawnPoint{}, false
	}
	for _, s := range lvl.PlayerSpawns {
		if s.Index == 0 {
			return s, true
		}
	}
	return lvl.PlayerSpawns[0], true
}
