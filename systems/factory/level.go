package factory

import (
	"github.com/automoto/tilepatrol/archetypes"
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel adds the level entity, its collision space and a wall for
// every solid or platform tile.
func CreateLevel(world donburi.World, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(world)

	limit := lvl.TimeLimit
	if limit <= 0 {
		limit = cfg.Level.TimeLimit
	}
	components.Level.SetValue(level, components.LevelData{
		Level:         lvl,
		TimeLimit:     limit,
		TimeRemaining: limit,
	})

	CreateSpace(world, lvl.MapWidth, lvl.MapHeight, cfg.Level.SpaceCellW, cfg.Level.SpaceCellH)
	for _, r := range lvl.SolidRects() {
		CreateWall(world, r)
	}

	return level
}
