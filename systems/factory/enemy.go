package factory

import (
	"github.com/automoto/tilepatrol/archetypes"
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/automoto/tilepatrol/shared/patrol"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a patrolling enemy standing at the spawn point.
func CreateEnemy(world donburi.World, index int, spawn leveldata.EnemySpawn) *donburi.Entry {
	sprite := spawn.Sprite
	if sprite == "" {
		sprite = cfg.Enemy.DefaultSprite
	}

	e := patrol.NewEnemy(dmath.Vec2{X: spawn.X, Y: spawn.Y})
	e.MoveSpeed = cfg.Enemy.MoveSpeed
	e.MaxWaitTime = cfg.Enemy.MaxWaitTime
	e.Face(spawn.Facing)
	e.LoadContent(cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight)

	enemy := archetypes.Enemy.Spawn(world)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Enemy:       e,
		Index:       index,
		Sprite:      sprite,
		SpawnX:      spawn.X,
		SpawnY:      spawn.Y,
		SpawnFacing: e.Direction,
	})

	animData := GenerateAnimations(sprite, cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight)
	animData.FlipX = e.Direction > 0
	components.Animation.Set(enemy, animData)

	return enemy
}
